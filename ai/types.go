package ai

// ParsedQuery is the structured intent extracted from a free-form query.
// It mirrors the JSON shape the extraction model is asked to produce;
// nil pointer fields mean the query did not express that constraint,
// which is distinct from an explicit false or zero.
type ParsedQuery struct {
	// Skills are the required skills mentioned in the query
	// (e.g. "communication", "python").
	Skills []string `json:"skills"`

	// Traits are job or behavioral traits (e.g. "entry-level", "leadership").
	Traits []string `json:"traits"`

	// DurationLimit is the maximum assessment length in minutes, if requested.
	DurationLimit *int `json:"duration_limit"`

	// Remote indicates whether remote testing was explicitly requested (true)
	// or explicitly ruled out (false).
	Remote *bool `json:"remote"`
}
