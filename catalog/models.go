package catalog

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a stable identifier for catalog records.
// It is derived from record content so that repeated catalog builds
// assign the same ID to the same assessment.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RecordID derives the stable identifier for an assessment from its
// display name and canonical URL.
func RecordID(name, url string) ID {
	return IDFromContent(name + "\n" + url)
}

// CatalogRecord is one row of the metadata store. Its row position equals
// the position of its embedding vector in the similarity index; that
// alignment is established at build time and checked at load time.
type CatalogRecord struct {
	Id              ID
	Name            string // display name, not guaranteed unique
	URL             string // canonical link, may be empty
	TestType        string // free-text category label, may be empty
	Adaptive        bool
	Remote          bool
	DurationMinutes *int   // nil means unknown, never zero
	Description     string // used only to produce the embedding
}

// StructuredQuery is the typed representation of user intent that drives
// retrieval and filtering. Nil optional fields mean "no constraint";
// for RemoteRequired, absence is distinct from false.
type StructuredQuery struct {
	Skills         []string
	Traits         []string
	DurationLimit  *int // minutes
	RemoteRequired *bool
}

// IsEmpty reports whether the query carries no intent at all, which is the
// degraded form produced when upstream intent extraction is unavailable.
func (q StructuredQuery) IsEmpty() bool {
	return len(q.Skills) == 0 && len(q.Traits) == 0 &&
		q.DurationLimit == nil && q.RemoteRequired == nil
}

// CandidateMatch is a catalog record returned by similarity search,
// annotated with its raw distance (smaller = more similar). It is an
// intermediate value and is never persisted.
type CandidateMatch struct {
	Row      int
	Record   *CatalogRecord
	Distance float32
}

// Recommendation is the display-ready projection of a catalog record.
// Booleans are rendered as "Yes"/"No"; absent duration and test type
// render as "Unknown".
type Recommendation struct {
	AssessmentName string `json:"assessment_name"`
	URL            string `json:"url"`
	Remote         string `json:"remote"`
	Adaptive       string `json:"adaptive"`
	Duration       string `json:"duration"`
	TestType       string `json:"test_type"`
}
