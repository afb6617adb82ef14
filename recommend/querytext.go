package recommend

import (
	"fmt"
	"strings"

	"github.com/hirewise/assessrec/catalog"
)

// BuildQueryText renders a structured query into the natural-language phrase
// handed to the embedding model. The phrase shape is fixed so that identical
// queries always embed to identical vectors.
func BuildQueryText(query catalog.StructuredQuery) string {
	var sb strings.Builder

	sb.WriteString("a ")
	sb.WriteString(strings.Join(query.Traits, " and "))
	sb.WriteString(" role needing ")
	sb.WriteString(strings.Join(query.Skills, " and "))
	sb.WriteString(" assessments")

	if query.DurationLimit != nil {
		fmt.Fprintf(&sb, " under %d minutes", *query.DurationLimit)
	}
	if query.RemoteRequired != nil && *query.RemoteRequired {
		sb.WriteString(" with remote testing")
	}

	return sb.String()
}
