package indexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hirewise/assessrec/catalog"
)

// EmbeddingText synthesizes the text embedded for a catalog record. The
// shape is fixed so that rebuilds of an unchanged catalog produce the same
// vectors: name, cleaned description, duration, test type.
func EmbeddingText(record *catalog.CatalogRecord) string {
	duration := "Unknown"
	if record.DurationMinutes != nil {
		duration = strconv.Itoa(*record.DurationMinutes)
	}
	return fmt.Sprintf("%s. %s. Duration: %s mins. Test Type: %s",
		record.Name, cleanDescription(record.Description), duration, record.TestType)
}

// cleanDescription lowercases the description and collapses whitespace runs
// to single spaces.
func cleanDescription(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
