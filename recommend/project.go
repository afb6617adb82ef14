package recommend

import (
	"strconv"

	"github.com/hirewise/assessrec/catalog"
)

// unknownValue is the display sentinel for absent duration or test type.
const unknownValue = "Unknown"

// ProjectRecord flattens a catalog record into its display-ready shape.
// This is a total function: it never fails and never drops a record.
func ProjectRecord(record *catalog.CatalogRecord) catalog.Recommendation {
	duration := unknownValue
	if record.DurationMinutes != nil {
		duration = strconv.Itoa(*record.DurationMinutes)
	}

	testType := record.TestType
	if testType == "" {
		testType = unknownValue
	}

	return catalog.Recommendation{
		AssessmentName: record.Name,
		URL:            record.URL,
		Remote:         yesNo(record.Remote),
		Adaptive:       yesNo(record.Adaptive),
		Duration:       duration,
		TestType:       testType,
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
