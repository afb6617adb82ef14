package recommend

import (
	"iter"

	"github.com/hirewise/assessrec/catalog"
)

// matchesConstraints reports whether a record satisfies the query's hard
// constraints. Each rule is evaluated independently and combined with AND.
//
// Unknown duration passes the duration check: records whose length could not
// be parsed are not penalized for it. Remote is compared only when the query
// actually sets the constraint; absence is not the same as false.
func matchesConstraints(record *catalog.CatalogRecord, query catalog.StructuredQuery) bool {
	if query.DurationLimit != nil && record.DurationMinutes != nil {
		if *record.DurationMinutes > *query.DurationLimit {
			return false
		}
	}
	if query.RemoteRequired != nil {
		if record.Remote != *query.RemoteRequired {
			return false
		}
	}
	return true
}

// filterCandidates forwards candidates that satisfy the query constraints,
// preserving order. Rejections are reported to the monitor.
func filterCandidates(candidates iter.Seq[catalog.CandidateMatch], query catalog.StructuredQuery, monitor Monitor) iter.Seq[catalog.CandidateMatch] {
	return func(yield func(catalog.CandidateMatch) bool) {
		for candidate := range candidates {
			if !matchesConstraints(candidate.Record, query) {
				monitor.ConstraintRejected(candidate.Record)
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}
