package recommend

import (
	"iter"

	"github.com/xrash/smetrics"

	"github.com/hirewise/assessrec/catalog"
)

// duplicateRatioThreshold is the name-similarity ratio above which a
// candidate is treated as a near-duplicate of an accepted result.
const duplicateRatioThreshold = 0.9

// nameSimilarity computes a normalized similarity ratio in [0,1] between two
// display names. It is the edit-distance sequence-matching ratio: with
// substitutions costed as a delete plus an insert, the ratio is
// 1 - distance/(len(a)+len(b)). Two empty names are identical.
func nameSimilarity(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	distance := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1 - float64(distance)/float64(total)
}

// suppressDuplicates forwards candidates whose names are not near-duplicates
// of any already-forwarded name, preserving order. The accepted-names list
// grows monotonically within a single pass and is discarded with it; the
// pairwise comparison stays cheap because the downstream cap bounds the list.
func suppressDuplicates(candidates iter.Seq[catalog.CandidateMatch], monitor Monitor) iter.Seq[catalog.CandidateMatch] {
	return func(yield func(catalog.CandidateMatch) bool) {
		var accepted []string
		for candidate := range candidates {
			name := candidate.Record.Name
			duplicate := false
			for _, prior := range accepted {
				if nameSimilarity(name, prior) > duplicateRatioThreshold {
					monitor.DuplicateSuppressed(candidate.Record, prior)
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}
			accepted = append(accepted, name)
			if !yield(candidate) {
				return
			}
		}
	}
}
