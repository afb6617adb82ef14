package recommend

import (
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/index"
)

// Monitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps during a request.
type Monitor interface {
	Start(query catalog.StructuredQuery)
	AfterQueryText(text string)
	AfterRetrieval(matches []index.Match)
	ConstraintRejected(record *catalog.CatalogRecord)
	DuplicateSuppressed(record *catalog.CatalogRecord, acceptedName string)
	Accepted(record *catalog.CatalogRecord, distance float32)
	Finish(results []catalog.Recommendation)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ catalog.StructuredQuery)                        {}
func (n *noopMonitor) AfterQueryText(_ string)                                {}
func (n *noopMonitor) AfterRetrieval(_ []index.Match)                         {}
func (n *noopMonitor) ConstraintRejected(_ *catalog.CatalogRecord)            {}
func (n *noopMonitor) DuplicateSuppressed(_ *catalog.CatalogRecord, _ string) {}
func (n *noopMonitor) Accepted(_ *catalog.CatalogRecord, _ float32)           {}
func (n *noopMonitor) Finish(_ []catalog.Recommendation)                      {}
