package store

import (
	"context"

	"github.com/hirewise/assessrec/catalog"
)

// CatalogStore provides read access to catalog records by row position.
// Implementations must be thread-safe and support concurrent access.
type CatalogStore interface {
	// Count returns the number of records in the store.
	Count(ctx context.Context) (int, error)

	// GetByRow retrieves the record stored at the given row position.
	// Rows are assigned sequentially starting at 0 in append order.
	// Returns ErrNotFound if no record exists at that row.
	GetByRow(ctx context.Context, row int) (*catalog.CatalogRecord, error)

	// Close closes the store and releases resources.
	Close() error
}

// CatalogWriter extends CatalogStore with append operations, used by the
// offline index build. The serving path only needs CatalogStore.
type CatalogWriter interface {
	CatalogStore

	// AppendRecords appends records in order, assigning each the next row
	// position. The append is atomic: on error no record is stored.
	AppendRecords(ctx context.Context, records ...*catalog.CatalogRecord) error
}
