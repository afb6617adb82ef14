// Copyright 2025 Hirewise Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/store"
)

// Catalog implements store.CatalogWriter for BadgerDB.
// Records are keyed by row position in append order.
type Catalog struct {
	backend *Backend
}

var _ store.CatalogWriter = (*Catalog)(nil)

// NewCatalog creates a catalog store over an open backend.
//
// Returns store.CatalogWriter interface to enforce abstraction. The serving
// path narrows it to store.CatalogStore.
func NewCatalog(backend *Backend) (store.CatalogWriter, error) {
	return newCatalog(backend)
}

// newCatalog is an internal constructor that returns the concrete type.
func newCatalog(backend *Backend) (*Catalog, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	return &Catalog{backend: backend}, nil
}

// Count returns the number of records in the store.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	if c.backend.IsClosed() {
		return 0, store.ErrStorageClosed
	}

	var count int
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(catalogCountKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			count = 0
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			count = decodeCount(val)
			return nil
		})
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetByRow retrieves the record stored at the given row position.
func (c *Catalog) GetByRow(ctx context.Context, row int) (*catalog.CatalogRecord, error) {
	if c.backend.IsClosed() {
		return nil, store.ErrStorageClosed
	}
	if row < 0 {
		return nil, store.ErrInvalidRow
	}

	var record *catalog.CatalogRecord
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCatalogRowKey(row))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = store.UnmarshalCatalogRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// AppendRecords appends records in order, assigning sequential row positions.
// The whole batch commits in a single transaction.
func (c *Catalog) AppendRecords(ctx context.Context, records ...*catalog.CatalogRecord) error {
	if c.backend.IsClosed() {
		return store.ErrStorageClosed
	}
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		if err := catalog.ValidateCatalogRecord(record); err != nil {
			return err
		}
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		next := 0
		item, err := tx.Get([]byte(catalogCountKey))
		if err == nil {
			if err := item.Value(func(val []byte) error {
				next = decodeCount(val)
				return nil
			}); err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		for _, record := range records {
			key := makeCatalogRowKey(next)
			if err := tx.Set(key, store.MarshalCatalogRecord(record)); err != nil {
				return err
			}
			next++
		}

		if err := tx.Set([]byte(catalogCountKey), encodeCount(next)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op: the backend owns the database handle.
func (c *Catalog) Close() error {
	return nil
}
