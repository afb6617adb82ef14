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


// Package store provides the storage abstraction layer for assessrec.
//
// This package defines the catalog store interfaces that decouple storage
// implementation from the recommendation logic. Catalog records are addressed
// by row position, matching the row order of the vector index built alongside
// them, so a search hit at row i resolves to the record stored at row i.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backend
// implementations:
//
//	cat, err := badger.NewCatalog(backend)  // returns store.CatalogStore
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Usage
//
// Open a catalog store:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	cat, err := badger.NewCatalog(backend)
//
// Use in tests with in-memory storage:
//
//	cat, backend, err := badger.NewMemoryCatalog()
//
// # Thread Safety
//
// All store implementations must be thread-safe and support concurrent
// access from multiple goroutines.
package store
