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


package recommend

import "errors"

var (
	// ErrCatalogStoreRequired is returned when a catalog store is not provided.
	ErrCatalogStoreRequired = errors.New("catalog store required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmbeddingUnavailable indicates the embedding service could not be
	// reached or returned an unusable vector.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrAlignmentMismatch indicates the catalog store and the vector index
	// disagree on row count. The two are built together; a mismatch means
	// one was reloaded without the other and results would be garbage.
	ErrAlignmentMismatch = errors.New("catalog store and vector index row counts do not match")
)
