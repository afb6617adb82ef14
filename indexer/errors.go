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


package indexer

import "errors"

var (
	// ErrCatalogWriterRequired is returned when a catalog writer is not provided.
	ErrCatalogWriterRequired = errors.New("catalog writer required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyCatalog indicates a build was attempted over zero records.
	ErrEmptyCatalog = errors.New("no catalog records to index")

	// ErrMissingColumn indicates the CSV lacks a required header column.
	ErrMissingColumn = errors.New("missing required CSV column")

	// ErrEmbeddingMismatch indicates the embedder returned a vector count or
	// dimension that does not line up with the submitted texts.
	ErrEmbeddingMismatch = errors.New("embedding result mismatch")
)
