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


// Package ai provides abstractions for the AI services used by the
// assessment recommender.
//
// Two capabilities are defined:
//
//   - Embedder: generates vector embeddings from text, used for catalog
//     indexing and query retrieval
//   - QueryParser: maps a free-form query to structured hiring intent
//     (skills, traits, duration limit, remote requirement)
//
// The recommendation core depends only on these interfaces; production
// implementations live in ai/openai and test doubles in ai/mock.
//
// Public constructors in the implementation packages return interface types
// to enforce abstraction; mock constructors return concrete types so tests
// can inject behavior and assert on call counts.
package ai
