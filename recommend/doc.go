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


// Package recommend implements the assessment recommendation pipeline.
//
// A request flows through fixed stages: the structured query is rendered
// into a natural-language phrase, embedded into a query vector, and matched
// against the vector index for the nearest candidates. Candidates are then
// filtered by hard constraints (duration limit, remote requirement),
// collapsed when their names are near-duplicates of already-accepted
// results, capped at ten entries, and projected into display form.
//
// The stages after retrieval run as a lazy iterator chain, so once ten
// results are accepted no further candidates are resolved from storage.
// The pipeline holds no state across requests; the store and index it is
// constructed over are treated as immutable for the process lifetime.
package recommend
