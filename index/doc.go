// Package index provides a flat in-memory vector index with exact
// nearest-neighbor search.
//
// The index stores fixed-dimension float32 vectors in row order and answers
// k-nearest-neighbor queries by exhaustive scan under squared L2 distance.
// Row positions are stable: the i-th vector added is row i, which callers
// use to join search results back to catalog records.
//
// Indexes can be persisted to and loaded from a compact binary file via
// WriteFile and ReadFile, so an offline build step and a serving process
// can share the same corpus.
package index
