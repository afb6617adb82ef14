// Package indexer implements the offline catalog build.
//
// It reads the scraped assessment catalog CSV, synthesizes one embedding
// text per record, embeds the texts in batches over a worker pool, and
// produces a row-aligned pair of outputs: catalog records appended to the
// metadata store in row order and a flat vector index holding the matching
// embedding at each row. The serving process loads both and refuses to
// start if their row counts have drifted apart.
package indexer
