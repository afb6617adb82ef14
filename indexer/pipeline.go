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

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/hirewise/assessrec/ai"
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/index"
	"github.com/hirewise/assessrec/store"
)

const defaultBatchSize = 32

// Pipeline builds the row-aligned store/index pair from catalog records.
// Embedding batches run concurrently over a worker pool; records are written
// to the store strictly in input order so row alignment holds.
type Pipeline struct {
	writer    store.CatalogWriter
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records are embedded per request.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.batchSize = size
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new catalog build pipeline.
func NewPipeline(writer store.CatalogWriter, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if writer == nil {
		return nil, ErrCatalogWriterRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		writer:    writer,
		embedder:  provider.Embedder(),
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Build embeds all records and produces the vector index, appending the
// records to the catalog store in input order. Returns the populated index;
// the caller persists it next to the store.
func (p *Pipeline) Build(ctx context.Context, records []*catalog.CatalogRecord) (*index.Flat, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	p.logger.Info("building catalog index", "records", len(records))

	vectors := make([][]float32, len(records))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		buildErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { buildErr = err })
	}

	for start := 0; start < len(records); start += p.batchSize {
		end := min(start+p.batchSize, len(records))
		batch := records[start:end]
		offset := start

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, record := range batch {
				texts[i] = EmbeddingText(record)
			}

			embeddings, err := p.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				p.logger.Error("error embedding batch", "offset", offset, "err", err)
				fail(err)
				return
			}
			if len(embeddings) != len(batch) {
				fail(fmt.Errorf("%w: batch of %d returned %d vectors",
					ErrEmbeddingMismatch, len(batch), len(embeddings)))
				return
			}

			for i, vector := range embeddings {
				vectors[offset+i] = vector
			}
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
			break
		}
	}

	wg.Wait()
	if buildErr != nil {
		return nil, buildErr
	}

	dim := len(vectors[0])
	for i, vector := range vectors {
		if len(vector) != dim {
			return nil, fmt.Errorf("%w: row %d has dimension %d, expected %d",
				ErrEmbeddingMismatch, i, len(vector), dim)
		}
	}

	idx, err := index.NewFlat(dim)
	if err != nil {
		return nil, err
	}
	if err := idx.Add(vectors...); err != nil {
		return nil, err
	}

	if err := p.writer.AppendRecords(ctx, records...); err != nil {
		return nil, fmt.Errorf("failed to append catalog records: %w", err)
	}

	p.logger.Info("catalog index built", "records", len(records), "dimension", dim)
	return idx, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
