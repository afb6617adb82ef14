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


package assessrec

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hirewise/assessrec/ai"
	"github.com/hirewise/assessrec/ai/openai"
	"github.com/hirewise/assessrec/index"
	"github.com/hirewise/assessrec/recommend"
	"github.com/hirewise/assessrec/store"
	"github.com/hirewise/assessrec/store/badger"
)

// System aggregates the immutable serving state: the catalog store, the
// row-aligned vector index, and the AI provider. It is constructed once at
// process start and shared across requests.
type System struct {
	backend  *badger.Backend
	catalog  store.CatalogWriter
	index    *index.Flat
	provider ai.AIProvider
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the AI service configuration used to build the default
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Used by tests to substitute mocks.
func WithProvider(provider ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// OpenSystem opens the catalog store at dbPath and the vector index at
// indexPath. The two must have matching row counts; a mismatch aborts the
// open since serving over drifted state would return garbage.
func OpenSystem(dbPath, indexPath string, opts ...SystemOption) (*System, error) {
	// Apply options
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, err
	}

	// Create catalog store
	cat, err := badger.NewCatalog(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Load vector index
	idx, err := index.ReadFile(indexPath)
	if err != nil {
		cat.Close()
		backend.Close()
		return nil, err
	}

	// Alignment is checked again by NewRecommender, but failing here gives
	// a startup error naming both paths.
	count, err := cat.Count(context.Background())
	if err != nil {
		cat.Close()
		backend.Close()
		return nil, err
	}
	if count != idx.Len() {
		cat.Close()
		backend.Close()
		return nil, fmt.Errorf("%w: %s has %d records, %s has %d vectors",
			recommend.ErrAlignmentMismatch, dbPath, count, indexPath, idx.Len())
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			cat.Close()
			backend.Close()
			return nil, err
		}
	}

	return &System{
		backend:  backend,
		catalog:  cat,
		index:    idx,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (s *System) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	// Close catalog store
	if err := s.catalog.Close(); err != nil {
		s.logger.Error("error closing catalog store", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *System) Catalog() store.CatalogStore {
	return s.catalog
}

func (s *System) Index() *index.Flat {
	return s.index
}

func (s *System) Provider() ai.AIProvider {
	return s.provider
}

func (s *System) NewRecommender(opts ...recommend.Option) (*recommend.Recommender, error) {
	return recommend.NewRecommender(s.catalog, s.index, s.provider, opts...)
}
