package recommend

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/hirewise/assessrec/ai"
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/index"
	"github.com/hirewise/assessrec/store"
)

const (
	// maxResults is the hard cap on returned recommendations.
	maxResults = 10

	// retrievalCeiling is the largest candidate set requested from the
	// index. Generous over-fetch so filtering and dedup can still fill
	// the final cap.
	retrievalCeiling = 200

	defaultEmbedTimeout = 30 * time.Second
)

// Recommender runs the recommendation pipeline over an immutable catalog
// store and vector index pair. Safe for concurrent use.
type Recommender struct {
	store        store.CatalogStore
	index        *index.Flat
	embedder     ai.Embedder
	embedTimeout time.Duration
	logger       *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithEmbedTimeout bounds the time spent waiting on the embedding service
// per request. Default is 30 seconds.
func WithEmbedTimeout(timeout time.Duration) Option {
	return func(r *Recommender) error {
		if timeout > 0 {
			r.embedTimeout = timeout
		}
		return nil
	}
}

// NewRecommender creates a new recommender over a catalog store and a
// vector index built from the same corpus. The store and index row counts
// must match exactly; a mismatch is fatal, never degraded.
func NewRecommender(
	catalogStore store.CatalogStore,
	idx *index.Flat,
	provider ai.AIProvider,
	opts ...Option,
) (*Recommender, error) {
	if catalogStore == nil {
		return nil, ErrCatalogStoreRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	count, err := catalogStore.Count(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog records: %w", err)
	}
	if count != idx.Len() {
		return nil, fmt.Errorf("%w: store has %d records, index has %d vectors",
			ErrAlignmentMismatch, count, idx.Len())
	}

	r := &Recommender{
		store:        catalogStore,
		index:        idx,
		embedder:     provider.Embedder(),
		embedTimeout: defaultEmbedTimeout,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recommend returns up to 10 assessments matching the structured query,
// ordered by ascending similarity distance.
func (r *Recommender) Recommend(ctx context.Context, query catalog.StructuredQuery) ([]catalog.Recommendation, error) {
	return r.RecommendWithMonitor(ctx, query, nil)
}

// RecommendWithMonitor runs the pipeline with monitoring. The monitor
// receives callbacks at each stage of the request.
func (r *Recommender) RecommendWithMonitor(ctx context.Context, query catalog.StructuredQuery, monitor Monitor) ([]catalog.Recommendation, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query = catalog.NormalizeStructuredQuery(query)
	monitor.Start(query)

	text := BuildQueryText(query)
	monitor.AfterQueryText(text)

	embedCtx, cancel := context.WithTimeout(ctx, r.embedTimeout)
	defer cancel()

	vector, err := r.embedder.EmbedText(embedCtx, text)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", text, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingUnavailable, err)
	}
	if len(vector) == 0 {
		r.logger.Error("embedding service returned empty vector", "query", text)
		return nil, fmt.Errorf("%w: empty vector", ErrEmbeddingUnavailable)
	}

	total := r.index.Len()
	if total == 0 {
		monitor.Finish([]catalog.Recommendation{})
		return []catalog.Recommendation{}, nil
	}

	k := min(retrievalCeiling, total)
	matches, err := r.index.Search(vector, k)
	if err != nil {
		r.logger.Error("error searching vector index", "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(matches)

	// Lazy chain: resolve -> filter -> dedup, consumed until the cap is
	// hit so unused candidates are never read from storage.
	var resolveErr error
	candidates := r.resolveCandidates(ctx, matches, &resolveErr)
	survivors := suppressDuplicates(filterCandidates(candidates, query, monitor), monitor)

	results := make([]catalog.Recommendation, 0, maxResults)
	for candidate := range survivors {
		monitor.Accepted(candidate.Record, candidate.Distance)
		results = append(results, ProjectRecord(candidate.Record))
		if len(results) == maxResults {
			break
		}
	}
	if resolveErr != nil {
		r.logger.Error("error resolving catalog records", "err", resolveErr)
		return nil, resolveErr
	}

	monitor.Finish(results)
	r.logger.Debug("recommendation complete",
		"query", text,
		"retrieved", len(matches),
		"returned", len(results))
	return results, nil
}

// resolveCandidates lazily joins index matches to their catalog records by
// row position. The first storage error stops the sequence and is reported
// through errp.
func (r *Recommender) resolveCandidates(ctx context.Context, matches []index.Match, errp *error) iter.Seq[catalog.CandidateMatch] {
	return func(yield func(catalog.CandidateMatch) bool) {
		for _, match := range matches {
			record, err := r.store.GetByRow(ctx, match.Row)
			if err != nil {
				*errp = fmt.Errorf("failed to resolve row %d: %w", match.Row, err)
				return
			}
			candidate := catalog.CandidateMatch{
				Row:      match.Row,
				Record:   record,
				Distance: match.Distance,
			}
			if !yield(candidate) {
				return
			}
		}
	}
}
