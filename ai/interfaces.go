package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// For a fixed model, the same text always yields the same vector.
	// Returns an error if the embedding generation fails; implementations
	// never substitute a zero vector for a failure.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch, in input order. Batch processing is more efficient than calling
	// EmbedText repeatedly during catalog builds.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// QueryParser extracts structured hiring intent from a free-form query.
// Implementations must be thread-safe for concurrent use.
type QueryParser interface {
	// ParseQuery analyzes a raw query string and extracts the skills, traits,
	// duration limit and remote requirement it expresses. Fields the query
	// does not mention are left nil/empty.
	// Returns an error if extraction fails; callers are expected to degrade
	// to an empty query rather than fail the request.
	ParseQuery(ctx context.Context, text string) (*ParsedQuery, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// QueryParser instances sharing one configuration.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// QueryParser returns the intent extraction service.
	// The returned QueryParser is safe for concurrent use.
	QueryParser() QueryParser

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
