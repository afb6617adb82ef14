package openai

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/hirewise/assessrec/ai"
)

// Embedder produces query and catalog vectors from an OpenAI-compatible
// embeddings endpoint. The serving path sends one query string per request;
// the indexer sends batches of catalog texts.
type Embedder struct {
	backend embeddings.Embedder
	logger  *slog.Logger
}

// newEmbedder wires the langchaingo client for the configured embedding
// host and model. Local OpenAI-compatible services ignore the token, so a
// placeholder is sent.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	backend, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		backend: backend,
		logger:  slog.Default().With("component", "embedder"),
	}, nil
}

// NewEmbedder creates an embedder from the configuration. The concrete
// type stays internal; callers program against ai.Embedder.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText vectorizes a single query string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.backend.EmbedQuery(ctx, text)
	if err != nil {
		e.logger.Error("query embedding failed", "chars", len(text), "err", err)
		return nil, err
	}
	return vector, nil
}

// EmbedTexts vectorizes a batch of catalog texts, one vector per input in
// input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("embedding catalog batch", "size", len(texts))

	vectors, err := e.backend.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("batch embedding failed", "size", len(texts), "err", err)
		return nil, err
	}
	return vectors, nil
}
