package mock

import (
	"context"
	"hash/fnv"
)

// MockDimension is the width of vectors produced by the default embedder
// behavior. Kept small so catalog fixtures stay cheap to build and compare.
const MockDimension = 8

// MockEmbedder is a configurable ai.Embedder double. Tests that need exact
// vectors assign the function fields; everything else gets stable
// hash-derived vectors so retrieval order is reproducible across runs.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEmbedder creates an embedder double with the hash-derived default
// behavior.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText returns the override result when EmbedTextFunc is set,
// otherwise the stable vector for the text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return vectorFor(text), nil
}

// EmbedTexts embeds a batch, one stable vector per input text in input
// order.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = vectorFor(text)
	}
	return vectors, nil
}

// CallCount reports how many embedding calls were made, overridden or not.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any overrides.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// vectorFor derives a stable MockDimension-wide vector from the text.
// Identical texts coincide exactly and distinct catalog texts land apart,
// so exact-nearest-row assertions hold without a real embedding model.
func vectorFor(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	vector := make([]float32, MockDimension)
	for i := range vector {
		// xorshift64 step per component
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		vector[i] = float32(int32(state%2001)-1000) / 1000
	}
	return vector
}
