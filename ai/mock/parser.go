package mock

import (
	"context"

	"github.com/hirewise/assessrec/ai"
)

// MockQueryParser is a test double for ai.QueryParser.
// It allows custom behavior injection via function fields.
type MockQueryParser struct {
	// ParseQueryFunc is called by ParseQuery if set.
	// If nil, returns an empty parsed query.
	ParseQueryFunc func(ctx context.Context, text string) (*ai.ParsedQuery, error)

	callCount int
}

// NewMockQueryParser creates a mock query parser with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockParser().
func NewMockQueryParser() *MockQueryParser {
	return &MockQueryParser{}
}

// ParseQuery returns an empty parsed query by default.
// No skills, no traits, no constraints: the caller falls back to raw-text
// behavior, which is the safest default for tests.
func (m *MockQueryParser) ParseQuery(ctx context.Context, text string) (*ai.ParsedQuery, error) {
	m.callCount++

	if m.ParseQueryFunc != nil {
		return m.ParseQueryFunc(ctx, text)
	}

	return &ai.ParsedQuery{
		Skills: []string{},
		Traits: []string{},
	}, nil
}

// CallCount returns the number of times ParseQuery was called.
func (m *MockQueryParser) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockQueryParser) Reset() {
	m.callCount = 0
	m.ParseQueryFunc = nil
}
