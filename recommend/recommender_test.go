package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/assessrec/ai/mock"
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/index"
	badgerstore "github.com/hirewise/assessrec/store/badger"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// newFixture builds a recommender over an in-memory catalog whose rows embed
// at increasing distance from the query vector, so similarity rank equals
// row order. The mock embedder is wired to return the origin for any query.
func newFixture(t *testing.T, records ...*catalog.CatalogRecord) (*Recommender, *mock.MockEmbedder) {
	t.Helper()

	cat, backend, err := badgerstore.NewMemoryCatalog()
	require.NoError(t, err)
	t.Cleanup(func() {
		cat.Close()
		backend.Close()
	})

	idx, err := index.NewFlat(2)
	require.NoError(t, err)

	ctx := context.Background()
	for row, record := range records {
		require.NoError(t, cat.AppendRecords(ctx, record))
		require.NoError(t, idx.Add([]float32{float32(row + 1), 0}))
	}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{0, 0}, nil
	}
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockQueryParser())

	rec, err := NewRecommender(cat, idx, provider)
	require.NoError(t, err)
	return rec, embedder
}

func namedRecord(name string, duration *int, remote bool) *catalog.CatalogRecord {
	return &catalog.CatalogRecord{
		Id:              catalog.RecordID(name, ""),
		Name:            name,
		TestType:        "Knowledge & Skills",
		Remote:          remote,
		DurationMinutes: duration,
	}
}

func TestNewRecommenderValidation(t *testing.T) {
	cat, backend, err := badgerstore.NewMemoryCatalog()
	require.NoError(t, err)
	t.Cleanup(func() {
		cat.Close()
		backend.Close()
	})

	idx, err := index.NewFlat(2)
	require.NoError(t, err)
	provider := mock.NewMockProvider()

	t.Run("nil store", func(t *testing.T) {
		_, err := NewRecommender(nil, idx, provider)
		assert.ErrorIs(t, err, ErrCatalogStoreRequired)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewRecommender(cat, nil, provider)
		assert.ErrorIs(t, err, ErrIndexRequired)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewRecommender(cat, idx, nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})

	t.Run("alignment mismatch is fatal", func(t *testing.T) {
		require.NoError(t, cat.AppendRecords(context.Background(), namedRecord("Orphan Record", nil, false)))

		_, err := NewRecommender(cat, idx, provider)
		assert.ErrorIs(t, err, ErrAlignmentMismatch)
	})
}

func TestRecommendCardinality(t *testing.T) {
	names := []string{
		"Java Coding Test",
		"Numerical Reasoning",
		"Verbal Comprehension",
		"Mechanical Aptitude",
		"Sales Potential Profile",
		"Leadership Judgement",
		"Typing Speed Drill",
		"Customer Service Scenario",
		"Data Entry Accuracy",
		"Abstract Pattern Puzzle",
		"Financial Modeling Task",
		"Warehouse Safety Quiz",
		"Call Center Roleplay",
		"Project Planning Exercise",
		"Negotiation Styles Survey",
	}
	records := make([]*catalog.CatalogRecord, 0, len(names))
	for _, name := range names {
		records = append(records, namedRecord(name, intPtr(30), true))
	}
	rec, _ := newFixture(t, records...)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{})
	require.NoError(t, err)
	assert.Len(t, results, 10, "results are capped at 10")
}

func TestRecommendRankOrder(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("First Choice Assessment", intPtr(30), true),
		namedRecord("Second Choice Questionnaire", intPtr(30), true),
		namedRecord("Third Choice Simulation", intPtr(30), true),
	)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "First Choice Assessment", results[0].AssessmentName)
	assert.Equal(t, "Second Choice Questionnaire", results[1].AssessmentName)
	assert.Equal(t, "Third Choice Simulation", results[2].AssessmentName)
}

func TestRecommendConstraintSatisfaction(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("Quick Check", intPtr(15), true),
		namedRecord("Long Form Battery", intPtr(90), true),
		namedRecord("Medium Exercise", intPtr(40), true),
	)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{
		DurationLimit: intPtr(45),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Quick Check", results[0].AssessmentName)
	assert.Equal(t, "Medium Exercise", results[1].AssessmentName)
}

func TestRecommendRemoteSatisfaction(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("Onsite Only Panel", intPtr(30), false),
		namedRecord("Remote Friendly Screen", intPtr(30), true),
	)

	t.Run("remote required", func(t *testing.T) {
		results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{
			RemoteRequired: boolPtr(true),
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Remote Friendly Screen", results[0].AssessmentName)
		assert.Equal(t, "Yes", results[0].Remote)
	})

	t.Run("remote excluded", func(t *testing.T) {
		results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{
			RemoteRequired: boolPtr(false),
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Onsite Only Panel", results[0].AssessmentName)
	})

	t.Run("no constraint returns both", func(t *testing.T) {
		results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestRecommendNearDuplicateScenario(t *testing.T) {
	// A versioned variant that also fails the duration constraint: it is
	// dropped either way, and only the original survives.
	rec, _ := newFixture(t,
		namedRecord("Client Communication Skills", intPtr(45), false),
		namedRecord("Client Communication Skills (v2)", intPtr(80), false),
	)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{
		Skills:         []string{"communication"},
		Traits:         []string{"client-facing"},
		DurationLimit:  intPtr(50),
		RemoteRequired: boolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Client Communication Skills", results[0].AssessmentName)
}

func TestRecommendDuplicatesWithoutConstraints(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("Client Communication Skills", intPtr(45), false),
		namedRecord("Client Communication Skills (v2)", intPtr(40), false),
		namedRecord("Verify Numerical Ability", intPtr(20), true),
	)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Client Communication Skills", results[0].AssessmentName)
	assert.Equal(t, "Verify Numerical Ability", results[1].AssessmentName)
}

func TestRecommendUnknownDurationsPass(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("Situational Judgement Test", nil, true),
		namedRecord("Motivation Questionnaire", nil, true),
		namedRecord("Culture Fit Survey", nil, true),
	)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{
		DurationLimit: intPtr(30),
	})
	require.NoError(t, err)
	assert.Len(t, results, 3, "unknown durations are not excluded")
}

func TestRecommendEmptyCorpus(t *testing.T) {
	rec, _ := newFixture(t)

	results, err := rec.Recommend(context.Background(), catalog.StructuredQuery{
		Skills: []string{"anything"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommendEmbeddingFailure(t *testing.T) {
	rec, embedder := newFixture(t, namedRecord("Some Assessment", intPtr(30), true))

	t.Run("embedder error", func(t *testing.T) {
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("connection refused")
		}

		_, err := rec.Recommend(context.Background(), catalog.StructuredQuery{})
		assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
	})

	t.Run("empty vector", func(t *testing.T) {
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{}, nil
		}

		_, err := rec.Recommend(context.Background(), catalog.StructuredQuery{})
		assert.ErrorIs(t, err, ErrEmbeddingUnavailable)
	})
}

func TestRecommendIdempotent(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("Numerical Reasoning", intPtr(25), true),
		namedRecord("Verbal Reasoning", intPtr(25), true),
		namedRecord("Inductive Reasoning", intPtr(25), true),
	)

	query := catalog.StructuredQuery{Skills: []string{"reasoning"}}
	first, err := rec.Recommend(context.Background(), query)
	require.NoError(t, err)
	second, err := rec.Recommend(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// recordingMonitor captures pipeline callbacks for assertions.
type recordingMonitor struct {
	queryText  string
	retrieved  int
	rejected   []string
	suppressed []string
	accepted   []string
	finished   int
}

var _ Monitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(_ catalog.StructuredQuery) {}
func (m *recordingMonitor) AfterQueryText(text string)      { m.queryText = text }
func (m *recordingMonitor) AfterRetrieval(matches []index.Match) {
	m.retrieved = len(matches)
}
func (m *recordingMonitor) ConstraintRejected(record *catalog.CatalogRecord) {
	m.rejected = append(m.rejected, record.Name)
}
func (m *recordingMonitor) DuplicateSuppressed(record *catalog.CatalogRecord, _ string) {
	m.suppressed = append(m.suppressed, record.Name)
}
func (m *recordingMonitor) Accepted(record *catalog.CatalogRecord, _ float32) {
	m.accepted = append(m.accepted, record.Name)
}
func (m *recordingMonitor) Finish(results []catalog.Recommendation) {
	m.finished = len(results)
}

func TestRecommendWithMonitor(t *testing.T) {
	rec, _ := newFixture(t,
		namedRecord("Short Assessment", intPtr(20), true),
		namedRecord("Overlong Assessment", intPtr(90), true),
		namedRecord("Short Assessments", intPtr(20), true),
	)

	monitor := &recordingMonitor{}
	results, err := rec.RecommendWithMonitor(context.Background(), catalog.StructuredQuery{
		Skills:        []string{"typing"},
		Traits:        []string{"clerical"},
		DurationLimit: intPtr(30),
	}, monitor)
	require.NoError(t, err)

	assert.Equal(t, "a clerical role needing typing assessments under 30 minutes", monitor.queryText)
	assert.Equal(t, 3, monitor.retrieved)
	assert.Equal(t, []string{"Overlong Assessment"}, monitor.rejected)
	assert.Equal(t, []string{"Short Assessments"}, monitor.suppressed)
	assert.Equal(t, []string{"Short Assessment"}, monitor.accepted)
	assert.Equal(t, len(results), monitor.finished)
}
