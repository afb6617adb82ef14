package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Client Communication Skills")
		b := IDFromContent("Client Communication Skills")
		assert.Equal(t, a, b)
	})

	t.Run("different content different id", func(t *testing.T) {
		a := IDFromContent("Client Communication Skills")
		b := IDFromContent("Client Communication Skills (v2)")
		assert.NotEqual(t, a, b)
	})
}

func TestRecordID(t *testing.T) {
	a := RecordID("Numerical Reasoning", "https://example.com/numerical")
	b := RecordID("Numerical Reasoning", "https://example.com/numerical-v2")
	assert.NotEqual(t, a, b, "same name under different URLs must not collide")
}

func TestStructuredQueryIsEmpty(t *testing.T) {
	assert.True(t, StructuredQuery{}.IsEmpty())

	limit := 30
	assert.False(t, StructuredQuery{DurationLimit: &limit}.IsEmpty())

	remote := false
	assert.False(t, StructuredQuery{RemoteRequired: &remote}.IsEmpty(),
		"explicit remote=false is a constraint, not absence")

	assert.False(t, StructuredQuery{Skills: []string{"python"}}.IsEmpty())
}

func TestCatalogRecordMUSRoundTrip(t *testing.T) {
	minutes := 45
	records := []CatalogRecord{
		{
			Id:              RecordID("Client Communication Skills", "https://example.com/ccs"),
			Name:            "Client Communication Skills",
			URL:             "https://example.com/ccs",
			TestType:        "Competencies",
			Adaptive:        true,
			Remote:          true,
			DurationMinutes: &minutes,
			Description:     "Measures client-facing communication.",
		},
		{
			// Unknown duration and empty optional fields.
			Id:   RecordID("Mystery Assessment", ""),
			Name: "Mystery Assessment",
		},
	}

	for _, original := range records {
		bs := make([]byte, CatalogRecordMUS.Size(original))
		n := CatalogRecordMUS.Marshal(original, bs)
		require.Equal(t, len(bs), n)

		decoded, n, err := CatalogRecordMUS.Unmarshal(bs)
		require.NoError(t, err)
		assert.Equal(t, len(bs), n)
		assert.Equal(t, original, decoded)

		skipped, err := CatalogRecordMUS.Skip(bs)
		require.NoError(t, err)
		assert.Equal(t, len(bs), skipped)
	}
}

func TestCatalogRecordMUSTruncated(t *testing.T) {
	record := CatalogRecord{Name: "Truncation Target", URL: "https://example.com"}
	bs := make([]byte, CatalogRecordMUS.Size(record))
	CatalogRecordMUS.Marshal(record, bs)

	_, _, err := CatalogRecordMUS.Unmarshal(bs[:len(bs)/2])
	assert.Error(t, err)
}
