package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalogRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		minutes := 30
		err := ValidateCatalogRecord(&CatalogRecord{
			Name:            "Verbal Reasoning",
			DurationMinutes: &minutes,
		})
		assert.NoError(t, err)
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateCatalogRecord(nil)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("empty name", func(t *testing.T) {
		err := ValidateCatalogRecord(&CatalogRecord{})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("negative duration", func(t *testing.T) {
		minutes := -5
		err := ValidateCatalogRecord(&CatalogRecord{
			Name:            "Broken",
			DurationMinutes: &minutes,
		})
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})

	t.Run("unknown duration is valid", func(t *testing.T) {
		err := ValidateCatalogRecord(&CatalogRecord{Name: "No Duration"})
		assert.NoError(t, err)
	})
}

func TestNormalizeStructuredQuery(t *testing.T) {
	t.Run("trims and drops empty terms", func(t *testing.T) {
		q := NormalizeStructuredQuery(StructuredQuery{
			Skills: []string{"  communication ", "", "   "},
			Traits: []string{"client-facing"},
		})
		assert.Equal(t, []string{"communication"}, q.Skills)
		assert.Equal(t, []string{"client-facing"}, q.Traits)
	})

	t.Run("non-positive duration becomes no constraint", func(t *testing.T) {
		zero := 0
		q := NormalizeStructuredQuery(StructuredQuery{DurationLimit: &zero})
		assert.Nil(t, q.DurationLimit)

		negative := -10
		q = NormalizeStructuredQuery(StructuredQuery{DurationLimit: &negative})
		assert.Nil(t, q.DurationLimit)
	})

	t.Run("positive duration is copied", func(t *testing.T) {
		limit := 45
		q := NormalizeStructuredQuery(StructuredQuery{DurationLimit: &limit})
		require.NotNil(t, q.DurationLimit)
		assert.Equal(t, 45, *q.DurationLimit)

		// The copy must not alias the input.
		limit = 60
		assert.Equal(t, 45, *q.DurationLimit)
	})

	t.Run("remote flag passes through", func(t *testing.T) {
		remote := false
		q := NormalizeStructuredQuery(StructuredQuery{RemoteRequired: &remote})
		require.NotNil(t, q.RemoteRequired)
		assert.False(t, *q.RemoteRequired)

		q = NormalizeStructuredQuery(StructuredQuery{})
		assert.Nil(t, q.RemoteRequired)
	})

	t.Run("empty query stays empty", func(t *testing.T) {
		q := NormalizeStructuredQuery(StructuredQuery{})
		assert.True(t, q.IsEmpty())
	})
}
