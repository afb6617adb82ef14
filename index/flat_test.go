package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlat(t *testing.T) {
	t.Run("valid dimension", func(t *testing.T) {
		f, err := NewFlat(4)
		require.NoError(t, err)
		assert.Equal(t, 4, f.Dim())
		assert.Equal(t, 0, f.Len())
	})

	t.Run("zero dimension", func(t *testing.T) {
		_, err := NewFlat(0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("negative dimension", func(t *testing.T) {
		_, err := NewFlat(-3)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestFlatAdd(t *testing.T) {
	t.Run("assigns sequential rows", func(t *testing.T) {
		f, err := NewFlat(2)
		require.NoError(t, err)

		require.NoError(t, f.Add([]float32{1, 0}, []float32{0, 1}))
		require.NoError(t, f.Add([]float32{1, 1}))
		assert.Equal(t, 3, f.Len())
	})

	t.Run("rejects wrong dimension without partial insert", func(t *testing.T) {
		f, err := NewFlat(2)
		require.NoError(t, err)

		err = f.Add([]float32{1, 0}, []float32{1, 2, 3})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		assert.Equal(t, 0, f.Len(), "failed batch must not be partially applied")
	})
}

func TestFlatSearch(t *testing.T) {
	newIndex := func(t *testing.T) *Flat {
		f, err := NewFlat(2)
		require.NoError(t, err)
		require.NoError(t, f.Add(
			[]float32{0, 0}, // row 0
			[]float32{3, 4}, // row 1, dist 25 from origin
			[]float32{1, 0}, // row 2, dist 1 from origin
			[]float32{0, 2}, // row 3, dist 4 from origin
		))
		return f
	}

	t.Run("orders by squared distance ascending", func(t *testing.T) {
		f := newIndex(t)

		matches, err := f.Search([]float32{0, 0}, 4)
		require.NoError(t, err)
		require.Len(t, matches, 4)

		assert.Equal(t, 0, matches[0].Row)
		assert.Equal(t, 2, matches[1].Row)
		assert.Equal(t, 3, matches[2].Row)
		assert.Equal(t, 1, matches[3].Row)

		assert.InDelta(t, 0.0, matches[0].Distance, 1e-6)
		assert.InDelta(t, 1.0, matches[1].Distance, 1e-6)
		assert.InDelta(t, 4.0, matches[2].Distance, 1e-6)
		assert.InDelta(t, 25.0, matches[3].Distance, 1e-6)
	})

	t.Run("truncates to k", func(t *testing.T) {
		f := newIndex(t)

		matches, err := f.Search([]float32{0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, 0, matches[0].Row)
		assert.Equal(t, 2, matches[1].Row)
	})

	t.Run("k larger than corpus returns everything", func(t *testing.T) {
		f := newIndex(t)

		matches, err := f.Search([]float32{0, 0}, 100)
		require.NoError(t, err)
		assert.Len(t, matches, 4)
	})

	t.Run("equal distances keep ascending row order", func(t *testing.T) {
		f, err := NewFlat(2)
		require.NoError(t, err)
		require.NoError(t, f.Add(
			[]float32{1, 0},
			[]float32{0, 1},
			[]float32{-1, 0},
		))

		matches, err := f.Search([]float32{0, 0}, 3)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, []int{0, 1, 2}, []int{matches[0].Row, matches[1].Row, matches[2].Row})
	})

	t.Run("empty index", func(t *testing.T) {
		f, err := NewFlat(2)
		require.NoError(t, err)

		matches, err := f.Search([]float32{0, 0}, 5)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("zero k", func(t *testing.T) {
		f := newIndex(t)

		matches, err := f.Search([]float32{0, 0}, 0)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("query dimension mismatch", func(t *testing.T) {
		f := newIndex(t)

		_, err := f.Search([]float32{0, 0, 0}, 2)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}
