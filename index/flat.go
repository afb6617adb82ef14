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


package index

import (
	"fmt"
	"slices"
)

// Match is a single search result: the row of the matched vector and its
// squared L2 distance from the query.
type Match struct {
	Row      int
	Distance float32
}

// Flat is an exact nearest-neighbor index over fixed-dimension vectors.
// Vectors are stored row-major in a single contiguous slice; the i-th
// vector added occupies row i forever. Flat is not safe for concurrent
// mutation; concurrent Search calls are fine once building is done.
type Flat struct {
	dim  int
	data []float32
}

// NewFlat creates an empty flat index for vectors of the given dimension.
func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Flat{dim: dim}, nil
}

// Dim returns the vector dimension of the index.
func (f *Flat) Dim() int {
	return f.dim
}

// Len returns the number of vectors in the index.
func (f *Flat) Len() int {
	return len(f.data) / f.dim
}

// Add appends vectors to the index in order. Rows are assigned sequentially
// starting at the current Len. If any vector has the wrong dimension the
// index is left unchanged.
func (f *Flat) Add(vectors ...[]float32) error {
	for i, v := range vectors {
		if len(v) != f.dim {
			return fmt.Errorf("%w: vector %d has dimension %d, index expects %d",
				ErrDimensionMismatch, i, len(v), f.dim)
		}
	}
	for _, v := range vectors {
		f.data = append(f.data, v...)
	}
	return nil
}

// Search returns the k nearest vectors to query by squared L2 distance,
// closest first. Fewer than k matches are returned when the index holds
// fewer than k vectors. Ties on distance keep ascending row order.
func (f *Flat) Search(query []float32, k int) ([]Match, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("%w: query has dimension %d, index expects %d",
			ErrDimensionMismatch, len(query), f.dim)
	}
	if k <= 0 {
		return []Match{}, nil
	}

	n := f.Len()
	matches := make([]Match, 0, n)
	for row := 0; row < n; row++ {
		base := row * f.dim
		var dist float32
		for j, q := range query {
			d := f.data[base+j] - q
			dist += d * d
		}
		matches = append(matches, Match{Row: row, Distance: dist})
	}

	// Stable sort keeps ascending row order for equal distances.
	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}
