// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"sort"

	"cogentcore.org/pcgrand/pcg"
)

// WeightIndex samples an index into a list of weights, with the
// probability of each index proportional to its weight. The weights
// can be changed in place with [WeightIndex.UpdateWeights].
//
// Sampling draws a value uniformly from [0, total) and finds the first
// cumulative weight above it with a binary search, so it takes
// O(log n) time, and items of weight zero are never chosen.
type WeightIndex[X Number] struct {

	// cumulative holds the running sums of the weights, where
	// cumulative[i] is the sum of the weights 0 through i. The last
	// weight is only included in total.
	cumulative []X

	total X

	dist Uniform[X]
}

// WeightPatch sets the weight of the item at Index to Weight.
type WeightPatch[X Number] struct {
	Index  int
	Weight X
}

// NewWeightIndex returns a WeightIndex for the given weights. It fails
// with [ErrNoItem] for no weights, [ErrInvalidWeight] for a negative
// or NaN weight, or a sum that overflows X, and [ErrAllWeightsZero]
// if the weights sum to zero.
func NewWeightIndex[X Number](weights []X) (*WeightIndex[X], error) {
	if len(weights) == 0 {
		return nil, ErrNoItem
	}
	var total X
	cumulative := make([]X, 0, len(weights)-1)
	for i, w := range weights {
		if !(w >= 0) {
			return nil, ErrInvalidWeight
		}
		if i > 0 {
			cumulative = append(cumulative, total)
		}
		next := total + w
		if next < total {
			return nil, ErrInvalidWeight
		}
		total = next
	}
	dist, err := weightDist(total)
	if err != nil {
		return nil, err
	}
	return &WeightIndex[X]{cumulative: cumulative, total: total, dist: dist}, nil
}

// weightDist returns the uniform distribution over [0, total).
func weightDist[X Number](total X) (Uniform[X], error) {
	if total == 0 {
		return Uniform[X]{}, ErrAllWeightsZero
	}
	dist, err := NewUniform(0, total)
	if err != nil {
		// an infinite float total
		return Uniform[X]{}, ErrInvalidWeight
	}
	return dist, nil
}

func (wi *WeightIndex[X]) Sample(rng pcg.Rng) int {
	v := wi.dist.Sample(rng)
	return sort.Search(len(wi.cumulative), func(i int) bool {
		return wi.cumulative[i] > v
	})
}

// Len returns the number of weighted items.
func (wi *WeightIndex[X]) Len() int {
	return len(wi.cumulative) + 1
}

// TotalWeight returns the sum of all the weights.
func (wi *WeightIndex[X]) TotalWeight() X {
	return wi.total
}

// Weight returns the weight of item i, which is recovered from the
// running sums and so may differ from the given float weight by
// rounding.
func (wi *WeightIndex[X]) Weight(i int) X {
	return wi.oldWeight(i, wi.cumulative)
}

// Weights returns all the weights, as for [WeightIndex.Weight].
func (wi *WeightIndex[X]) Weights() []X {
	ws := make([]X, wi.Len())
	for i := range ws {
		ws[i] = wi.Weight(i)
	}
	return ws
}

func (wi *WeightIndex[X]) oldWeight(i int, cumulative []X) X {
	w := wi.total
	if i < len(cumulative) {
		w = cumulative[i]
	}
	if i > 0 {
		w -= cumulative[i-1]
	}
	return w
}

// UpdateWeights sets the weights of the items in patches, which must
// be sorted by strictly increasing index. The update is atomic: all
// patches are checked first, and on any error the WeightIndex is left
// unchanged. An empty list of patches does nothing.
//
// It fails with [ErrInvalidWeight] for misordered or negative indexes
// and negative or NaN weights, [ErrTooMany] for an index past the last
// item, and [ErrAllWeightsZero] if the new weights sum to zero.
func (wi *WeightIndex[X]) UpdateWeights(patches []WeightPatch[X]) error {
	if len(patches) == 0 {
		return nil
	}
	n := len(wi.cumulative)
	total := wi.total
	for k, p := range patches {
		if k > 0 && patches[k-1].Index >= p.Index {
			return ErrInvalidWeight
		}
		if p.Index < 0 || !(p.Weight >= 0) {
			return ErrInvalidWeight
		}
		if p.Index > n {
			return ErrTooMany
		}
		total -= wi.oldWeight(p.Index, wi.cumulative)
		next := total + p.Weight
		if next < total {
			return ErrInvalidWeight
		}
		total = next
	}
	if !(total > 0) {
		return ErrAllWeightsZero
	}
	dist, err := weightDist(total)
	if err != nil {
		return err
	}

	// one pass from the first patched item, where prevOld is the old
	// running sum before item i and sum the new one
	first := patches[0].Index
	var sum, prevOld X
	if first > 0 {
		sum = wi.cumulative[first-1]
		prevOld = sum
	}
	next := 0
	for i := first; i < n; i++ {
		old := wi.cumulative[i]
		if next < len(patches) && patches[next].Index == i {
			sum += patches[next].Weight
			next++
		} else {
			sum += old - prevOld
		}
		prevOld = old
		wi.cumulative[i] = sum
	}
	wi.total = total
	wi.dist = dist
	return nil
}
