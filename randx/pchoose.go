// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"cogentcore.org/pcgrand/pcg"
	"golang.org/x/exp/constraints"
)

// PChoose chooses an index in given slice of probabilities at random,
// according to the probability of each item, which must sum to 1.
// It is a linear scan, so a [WeightIndex] is better for many items
// or repeated draws.
func PChoose[F constraints.Float](ps []F, rng pcg.Rng) int {
	var pv F
	if floatIs32[F]() {
		pv = F(rng.Float32())
	} else {
		pv = F(rng.Float64())
	}
	var sum F
	for i, p := range ps {
		sum += p
		if pv < sum { // note: lower values already excluded
			return i
		}
	}
	return len(ps) - 1
}

// PChoose32 is [PChoose] for float32 probabilities.
func PChoose32(ps []float32, rng pcg.Rng) int {
	return PChoose(ps, rng)
}

// PChoose64 is [PChoose] for float64 probabilities.
func PChoose64(ps []float64, rng pcg.Rng) int {
	return PChoose(ps, rng)
}
