// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "errors"

var (
	// ErrEmptyRange is returned by the uniform constructors when the
	// bounds describe no valid values.
	ErrEmptyRange = errors.New("randx: low > high (or equal if exclusive) in uniform distribution")

	// ErrNonFinite is returned when a float bound, or the span
	// between the bounds, is not finite.
	ErrNonFinite = errors.New("randx: non-finite range in uniform distribution")

	// ErrInvalidChar is returned when a bound of a [UniformChar] is not
	// a valid Unicode scalar value.
	ErrInvalidChar = errors.New("randx: invalid char bound in uniform distribution")

	// ErrInvalidProbability is returned by the [Bernoulli] constructors.
	ErrInvalidProbability = errors.New("randx: p is outside [0, 1] in Bernoulli distribution")

	// ErrNoItem is returned when no weights are given to a [WeightIndex].
	ErrNoItem = errors.New("randx: no weights provided in distribution")

	// ErrInvalidWeight is returned for a weight that is negative, NaN,
	// or otherwise invalid, and for misordered weight updates.
	ErrInvalidWeight = errors.New("randx: a weight is invalid in distribution")

	// ErrAllWeightsZero is returned when the weights sum to zero.
	ErrAllWeightsZero = errors.New("randx: all weights are zero in distribution")

	// ErrTooMany is returned when a weight update refers to an index
	// beyond the number of weighted items.
	ErrTooMany = errors.New("randx: weight index out of range in distribution")

	// ErrEmptySlice is returned by [NewSlice] for an empty slice.
	ErrEmptySlice = errors.New("randx: tried to create a Slice distribution from an empty slice")

	// ErrInvalidParam is returned by the constructors of the
	// continuous distributions.
	ErrInvalidParam = errors.New("randx: invalid distribution parameter")
)
