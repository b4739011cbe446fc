// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"cogentcore.org/pcgrand/pcg"
	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types that have a uniform sampler.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sampler is a uniform sampler for values of type X. Each numeric
// kind has its own implementation: [UniformInt] for integers and
// [UniformFloat] for floats, with [UniformChar] for runes.
type Sampler[X any] interface {
	Distribution[X]
}

// Uniform is the uniform distribution over a range of values of
// type X. It must be created with [NewUniform], [NewUniformInclusive]
// or [NewUniformRange].
type Uniform[X Number] struct {
	sampler Sampler[X]
}

// NewUniform returns a uniform distribution over the half-open
// range [low, high). It fails with [ErrEmptyRange] if low >= high,
// and for floats with [ErrNonFinite] if low, high, or high - low
// is not finite.
func NewUniform[X Number](low, high X) (Uniform[X], error) {
	s, err := newSampler(low, high, false)
	if err != nil {
		return Uniform[X]{}, err
	}
	return Uniform[X]{sampler: s}, nil
}

// NewUniformInclusive returns a uniform distribution over the closed
// range [low, high]. It fails with [ErrEmptyRange] if low > high,
// and otherwise like [NewUniform].
func NewUniformInclusive[X Number](low, high X) (Uniform[X], error) {
	s, err := newSampler(low, high, true)
	if err != nil {
		return Uniform[X]{}, err
	}
	return Uniform[X]{sampler: s}, nil
}

// NewUniformRange returns a uniform distribution over the given range.
func NewUniformRange[X Number](r Range[X]) (Uniform[X], error) {
	if r.Inclusive {
		return NewUniformInclusive(r.Low, r.High)
	}
	return NewUniform(r.Low, r.High)
}

func (u Uniform[X]) Sample(rng pcg.Rng) X {
	return u.sampler.Sample(rng)
}

// SampleSingle returns one value from [low, high), without keeping
// the sampler. The result is distributed exactly as when sampling
// a distribution from [NewUniform].
func SampleSingle[X Number](low, high X, rng pcg.Rng) (X, error) {
	s, err := newSampler(low, high, false)
	if err != nil {
		return 0, err
	}
	return s.Sample(rng), nil
}

// SampleSingleInclusive returns one value from [low, high].
func SampleSingleInclusive[X Number](low, high X, rng pcg.Rng) (X, error) {
	s, err := newSampler(low, high, true)
	if err != nil {
		return 0, err
	}
	return s.Sample(rng), nil
}

// newSampler returns the sampler for the kind of X.
func newSampler[X Number](low, high X, inclusive bool) (Sampler[X], error) {
	if isFloat[X]() {
		f, err := newUniformFloat(low, high, inclusive)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	i, err := newUniformInt(low, high, inclusive)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Range is a range of values, with or without its upper bound.
type Range[X Number] struct {
	Low  X
	High X

	// Inclusive is whether High is part of the range.
	Inclusive bool
}

// IsEmpty returns whether the range contains no values.
func (r Range[X]) IsEmpty() bool {
	if r.Inclusive {
		return !(r.Low <= r.High)
	}
	return !(r.Low < r.High)
}

// SampleSingle returns one value from the range.
func (r Range[X]) SampleSingle(rng pcg.Rng) (X, error) {
	if r.Inclusive {
		return SampleSingleInclusive(r.Low, r.High, rng)
	}
	return SampleSingle(r.Low, r.High, rng)
}

// isFloat returns whether X is a floating point type.
func isFloat[X Number]() bool {
	var half X = 1
	half /= 2
	return half != 0
}
