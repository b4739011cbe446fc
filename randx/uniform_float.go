// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"

	"cogentcore.org/pcgrand/pcg"
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// UniformFloat is the uniform sampler for float types. A sample is
// low + scale*u, for u drawn from [0, 1). The scale is shrunk when the
// distribution is created until no rounding of the product can reach
// past the upper bound.
type UniformFloat[X Number] struct {
	low   X
	scale X
	f32   bool
}

// NewUniformFloat returns a sampler for the half-open range [low, high).
func NewUniformFloat[X constraints.Float](low, high X) (*UniformFloat[X], error) {
	return newUniformFloat(low, high, false)
}

// NewUniformFloatInclusive returns a sampler for the closed range [low, high].
func NewUniformFloatInclusive[X constraints.Float](low, high X) (*UniformFloat[X], error) {
	return newUniformFloat(low, high, true)
}

func newUniformFloat[X Number](low, high X, inclusive bool) (*UniformFloat[X], error) {
	f32 := floatIs32[X]()
	if !isFinite(low, f32) || !isFinite(high, f32) {
		return nil, ErrNonFinite
	}
	if inclusive {
		if !(low <= high) {
			return nil, ErrEmptyRange
		}
	} else if !(low < high) {
		return nil, ErrEmptyRange
	}
	maxRand := maxRandFloat[X](f32)
	var scale X
	if inclusive {
		scale = X(high-low) / maxRand
	} else {
		scale = X(high - low)
	}
	if !isFinite(scale, f32) {
		return nil, ErrNonFinite
	}
	for {
		top := X(X(scale*maxRand) + low)
		if inclusive {
			if !(top > high) {
				break
			}
		} else if !(top >= high) {
			break
		}
		scale = nextDown(scale, f32)
	}
	return &UniformFloat[X]{low: low, scale: scale, f32: f32}, nil
}

func (u *UniformFloat[X]) Sample(rng pcg.Rng) X {
	var v X
	if u.f32 {
		v = X(rng.Float32())
	} else {
		v = X(rng.Float64())
	}
	return X(X(v*u.scale) + u.low)
}

// floatIs32 returns whether the float type X is 32 bits wide, which
// cannot hold 2^24+1 exactly.
func floatIs32[X Number]() bool {
	v := 1<<24 + 1
	return int(X(v)) != v
}

// maxRandFloat returns the largest value below 1 of the float type X,
// which is the largest value of the standard float draw.
func maxRandFloat[X Number](f32 bool) X {
	if f32 {
		return X(math32.Nextafter(1, 0))
	}
	return X(math.Nextafter(1, 0))
}

func isFinite[X Number](x X, f32 bool) bool {
	if f32 {
		f := float32(x)
		return !math32.IsNaN(f) && !math32.IsInf(f, 0)
	}
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// nextDown returns the next float toward zero from the positive x.
func nextDown[X Number](x X, f32 bool) X {
	if f32 {
		return X(math32.Nextafter(float32(x), 0))
	}
	return X(math.Nextafter(float64(x), 0))
}
