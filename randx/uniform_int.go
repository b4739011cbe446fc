// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"math/bits"

	"cogentcore.org/pcgrand/pcg"
	"golang.org/x/exp/constraints"
)

// UniformInt is the uniform sampler for integer types.
//
// Sampling takes the widening product of a random word and the size of
// the range: the high half is the result, and draws whose low half
// falls in the biased zone at the top are rejected and redrawn. The
// result is exactly uniform, with fewer than two draws on average.
// Types of up to 32 bits sample 32-bit words, and 64-bit types sample
// 64-bit words.
type UniformInt[X Number] struct {
	low X

	// size is the number of values in the range, as an unsigned value
	// of the width of X. Zero means the whole width of X.
	size uint64

	// zone is the largest accepted low half of the product.
	zone uint64

	// wide is whether to sample 64-bit words.
	wide bool
}

// NewUniformInt returns a sampler for the half-open range [low, high).
func NewUniformInt[X constraints.Integer](low, high X) (*UniformInt[X], error) {
	return newUniformInt(low, high, false)
}

// NewUniformIntInclusive returns a sampler for the closed range [low, high].
func NewUniformIntInclusive[X constraints.Integer](low, high X) (*UniformInt[X], error) {
	return newUniformInt(low, high, true)
}

func newUniformInt[X Number](low, high X, inclusive bool) (*UniformInt[X], error) {
	if inclusive {
		if !(low <= high) {
			return nil, ErrEmptyRange
		}
	} else {
		if !(low < high) {
			return nil, ErrEmptyRange
		}
		high--
	}
	nb := intBits[X]()
	mask := ^uint64(0) >> (64 - nb)
	// the subtraction wraps for signed types, which is still
	// correct modulo the width of X
	size := (uint64(high) - uint64(low) + 1) & mask
	u := &UniformInt[X]{low: low, size: size, wide: nb == 64}
	if u.wide {
		u.zone = math.MaxUint64
		if size > 0 {
			u.zone -= -size % size
		}
	} else {
		u.zone = math.MaxUint32
		if size > 0 {
			s := uint32(size)
			u.zone -= uint64(-s % s)
		}
	}
	return u, nil
}

func (u *UniformInt[X]) Sample(rng pcg.Rng) X {
	if u.wide {
		if u.size == 0 {
			return X(rng.Uint64())
		}
		for {
			hi, lo := bits.Mul64(rng.Uint64(), u.size)
			if lo <= u.zone {
				return u.low + X(hi)
			}
		}
	}
	if u.size == 0 {
		return X(rng.Uint32())
	}
	size := uint32(u.size)
	for {
		hi, lo := bits.Mul32(rng.Uint32(), size)
		if uint64(lo) <= u.zone {
			return u.low + X(hi)
		}
	}
}

// intBits returns the width in bits of the integer type X.
func intBits[X Number]() uint {
	for _, n := range []uint{8, 16, 32} {
		if X(uint64(1)<<n) == 0 {
			return n
		}
	}
	return 64
}
