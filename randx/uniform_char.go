// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"unicode/utf8"

	"cogentcore.org/pcgrand/pcg"
)

const (
	surrogateStart = 0xD800
	surrogateLen   = 0xE000 - 0xD800
)

// UniformChar is the uniform sampler for runes, which never produces
// a surrogate code point. The range is sampled as integers with the
// surrogate block removed, and values at or above the block are
// shifted back up past it.
type UniformChar struct {
	sampler *UniformInt[uint32]
}

// NewUniformChar returns a sampler for the half-open range [low, high).
// Both bounds must be valid Unicode scalar values.
func NewUniformChar(low, high rune) (*UniformChar, error) {
	return newUniformChar(low, high, false)
}

// NewUniformCharInclusive returns a sampler for the closed range [low, high].
func NewUniformCharInclusive(low, high rune) (*UniformChar, error) {
	return newUniformChar(low, high, true)
}

func newUniformChar(low, high rune, inclusive bool) (*UniformChar, error) {
	if !utf8.ValidRune(low) || !utf8.ValidRune(high) {
		return nil, ErrInvalidChar
	}
	s, err := newUniformInt(charToInt(low), charToInt(high), inclusive)
	if err != nil {
		return nil, err
	}
	return &UniformChar{sampler: s}, nil
}

func (u *UniformChar) Sample(rng pcg.Rng) rune {
	x := u.sampler.Sample(rng)
	if x >= surrogateStart {
		x += surrogateLen
	}
	return rune(x)
}

// charToInt maps a scalar value into the contiguous space without
// the surrogate block.
func charToInt(c rune) uint32 {
	x := uint32(c)
	if x >= surrogateStart {
		x -= surrogateLen
	}
	return x
}
