// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pcg provides permuted congruential pseudorandom number
// generators (PCG): [Rand32], with 64 bits of state and 32-bit output,
// and [Rand64], with 128 bits of state and 64-bit output.
//
// The generators are deterministic given their seed and increment,
// and their state can be saved and restored exactly. They are fast
// and statistically well distributed, but they are NOT suitable for
// cryptographic use.
//
// A generator is not safe for concurrent use. Each goroutine should
// own its own generator, which can be put on an independent stream
// by giving it a distinct increment (see [Seeds] and [StreamFromName]).
package pcg

// Rng is the capability that every random number engine provides,
// and that distributions in the randx package sample from.
//
// Engines implement their native width directly and derive the other
// width from it. Both [Rand32] and [Rand64] also satisfy the
// math/rand/v2 Source interface through Uint64.
type Rng interface {
	// Uint32 returns a pseudo-random value in [0, math.MaxUint32].
	Uint32() uint32

	// Int32 returns the bits of the next Uint32 as an int32.
	Int32() int32

	// Float32 returns a pseudo-random float32 in the half-open interval [0,1).
	Float32() float32

	// Uint64 returns a pseudo-random value in [0, math.MaxUint64].
	Uint64() uint64

	// Int64 returns the bits of the next Uint64 as an int64.
	Int64() int64

	// Float64 returns a pseudo-random float64 in the half-open interval [0,1).
	Float64() float64

	// Range32 returns low + (high-low) * Float32().
	Range32(low, high float32) float32

	// Range64 returns low + (high-low) * Float64().
	Range64(low, high float64) float64
}

const (
	// float32Precision is the number of random bits in a Float32:
	// the 23 stored mantissa bits plus one, so that every result is
	// exactly representable and strictly below 1.
	float32Precision = 23 + 1

	// float64Precision is the number of random bits in a Float64.
	float64Precision = 52 + 1

	float32Scale = 1.0 / (1 << float32Precision)
	float64Scale = 1.0 / (1 << float64Precision)
)

// float32FromBits converts the high bits of a 32-bit draw to a float32 in [0,1).
func float32FromBits(u uint32) float32 {
	return float32(u>>(32-float32Precision)) * float32Scale
}

// float64FromBits converts the high bits of a 64-bit draw to a float64 in [0,1).
func float64FromBits(u uint64) float64 {
	return float64(u>>(64-float64Precision)) * float64Scale
}
