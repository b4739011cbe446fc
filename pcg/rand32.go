// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

const (
	// DefaultInc32 is the default increment (stream) of [Rand32].
	// It is arbitrary, and comes from the PCG reference C implementation.
	DefaultInc32 uint64 = 1442695040888963407

	// Multiplier32 is the LCG multiplier of [Rand32], also from the
	// PCG reference implementation. Unlike the increment, this value
	// must be chosen carefully.
	Multiplier32 uint64 = 6364136223846793005
)

// ErrInvalidState is returned when decoding a saved generator state fails.
var ErrInvalidState = errors.New("pcg: invalid state encoding")

// Rand32 is a PCG generator with 64 bits of state and 32-bit output
// (PCG-XSH-RR). The zero value is a valid but poorly seeded generator;
// use [NewRand32] or [NewRand32Inc].
type Rand32 struct {
	state uint64
	inc   uint64
}

// State32 is a snapshot of the internal state of a [Rand32].
type State32 struct {
	State uint64
	Inc   uint64
}

// NewRand32 returns a new generator with the given seed and
// the default increment [DefaultInc32].
func NewRand32(seed uint64) *Rand32 {
	return NewRand32Inc(seed, DefaultInc32)
}

// NewRand32Inc returns a new generator. The increment selects which
// of the possible sequences the generator produces, and the seed
// selects where in that sequence it starts. Both are arbitrary; the
// increment is made odd here, as the algorithm requires.
func NewRand32Inc(seed, increment uint64) *Rand32 {
	r := &Rand32{inc: increment<<1 | 1}
	r.Uint32()
	r.state += seed
	r.Uint32()
	return r
}

// FromState32 returns a generator that resumes exactly where the
// generator that produced the snapshot left off. Unlike [NewRand32Inc],
// it performs no additional setup.
func FromState32(s State32) *Rand32 {
	return &Rand32{state: s.State, inc: s.Inc}
}

// State returns a snapshot of the generator, which can be used to
// create a new generator that resumes from the same spot in the sequence.
func (r *Rand32) State() State32 {
	return State32{State: r.state, Inc: r.inc}
}

// SetState restores the generator to the given snapshot.
func (r *Rand32) SetState(s State32) {
	r.state, r.inc = s.State, s.Inc
}

// Uint32 returns a pseudo-random value in [0, math.MaxUint32].
func (r *Rand32) Uint32() uint32 {
	old := r.state
	r.state = old*Multiplier32 + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Int32 returns the bits of the next Uint32 as an int32.
func (r *Rand32) Int32() int32 {
	return int32(r.Uint32())
}

// Float32 returns a pseudo-random float32 in the half-open interval [0,1).
func (r *Rand32) Float32() float32 {
	return float32FromBits(r.Uint32())
}

// Uint64 returns a pseudo-random 64-bit value built from two
// successive draws, the first providing the low word.
func (r *Rand32) Uint64() uint64 {
	lo := uint64(r.Uint32())
	hi := uint64(r.Uint32())
	return hi<<32 | lo
}

// Int64 returns the bits of the next Uint64 as an int64.
func (r *Rand32) Int64() int64 {
	return int64(r.Uint64())
}

// Float64 returns a pseudo-random float64 in the half-open interval [0,1).
// It consumes two draws.
func (r *Rand32) Float64() float64 {
	return float64FromBits(r.Uint64())
}

// Range32 returns low + (high-low) * Float32().
func (r *Rand32) Range32(low, high float32) float32 {
	return low + (high-low)*r.Float32()
}

// Range64 returns low + (high-low) * Float64().
func (r *Rand32) Range64(low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

// Advance moves the generator delta steps forward in O(log delta),
// as if Uint32 had been called delta times.
func (r *Rand32) Advance(delta uint64) {
	accMult, accPlus := uint64(1), uint64(0)
	curMult, curPlus := Multiplier32, r.inc
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	r.state = accMult*r.state + accPlus
}

// Read fills p with pseudo-random bytes, four per draw in little-endian
// order. It always returns len(p), nil.
func (r *Rand32) Read(p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, r.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], r.Uint32())
		copy(p, b[:])
	}
	return n, nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. The encoding is
// the raw state followed by the increment, as little-endian 64-bit words.
func (r *Rand32) MarshalBinary() ([]byte, error) {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b, r.state)
	binary.LittleEndian.PutUint64(b[8:], r.inc)
	return b, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler], restoring
// a state saved by [Rand32.MarshalBinary].
func (r *Rand32) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("%w: Rand32 needs 16 bytes, got %d", ErrInvalidState, len(data))
	}
	var w [2]uint64
	ReadU64Into(data, w[:])
	if w[1]&1 == 0 {
		return fmt.Errorf("%w: Rand32 increment must be odd", ErrInvalidState)
	}
	r.state, r.inc = w[0], w[1]
	return nil
}
