// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

var (
	// DefaultInc64 is the default increment (stream) of [Rand64].
	DefaultInc64 = Uint128{0x2FE0E169FFBD06E3, 0x5BC307BD4D2F814F}

	// Multiplier64 is the LCG multiplier of [Rand64]:
	// 47026247687942121848144207491837523525.
	Multiplier64 = Uint128{0x2360ED051FC65DA4, 0x4385DF649FCCF645}
)

// Rand64 is a PCG generator with 128 bits of state and 64-bit output.
// Use [NewRand64] or [NewRand64Inc] to create one.
type Rand64 struct {
	state Uint128
	inc   Uint128
}

// State64 is a snapshot of the internal state of a [Rand64].
type State64 struct {
	State Uint128
	Inc   Uint128
}

// NewRand64 returns a new generator with the given seed and
// the default increment [DefaultInc64].
func NewRand64(seed Uint128) *Rand64 {
	return NewRand64Inc(seed, DefaultInc64)
}

// NewRand64Inc returns a new generator with the given seed and
// increment (stream). The increment is made odd.
func NewRand64Inc(seed, increment Uint128) *Rand64 {
	r := &Rand64{inc: increment.Shl(1).Or(U128(1))}
	r.Uint64()
	r.state = r.state.Add(seed)
	r.Uint64()
	return r
}

// FromState64 returns a generator that resumes exactly where the
// generator that produced the snapshot left off.
func FromState64(s State64) *Rand64 {
	return &Rand64{state: s.State, inc: s.Inc}
}

// State returns a snapshot of the generator.
func (r *Rand64) State() State64 {
	return State64{State: r.state, Inc: r.inc}
}

// SetState restores the generator to the given snapshot.
func (r *Rand64) SetState(s State64) {
	r.state, r.inc = s.State, s.Inc
}

// Uint64 returns a pseudo-random value in [0, math.MaxUint64].
func (r *Rand64) Uint64() uint64 {
	old := r.state
	r.state = old.Mul(Multiplier64).Add(r.inc)
	xorshifted := old.Shr(29).Xor(old).Shr(58).Lo
	rot := int(old.Hi >> 58) // old >> 122
	return bits.RotateLeft64(xorshifted, -rot)
}

// Int64 returns the bits of the next Uint64 as an int64.
func (r *Rand64) Int64() int64 {
	return int64(r.Uint64())
}

// Float64 returns a pseudo-random float64 in the half-open interval [0,1).
func (r *Rand64) Float64() float64 {
	return float64FromBits(r.Uint64())
}

// Uint32 returns the high 32 bits of the next Uint64.
func (r *Rand64) Uint32() uint32 {
	return uint32(r.Uint64() >> 32)
}

// Int32 returns the bits of the next Uint32 as an int32.
func (r *Rand64) Int32() int32 {
	return int32(r.Uint32())
}

// Float32 returns a pseudo-random float32 in the half-open interval [0,1).
func (r *Rand64) Float32() float32 {
	return float32FromBits(r.Uint32())
}

// Range32 returns low + (high-low) * Float32().
func (r *Rand64) Range32(low, high float32) float32 {
	return low + (high-low)*r.Float32()
}

// Range64 returns low + (high-low) * Float64().
func (r *Rand64) Range64(low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

// Advance moves the generator delta steps forward in O(log delta).
func (r *Rand64) Advance(delta Uint128) {
	accMult, accPlus := U128(1), Uint128{}
	curMult, curPlus := Multiplier64, r.inc
	for !delta.IsZero() {
		if delta.Lo&1 != 0 {
			accMult = accMult.Mul(curMult)
			accPlus = accPlus.Mul(curMult).Add(curPlus)
		}
		curPlus = curMult.Add(U128(1)).Mul(curPlus)
		curMult = curMult.Mul(curMult)
		delta = delta.Shr(1)
	}
	r.state = accMult.Mul(r.state).Add(accPlus)
}

// Read fills p with pseudo-random bytes, eight per draw in little-endian
// order. It always returns len(p), nil.
func (r *Rand64) Read(p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], r.Uint64())
		copy(p, b[:])
	}
	return n, nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. The encoding is
// the raw state followed by the increment, each as two little-endian
// 64-bit words, low word first.
func (r *Rand64) MarshalBinary() ([]byte, error) {
	b := make([]byte, 32)
	binary.LittleEndian.PutUint64(b, r.state.Lo)
	binary.LittleEndian.PutUint64(b[8:], r.state.Hi)
	binary.LittleEndian.PutUint64(b[16:], r.inc.Lo)
	binary.LittleEndian.PutUint64(b[24:], r.inc.Hi)
	return b, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler], restoring
// a state saved by [Rand64.MarshalBinary].
func (r *Rand64) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("%w: Rand64 needs 32 bytes, got %d", ErrInvalidState, len(data))
	}
	var w [4]uint64
	ReadU64Into(data, w[:])
	if w[2]&1 == 0 {
		return fmt.Errorf("%w: Rand64 increment must be odd", ErrInvalidState)
	}
	r.state = Uint128{Hi: w[1], Lo: w[0]}
	r.inc = Uint128{Hi: w[3], Lo: w[2]}
	return nil
}
