// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer, used for the state and
// increment of [Rand64]. All arithmetic wraps modulo 2^128.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// U128 returns the Uint128 with the given low word and a zero high word.
func U128(lo uint64) Uint128 {
	return Uint128{Lo: lo}
}

// IsZero returns whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Add returns u + v.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, c := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, c)
	return Uint128{hi, lo}
}

// Mul returns u * v.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	hi += u.Hi*v.Lo + u.Lo*v.Hi
	return Uint128{hi, lo}
}

// Shl returns u << n, for n < 128.
func (u Uint128) Shl(n uint) Uint128 {
	if n >= 64 {
		return Uint128{u.Lo << (n - 64), 0}
	}
	return Uint128{u.Hi<<n | u.Lo>>(64-n), u.Lo << n}
}

// Shr returns u >> n, for n < 128.
func (u Uint128) Shr(n uint) Uint128 {
	if n >= 64 {
		return Uint128{0, u.Hi >> (n - 64)}
	}
	return Uint128{u.Hi >> n, u.Lo>>n | u.Hi<<(64-n)}
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{u.Hi | v.Hi, u.Lo | v.Lo}
}

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{u.Hi ^ v.Hi, u.Lo ^ v.Lo}
}

// Big returns u as a [big.Int].
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprint(u.Lo)
	}
	return u.Big().String()
}
