// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	crand "crypto/rand"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// readEntropy fills dst with words decoded from the operating system's
// cryptographic random source.
func readEntropy(dst []uint64) error {
	b := make([]byte, 8*len(dst))
	if _, err := crand.Read(b); err != nil {
		return fmt.Errorf("read random seed: %w", err)
	}
	ReadU64Into(b, dst)
	return nil
}

// NewSeed returns a seed read from the operating system's
// cryptographic random source.
func NewSeed() (uint64, error) {
	var w [1]uint64
	if err := readEntropy(w[:]); err != nil {
		return 0, err
	}
	return w[0], nil
}

// NewRand32FromEntropy returns a [Rand32] whose seed and increment
// are both taken from the operating system's random source.
func NewRand32FromEntropy() (*Rand32, error) {
	var w [2]uint64
	if err := readEntropy(w[:]); err != nil {
		return nil, err
	}
	return NewRand32Inc(w[0], w[1]), nil
}

// NewRand64FromEntropy returns a [Rand64] whose seed and increment
// are both taken from the operating system's random source.
func NewRand64FromEntropy() (*Rand64, error) {
	var w [4]uint64
	if err := readEntropy(w[:]); err != nil {
		return nil, err
	}
	return NewRand64Inc(Uint128{Hi: w[1], Lo: w[0]}, Uint128{Hi: w[3], Lo: w[2]}), nil
}

// StreamFromName returns an increment (stream selector) derived from
// the given name, so that named components each get their own
// reproducible stream, for example:
//
//	rng := pcg.NewRand32Inc(seed, pcg.StreamFromName("spawner"))
func StreamFromName(name string) uint64 {
	return xxhash.Sum64String(name)
}
