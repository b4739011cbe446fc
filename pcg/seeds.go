// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

// Seeds is a set of random seeds, typically used one per Run.
// The generator for run i is seeded with Seeds[i] and uses
// stream i, so generators for different runs never share a sequence.
type Seeds []uint64

// Init allocates given number of seeds and initializes them to
// sequential numbers 1..n
func (rs *Seeds) Init(n int) {
	*rs = make([]uint64, n)
	for i := range *rs {
		(*rs)[i] = uint64(i) + 1
	}
}

// NewSeeds sets a new set of random seeds, sequential from
// a base seed taken from the system random source.
func (rs *Seeds) NewSeeds() error {
	base, err := NewSeed()
	if err != nil {
		return err
	}
	for i := range *rs {
		(*rs)[i] = base + uint64(i)
	}
	return nil
}

// Rand32 returns a new [Rand32] for run idx.
func (rs Seeds) Rand32(idx int) *Rand32 {
	return NewRand32Inc(rs[idx], uint64(idx))
}

// Rand64 returns a new [Rand64] for run idx.
func (rs Seeds) Rand64(idx int) *Rand64 {
	return NewRand64Inc(U128(rs[idx]), U128(uint64(idx)))
}
