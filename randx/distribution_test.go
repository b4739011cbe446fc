// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"strconv"
	"testing"

	"cogentcore.org/pcgrand/pcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstDraws = []uint32{0xa15c02b7, 0x7b47f409, 0xba1d3330, 0x83d2f293, 0xbfa4784b, 0xcbed606e}

func TestStandard(t *testing.T) {
	rng := newTestRng()
	assert.Equal(t, firstDraws[0], Standard[uint32]{}.Sample(rng))
	assert.Equal(t, int32(firstDraws[1]), Standard[int32]{}.Sample(rng))

	a, b := newTestRng(), newTestRng()
	assert.Equal(t, a.Uint64(), Standard[uint64]{}.Sample(b))
	assert.Equal(t, a.Int64(), Standard[int64]{}.Sample(b))
	assert.Equal(t, a.Float32(), Standard[float32]{}.Sample(b))
	assert.Equal(t, a.Float64(), Standard[float64]{}.Sample(b))

	before := rng.State()
	Standard[struct{}]{}.Sample(rng)
	assert.Equal(t, before, rng.State())

	n := 100000
	heads := 0
	for range n {
		if (Standard[bool]{}).Sample(rng) {
			heads++
		}
	}
	assert.InDelta(t, 0.5, float64(heads)/float64(n), 0.01)

	for range 10000 {
		f := Standard[float64]{}.Sample(rng)
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestStandardBool(t *testing.T) {
	// true exactly when the sign bit of the draw is set
	rng := newTestRng()
	for _, d := range firstDraws {
		assert.Equal(t, d >= 1<<31, Standard[bool]{}.Sample(rng))
	}
}

func TestDistFunc(t *testing.T) {
	d := DistFunc[uint32](func(rng pcg.Rng) uint32 {
		return rng.Uint32() & 0xff
	})
	rng := newTestRng()
	assert.Equal(t, firstDraws[0]&0xff, d.Sample(rng))
}

func TestSampleIter(t *testing.T) {
	rng := newTestRng()
	it := SampleIter[uint32](Standard[uint32]{}, rng)
	assert.Equal(t, firstDraws[:3], it.Take(3))
	assert.Equal(t, firstDraws[3], it.Next())

	// the iterator continues the sequence of its engine
	assert.Equal(t, firstDraws[4], rng.Uint32())

	var got []uint32
	for v := range SampleIter[uint32](Standard[uint32]{}, newTestRng()).All() {
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, firstDraws[:4], got)
	assert.Empty(t, it.Take(0))
}

func TestMap(t *testing.T) {
	half := func(v uint32) uint32 { return v / 2 }
	d := Map[uint32](Standard[uint32]{}, half)
	rng := newTestRng()
	for _, want := range firstDraws {
		assert.Equal(t, half(want), d.Sample(rng))
	}

	// composition applies the functions in order
	str := Map[uint32](d, func(v uint32) string { return strconv.Itoa(int(v)) })
	rng = newTestRng()
	assert.Equal(t, strconv.Itoa(int(firstDraws[0]/2)), str.Sample(rng))

	die, err := NewUniform(1, 7)
	require.NoError(t, err)
	even := Map[int](die, func(v int) bool { return v%2 == 0 })
	a, b := newTestRng(), newTestRng()
	for range 100 {
		assert.Equal(t, die.Sample(a)%2 == 0, even.Sample(b))
	}
}
