// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"cogentcore.org/pcgrand/pcg"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRng() *pcg.Rand32 {
	return pcg.NewRand32Inc(42, 54)
}

// edgeRng always returns the largest value of every draw.
type edgeRng struct{}

func (edgeRng) Uint32() uint32   { return math.MaxUint32 }
func (edgeRng) Int32() int32     { return -1 }
func (edgeRng) Float32() float32 { return math32.Nextafter(1, 0) }
func (edgeRng) Uint64() uint64   { return math.MaxUint64 }
func (edgeRng) Int64() int64     { return -1 }
func (edgeRng) Float64() float64 { return math.Nextafter(1, 0) }
func (edgeRng) Range32(low, high float32) float32 {
	return low + (high-low)*math32.Nextafter(1, 0)
}
func (edgeRng) Range64(low, high float64) float64 {
	return low + (high-low)*math.Nextafter(1, 0)
}

func TestUniformErrors(t *testing.T) {
	_, err := NewUniform(5, 5)
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = NewUniform(6, 5)
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = NewUniformInclusive(6, 5)
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = NewUniformInclusive(uint8(3), 2)
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = NewUniform(1.0, 1.0)
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = NewUniform(math.NaN(), 1.0)
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = NewUniform(0, math.Inf(1))
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = NewUniform(-math.MaxFloat64, math.MaxFloat64)
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = NewUniformInclusive(float32(0), math32.Inf(1))
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = NewUniform(float32(-math.MaxFloat32), float32(math.MaxFloat32))
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = SampleSingle(2, 2, newTestRng())
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestUniformInt(t *testing.T) {
	rng := newTestRng()
	d, err := NewUniform(-3, 7)
	require.NoError(t, err)
	seen := map[int]int{}
	for range 100000 {
		v := d.Sample(rng)
		require.GreaterOrEqual(t, v, -3)
		require.Less(t, v, 7)
		seen[v]++
	}
	assert.Len(t, seen, 10)

	di, err := NewUniformInclusive(5, 5)
	require.NoError(t, err)
	for range 100 {
		assert.Equal(t, 5, di.Sample(rng))
	}
}

func TestUniformIntFrequencies(t *testing.T) {
	rng := newTestRng()
	d, err := NewUniform[uint16](0, 6)
	require.NoError(t, err)
	counts := make([]int, 6)
	n := 60000
	for range n {
		counts[d.Sample(rng)]++
	}
	for i, c := range counts {
		assert.InDelta(t, n/6, c, 500, "value %d", i)
	}
}

func TestUniformIntSequence(t *testing.T) {
	// 32-bit types draw one 32-bit word per sample, and 64-bit types
	// one 64-bit word
	d32, err := NewUniform[int32](1, 7)
	require.NoError(t, err)
	rng := newTestRng()
	assert.Equal(t, []int32{4, 3, 5, 4, 5}, SampleIter(d32, rng).Take(5))

	d64, err := NewUniform[int64](1, 7)
	require.NoError(t, err)
	rng = newTestRng()
	assert.Equal(t, []int64{3, 4, 5, 4, 6}, SampleIter(d64, rng).Take(5))
}

func TestUniformIntFullRange(t *testing.T) {
	rng := newTestRng()
	d, err := NewUniformInclusive[int8](math.MinInt8, math.MaxInt8)
	require.NoError(t, err)
	seen := map[int8]bool{}
	for range 100000 {
		seen[d.Sample(rng)] = true
	}
	assert.Len(t, seen, 256)

	du, err := NewUniform[uint8](0, math.MaxUint8)
	require.NoError(t, err)
	for range 10000 {
		assert.NotEqual(t, uint8(math.MaxUint8), du.Sample(rng))
	}

	d64, err := NewUniformInclusive[uint64](0, math.MaxUint64)
	require.NoError(t, err)
	a, b := d64.Sample(rng), d64.Sample(rng)
	assert.NotEqual(t, a, b)

	dn, err := NewUniformInclusive[int64](math.MinInt64, math.MaxInt64)
	require.NoError(t, err)
	neg := 0
	for range 1000 {
		if dn.Sample(rng) < 0 {
			neg++
		}
	}
	assert.InDelta(t, 500, neg, 100)

	dt, err := NewUniformInclusive[int64](math.MaxInt64-1, math.MaxInt64)
	require.NoError(t, err)
	for range 100 {
		assert.GreaterOrEqual(t, dt.Sample(rng), int64(math.MaxInt64-1))
	}
}

func TestUniformFloat(t *testing.T) {
	rng := newTestRng()
	d, err := NewUniform(1.0, 2.0)
	require.NoError(t, err)
	sum := 0.0
	n := 100000
	for range n {
		v := d.Sample(rng)
		require.GreaterOrEqual(t, v, 1.0)
		require.Less(t, v, 2.0)
		sum += v
	}
	assert.InDelta(t, 1.5, sum/float64(n), 0.01)

	d32, err := NewUniformInclusive[float32](-1, 1)
	require.NoError(t, err)
	for range 10000 {
		v := d32.Sample(rng)
		require.GreaterOrEqual(t, v, float32(-1))
		require.LessOrEqual(t, v, float32(1))
	}

	de, err := NewUniformInclusive(2.5, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, de.Sample(rng))
}

func TestUniformFloatEdges(t *testing.T) {
	ranges := [][2]float64{
		{1, 2}, {-3.7, 9.1}, {1, 1.0000001}, {1e15, 1e15 + 3},
		{0, 1e-300}, {-1e300, 1e300}, {1, math.Nextafter(1, 2)},
	}
	for _, r := range ranges {
		d, err := NewUniform(r[0], r[1])
		require.NoError(t, err)
		assert.Less(t, d.Sample(edgeRng{}), r[1], "range %v", r)

		di, err := NewUniformInclusive(r[0], r[1])
		require.NoError(t, err)
		assert.LessOrEqual(t, di.Sample(edgeRng{}), r[1], "range %v", r)
	}

	ranges32 := [][2]float32{
		{1, 2}, {-3.7, 9.1}, {1, 1.0001}, {1e7, 1e7 + 3},
		{1, math32.Nextafter(1, 2)},
	}
	for _, r := range ranges32 {
		d, err := NewUniform(r[0], r[1])
		require.NoError(t, err)
		assert.Less(t, d.Sample(edgeRng{}), r[1], "range %v", r)

		di, err := NewUniformInclusive(r[0], r[1])
		require.NoError(t, err)
		assert.LessOrEqual(t, di.Sample(edgeRng{}), r[1], "range %v", r)
	}

	// a range of one float only ever gives its low bound
	rng := newTestRng()
	one, err := NewUniform(1.0, math.Nextafter(1, 2))
	require.NoError(t, err)
	for range 1000 {
		assert.Equal(t, 1.0, one.Sample(rng))
	}
}

func TestUniformChar(t *testing.T) {
	rng := newTestRng()
	d, err := NewUniformCharInclusive(0xD7FF, 0xE000)
	require.NoError(t, err)
	seen := map[rune]int{}
	for range 1000 {
		seen[d.Sample(rng)]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen[0xD7FF], 0)
	assert.Greater(t, seen[0xE000], 0)

	d, err = NewUniformChar('a', 'z'+1)
	require.NoError(t, err)
	for range 1000 {
		c := d.Sample(rng)
		require.GreaterOrEqual(t, c, 'a')
		require.LessOrEqual(t, c, 'z')
	}

	d, err = NewUniformCharInclusive(0, 0x10FFFF)
	require.NoError(t, err)
	for range 10000 {
		c := d.Sample(rng)
		require.False(t, c >= 0xD800 && c < 0xE000)
	}

	_, err = NewUniformChar(0xD800, 0xE001)
	assert.ErrorIs(t, err, ErrInvalidChar)
	_, err = NewUniformChar('a', 0x110000)
	assert.ErrorIs(t, err, ErrInvalidChar)
	_, err = NewUniformChar('b', 'a')
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestRange(t *testing.T) {
	assert.True(t, Range[int]{Low: 3, High: 3}.IsEmpty())
	assert.False(t, Range[int]{Low: 3, High: 3, Inclusive: true}.IsEmpty())
	assert.True(t, Range[float64]{Low: math.NaN(), High: 1}.IsEmpty())

	rng := newTestRng()
	v, err := Range[int]{Low: 10, High: 20}.SampleSingle(rng)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 10)
	assert.Less(t, v, 20)

	_, err = Range[int]{Low: 10, High: 10}.SampleSingle(rng)
	assert.ErrorIs(t, err, ErrEmptyRange)

	d, err := NewUniformRange(Range[uint32]{Low: 7, High: 7, Inclusive: true})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), d.Sample(rng))

	// a single sample is the same as the first sample of the distribution
	a := newTestRng()
	b := newTestRng()
	du, err := NewUniform(0.0, 10.0)
	require.NoError(t, err)
	s, err := SampleSingle(0.0, 10.0, b)
	require.NoError(t, err)
	assert.Equal(t, du.Sample(a), s)
}
