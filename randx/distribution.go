// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides random distributions that sample from
// any [pcg.Rng]: uniform ranges over every numeric type, Bernoulli,
// a dynamically updatable weighted index, and a set of
// continuous distributions.
//
// Distributions are plain values, which are constructed once with
// validated parameters and then sampled any number of times:
//
//	rng := pcg.NewRand32(seed)
//	d, err := randx.NewUniform(1, 7)
//	roll := d.Sample(rng)
package randx

import (
	"iter"

	"cogentcore.org/pcgrand/pcg"
)

// Distribution is a source of random values of type T.
type Distribution[T any] interface {

	// Sample returns a random value, using rng as the source of
	// randomness. It depends only on the parameters of the
	// distribution and the state of rng.
	Sample(rng pcg.Rng) T
}

// DistFunc is a function that implements [Distribution].
type DistFunc[T any] func(rng pcg.Rng) T

func (f DistFunc[T]) Sample(rng pcg.Rng) T {
	return f(rng)
}

// DistIter is an infinite stream of samples from a distribution,
// created by [SampleIter]. Values are only drawn when requested.
type DistIter[T any] struct {
	dist Distribution[T]
	rng  pcg.Rng
}

// SampleIter returns an iterator over samples of d, drawn from rng.
// The iterator keeps using rng, so it continues the sequence of rng
// rather than restarting it.
func SampleIter[T any](d Distribution[T], rng pcg.Rng) *DistIter[T] {
	return &DistIter[T]{dist: d, rng: rng}
}

// Next returns the next sample.
func (it *DistIter[T]) Next() T {
	return it.dist.Sample(it.rng)
}

// Take returns the next n samples.
func (it *DistIter[T]) Take(n int) []T {
	res := make([]T, n)
	for i := range res {
		res[i] = it.Next()
	}
	return res
}

// All returns the samples as an [iter.Seq], for use in a range loop,
// which must break out of the loop at some point.
func (it *DistIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// DistMap is a distribution that transforms the samples of another
// distribution, created by [Map].
type DistMap[T, S any] struct {
	dist Distribution[T]
	fun  func(T) S
}

// Map returns a distribution that samples d and then applies fun to
// the result. Mapping a mapped distribution composes the functions in
// order, so Map(Map(d, f), g) samples g(f(x)).
func Map[T, S any](d Distribution[T], fun func(T) S) *DistMap[T, S] {
	return &DistMap[T, S]{dist: d, fun: fun}
}

func (m *DistMap[T, S]) Sample(rng pcg.Rng) S {
	return m.fun(m.dist.Sample(rng))
}

// StandardType are the types that [Standard] can produce.
type StandardType interface {
	bool | struct{} | uint32 | int32 | uint64 | int64 | float32 | float64
}

// Standard is the default distribution of a primitive type: the full
// range of an integer type, [0,1) for a float type, and a fair coin
// for bool.
//
// A bool is true when the sign bit of a drawn int32 is set. Exactly
// half of the 2^32 possible draws are negative, so the coin is fair.
type Standard[T StandardType] struct{}

func (Standard[T]) Sample(rng pcg.Rng) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = rng.Int32() < 0
	case *struct{}:
	case *uint32:
		*p = rng.Uint32()
	case *int32:
		*p = rng.Int32()
	case *uint64:
		*p = rng.Uint64()
	case *int64:
		*p = rng.Int64()
	case *float32:
		*p = rng.Float32()
	case *float64:
		*p = rng.Float64()
	default:
		panic("unreachable")
	}
	return v
}
