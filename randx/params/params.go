// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides serializable parameters for random engines
// and distributions, which can be saved to and loaded from TOML, YAML
// and JSON files, and then built into live values.
package params

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/pcgrand/pcg"
	"cogentcore.org/pcgrand/randx"
)

// Engine are the parameters of a pcg engine.
type Engine struct {

	// Seed is the seed of the engine.
	Seed uint64 `toml:"seed" yaml:"seed" json:"seed"`

	// Stream is the increment that selects the stream of the engine.
	// The default stream is used if it is nil.
	Stream *uint64 `toml:"stream,omitempty" yaml:"stream,omitempty" json:"stream,omitempty"`
}

// Rand32 returns a new [pcg.Rand32] with these parameters.
func (e *Engine) Rand32() *pcg.Rand32 {
	if e.Stream != nil {
		return pcg.NewRand32Inc(e.Seed, *e.Stream)
	}
	return pcg.NewRand32(e.Seed)
}

// Rand64 returns a new [pcg.Rand64] with these parameters.
func (e *Engine) Rand64() *pcg.Rand64 {
	if e.Stream != nil {
		return pcg.NewRand64Inc(pcg.U128(e.Seed), pcg.U128(*e.Stream))
	}
	return pcg.NewRand64(pcg.U128(e.Seed))
}

// Uniform are the parameters of a uniform float distribution.
type Uniform struct {
	Low  float64 `toml:"low" yaml:"low" json:"low"`
	High float64 `toml:"high" yaml:"high" json:"high"`

	// Inclusive is whether High is a possible value.
	Inclusive bool `toml:"inclusive" yaml:"inclusive" json:"inclusive"`
}

// Build returns the distribution.
func (u *Uniform) Build() (randx.Uniform[float64], error) {
	return randx.NewUniformRange(randx.Range[float64]{Low: u.Low, High: u.High, Inclusive: u.Inclusive})
}

// Bernoulli are the parameters of a [randx.Bernoulli] distribution,
// given either as a probability P, or as a ratio when Denominator
// is not zero.
type Bernoulli struct {
	P float64 `toml:"p" yaml:"p" json:"p"`

	Numerator   uint32 `toml:"numerator,omitempty" yaml:"numerator,omitempty" json:"numerator,omitempty"`
	Denominator uint32 `toml:"denominator,omitempty" yaml:"denominator,omitempty" json:"denominator,omitempty"`
}

// Build returns the distribution.
func (b *Bernoulli) Build() (randx.Bernoulli, error) {
	if b.Denominator != 0 {
		return randx.NewBernoulliRatio(b.Numerator, b.Denominator)
	}
	return randx.NewBernoulli(b.P)
}

// Weighted are the weights of a [randx.WeightIndex].
type Weighted struct {
	Weights []float64 `toml:"weights" yaml:"weights" json:"weights"`
}

// Build returns the distribution.
func (w *Weighted) Build() (*randx.WeightIndex[float64], error) {
	return randx.NewWeightIndex(w.Weights)
}

// Set is a set of named distribution parameters,
// along with the engine to sample them from.
type Set struct {
	Engine Engine `toml:"engine" yaml:"engine" json:"engine"`

	Uniform   map[string]Uniform   `toml:"uniform,omitempty" yaml:"uniform,omitempty" json:"uniform,omitempty"`
	Bernoulli map[string]Bernoulli `toml:"bernoulli,omitempty" yaml:"bernoulli,omitempty" json:"bernoulli,omitempty"`
	Weighted  map[string]Weighted  `toml:"weighted,omitempty" yaml:"weighted,omitempty" json:"weighted,omitempty"`
}

// Validate returns the errors of all the entries that do not build,
// in order of kind and then name, joined with [errors.Join].
func (s *Set) Validate() error {
	var errs []error
	for _, nm := range slices.Sorted(maps.Keys(s.Uniform)) {
		u := s.Uniform[nm]
		if _, err := u.Build(); err != nil {
			errs = append(errs, fmt.Errorf("uniform %q: %w", nm, err))
		}
	}
	for _, nm := range slices.Sorted(maps.Keys(s.Bernoulli)) {
		b := s.Bernoulli[nm]
		if _, err := b.Build(); err != nil {
			errs = append(errs, fmt.Errorf("bernoulli %q: %w", nm, err))
		}
	}
	for _, nm := range slices.Sorted(maps.Keys(s.Weighted)) {
		w := s.Weighted[nm]
		if _, err := w.Build(); err != nil {
			errs = append(errs, fmt.Errorf("weighted %q: %w", nm, err))
		}
	}
	return errors.Join(errs...)
}

// UniformDist returns the built uniform distribution of the given name.
func (s *Set) UniformDist(name string) (randx.Uniform[float64], error) {
	u, ok := s.Uniform[name]
	if !ok {
		return randx.Uniform[float64]{}, fmt.Errorf("params: uniform %q not found", name)
	}
	return u.Build()
}

// BernoulliDist returns the built Bernoulli distribution of the given name.
func (s *Set) BernoulliDist(name string) (randx.Bernoulli, error) {
	b, ok := s.Bernoulli[name]
	if !ok {
		return randx.Bernoulli{}, fmt.Errorf("params: bernoulli %q not found", name)
	}
	return b.Build()
}

// WeightedDist returns the built weighted index of the given name.
func (s *Set) WeightedDist(name string) (*randx.WeightIndex[float64], error) {
	w, ok := s.Weighted[name]
	if !ok {
		return nil, fmt.Errorf("params: weighted %q not found", name)
	}
	return w.Build()
}
