// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"

	"cogentcore.org/pcgrand/pcg"
)

const (
	// bernoulliAlwaysTrue marks p == 1, which cannot be expressed as
	// a threshold on a 64-bit draw.
	bernoulliAlwaysTrue = math.MaxUint64

	// bernoulliScale is 2^64.
	bernoulliScale = 2.0 * (1 << 63)
)

// Bernoulli is the distribution of a bool that is true with
// probability p. The probability is stored as a 64-bit threshold,
// so the precision of p is 2^-64.
type Bernoulli struct {
	pInt uint64
}

// NewBernoulli returns a Bernoulli distribution with probability p,
// which must be in [0, 1].
func NewBernoulli(p float64) (Bernoulli, error) {
	if !(p >= 0 && p < 1) {
		if p == 1 {
			return Bernoulli{pInt: bernoulliAlwaysTrue}, nil
		}
		return Bernoulli{}, ErrInvalidProbability
	}
	return Bernoulli{pInt: uint64(p * bernoulliScale)}, nil
}

// NewBernoulliRatio returns a Bernoulli distribution with probability
// numerator/denominator, which must not be more than 1.
func NewBernoulliRatio(numerator, denominator uint32) (Bernoulli, error) {
	if denominator == 0 || numerator > denominator {
		return Bernoulli{}, ErrInvalidProbability
	}
	if numerator == denominator {
		return Bernoulli{pInt: bernoulliAlwaysTrue}, nil
	}
	p := float64(numerator) / float64(denominator)
	return Bernoulli{pInt: uint64(p * bernoulliScale)}, nil
}

func (b Bernoulli) Sample(rng pcg.Rng) bool {
	if b.pInt == bernoulliAlwaysTrue {
		return true
	}
	return rng.Uint64() < b.pInt
}

// P returns the probability of true.
func (b Bernoulli) P() float64 {
	if b.pInt == bernoulliAlwaysTrue {
		return 1
	}
	return float64(b.pInt) / bernoulliScale
}
