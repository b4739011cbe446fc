// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"

	"cogentcore.org/pcgrand/pcg"
)

// note: the Binomial, Poisson and Gamma samplers are from
// gonum.org/v1/gonum/stat/distuv, modified to draw from a pcg.Rng.

// Normal is the gaussian distribution with given mean and
// standard deviation Sigma.
type Normal struct {
	Mean  float64
	Sigma float64
}

// NewNormal returns a [Normal] distribution. Sigma must be finite
// and not negative.
func NewNormal(mean, sigma float64) (Normal, error) {
	if !finite(mean) || !finite(sigma) || sigma < 0 {
		return Normal{}, ErrInvalidParam
	}
	return Normal{Mean: mean, Sigma: sigma}, nil
}

func (d Normal) Sample(rng pcg.Rng) float64 {
	return d.Mean + d.Sigma*normFloat64(rng)
}

// Exponential is the exponential distribution with rate Lambda.
type Exponential struct {
	Lambda float64
}

// NewExponential returns an [Exponential] distribution. Lambda must be > 0.
func NewExponential(lambda float64) (Exponential, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return Exponential{}, ErrInvalidParam
	}
	return Exponential{Lambda: lambda}, nil
}

func (d Exponential) Sample(rng pcg.Rng) float64 {
	return expFloat64(rng) / d.Lambda
}

// Poisson is the distribution of the number of events in an interval,
// with event rate Lambda.
type Poisson struct {
	Lambda float64
}

// NewPoisson returns a [Poisson] distribution. Lambda must be > 0.
func NewPoisson(lambda float64) (Poisson, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return Poisson{}, ErrInvalidParam
	}
	return Poisson{Lambda: lambda}, nil
}

func (d Poisson) Sample(rng pcg.Rng) float64 {
	// NUMERICAL RECIPES IN C: THE ART OF SCIENTIFIC COMPUTING (ISBN 0-521-43108-5)
	// p. 294
	// <http://www.aip.de/groups/soe/local/numres/bookcpdf/c7-3.pdf>
	lambda := d.Lambda
	if lambda < 10.0 {
		// Use direct method.
		var em float64
		t := 0.0
		for {
			t += expFloat64(rng)
			if t >= lambda {
				break
			}
			em++
		}
		return em
	}
	// Generate using:
	//  W. Hörmann. "The transformed rejection method for generating Poisson
	//  random variables." Insurance: Mathematics and Economics
	//  12.1 (1993): 39-45.
	b := 0.931 + 2.53*math.Sqrt(lambda)
	a := -0.059 + 0.02483*b
	invalpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)
	for {
		U := rng.Float64() - 0.5
		V := rng.Float64()
		us := 0.5 - math.Abs(U)
		k := math.Floor((2*a/us+b)*U + lambda + 0.43)
		if us >= 0.07 && V <= vr {
			return k
		}
		if k <= 0 || (us < 0.013 && V > us) {
			continue
		}
		lg, _ := math.Lgamma(k + 1)
		if math.Log(V*invalpha/(a/(us*us)+b)) <= k*math.Log(lambda)-lambda-lg {
			return k
		}
	}
}

// Binomial is the distribution of the number of successes in
// N trials, each with probability P.
type Binomial struct {
	N float64
	P float64
}

// NewBinomial returns a [Binomial] distribution. N must be a whole
// number >= 0, and P in [0, 1].
func NewBinomial(n, p float64) (Binomial, error) {
	if !(n >= 0) || math.IsInf(n, 1) || n != math.Floor(n) || !(p >= 0 && p <= 1) {
		return Binomial{}, ErrInvalidParam
	}
	return Binomial{N: n, P: p}, nil
}

func (d Binomial) Sample(rng pcg.Rng) float64 {
	// NUMERICAL RECIPES IN C: THE ART OF SCIENTIFIC COMPUTING (ISBN 0-521-43108-5)
	// p. 295-6
	// http://www.aip.de/groups/soe/local/numres/bookcpdf/c7-3.pdf
	n, p := d.N, d.P
	porg := p
	if p > 0.5 {
		p = 1 - p
	}
	am := n * p

	flip := func(k float64) float64 {
		if p != porg {
			return n - k
		}
		return k
	}

	if n < 25 {
		// Use direct method.
		bnl := 0.0
		for i := 0; i < int(n); i++ {
			if rng.Float64() < p {
				bnl++
			}
		}
		return flip(bnl)
	}

	if am < 1 {
		// Use rejection method with Poisson proposal.
		const logM = 2.6e-2
		var bnl float64
		z := -p
		pclog := (1 + 0.5*z) * z / (1 + (1+1.0/6*z)*z) // Padé approximant of log(1 + x)
		for {
			bnl = 0.0
			t := 0.0
			for i := 0; i < int(n); i++ {
				t += expFloat64(rng)
				if t >= am {
					break
				}
				bnl++
			}
			bnlc := n - bnl
			z = -bnl / n
			log1p := (1 + 0.5*z) * z / (1 + (1+1.0/6*z)*z)
			t = (bnlc+0.5)*log1p + bnl - bnlc*pclog + 1/(12*bnlc) - am + logM // Stirling's expansion of log(n!)
			if expFloat64(rng) >= t {
				break
			}
		}
		return flip(bnl)
	}

	// Use rejection method with Cauchy proposal.
	g, _ := math.Lgamma(n + 1)
	plog := math.Log(p)
	pclog := math.Log1p(-p)
	sq := math.Sqrt(2 * am * (1 - p))
	for {
		var em, y float64
		for {
			y = math.Tan(math.Pi * rng.Float64())
			em = sq*y + am
			if em >= 0 && em < n+1 {
				break
			}
		}
		em = math.Floor(em)
		lg1, _ := math.Lgamma(em + 1)
		lg2, _ := math.Lgamma(n - em + 1)
		t := 1.2 * sq * (1 + y*y) * math.Exp(g-lg1-lg2+em*plog+(n-em)*pclog)
		if rng.Float64() <= t {
			return flip(em)
		}
	}
}

// Gamma is the maximum entropy distribution with shape Alpha
// and rate Beta.
type Gamma struct {
	Alpha float64
	Beta  float64
}

// NewGamma returns a [Gamma] distribution. Alpha and Beta must be > 0.
func NewGamma(alpha, beta float64) (Gamma, error) {
	if !(alpha > 0) || !(beta > 0) || math.IsInf(alpha, 1) || math.IsInf(beta, 1) {
		return Gamma{}, ErrInvalidParam
	}
	return Gamma{Alpha: alpha, Beta: beta}, nil
}

func (d Gamma) Sample(rng pcg.Rng) float64 {
	// The 0.2 threshold is from https://www4.stat.ncsu.edu/~rmartin/Codes/rgamss.R
	// described in detail in https://arxiv.org/abs/1302.1884.
	const smallAlphaThresh = 0.2

	a := d.Alpha
	b := d.Beta
	switch {
	case a == 1:
		return expFloat64(rng) / b
	case a < smallAlphaThresh:
		// Generate using
		//  Liu, Chuanhai, Martin, Ryan and Syring, Nick. "Simulating from a
		//  gamma distribution with small shape parameter"
		//  https://arxiv.org/abs/1302.1884

		// Algorithm adjusted to work in log space as much as possible.
		lambda := 1/a - 1
		lr := -math.Log1p(1 / lambda / math.E)
		for {
			e := expFloat64(rng)
			var z float64
			if e >= -lr {
				z = e + lr
			} else {
				z = -expFloat64(rng) / lambda
			}
			eza := math.Exp(-z / a)
			lh := -z - eza
			var lEta float64
			if z >= 0 {
				lEta = -z
			} else {
				lEta = -1 + lambda*z
			}
			if lh-lEta > -expFloat64(rng) {
				return eza / b
			}
		}
	default:
		// Generate using:
		//  Marsaglia, George, and Wai Wan Tsang. "A simple method for generating
		//  gamma variables." ACM Transactions on Mathematical Software (TOMS)
		//  26.3 (2000): 363-372.
		dd := a - 1.0/3
		m := 1.0
		if a < 1 {
			dd += 1.0
			m = math.Pow(rng.Float64(), 1/a)
		}
		c := 1 / (3 * math.Sqrt(dd))
		for {
			x := normFloat64(rng)
			v := 1 + x*c
			if v <= 0.0 {
				continue
			}
			v = v * v * v
			u := rng.Float64()
			if u < 1.0-0.0331*(x*x)*(x*x) {
				return m * dd * v / b
			}
			if math.Log(u) < 0.5*x*x+dd*(1-v+math.Log(v)) {
				return m * dd * v / b
			}
		}
	}
}

// Beta is the beta distribution on [0, 1] with shape parameters
// Alpha and Beta.
type Beta struct {
	Alpha float64
	Beta  float64
}

// NewBeta returns a [Beta] distribution. Alpha and Beta must be > 0.
func NewBeta(alpha, beta float64) (Beta, error) {
	if !(alpha > 0) || !(beta > 0) || math.IsInf(alpha, 1) || math.IsInf(beta, 1) {
		return Beta{}, ErrInvalidParam
	}
	return Beta{Alpha: alpha, Beta: beta}, nil
}

func (d Beta) Sample(rng pcg.Rng) float64 {
	ga := Gamma{Alpha: d.Alpha, Beta: 1}.Sample(rng)
	gb := Gamma{Alpha: d.Beta, Beta: 1}.Sample(rng)
	return ga / (ga + gb)
}

// normFloat64 returns a standard normal value, using the polar method
// of Marsaglia, which draws pairs of uniforms in the unit circle.
func normFloat64(rng pcg.Rng) float64 {
	for {
		u := 2*rng.Float64() - 1
		v := 2*rng.Float64() - 1
		s := u*u + v*v
		if s > 0 && s < 1 {
			return u * math.Sqrt(-2*math.Log(s)/s)
		}
	}
}

// expFloat64 returns a standard exponential value, with rate 1.
func expFloat64(rng pcg.Rng) float64 {
	return -math.Log1p(-rng.Float64())
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
