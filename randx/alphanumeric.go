// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"strings"

	"cogentcore.org/pcgrand/pcg"
)

const alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Alphanumeric samples an ASCII letter or digit uniformly.
type Alphanumeric struct{}

func (Alphanumeric) Sample(rng pcg.Rng) byte {
	for {
		v := rng.Uint32() >> (32 - 6)
		if v < uint32(len(alphanumericChars)) {
			return alphanumericChars[v]
		}
	}
}

// AlphanumericString returns a random string of n letters and digits.
func AlphanumericString(rng pcg.Rng, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	var a Alphanumeric
	for range n {
		sb.WriteByte(a.Sample(rng))
	}
	return sb.String()
}
