// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "cogentcore.org/pcgrand/pcg"

// Slice samples an element of a slice uniformly. The slice is not
// copied, so later changes to its elements are seen by the samples.
type Slice[T any] struct {
	slice []T
	index Uniform[int]
}

// NewSlice returns a distribution over the elements of s, which must
// not be empty.
func NewSlice[T any](s []T) (*Slice[T], error) {
	if len(s) == 0 {
		return nil, ErrEmptySlice
	}
	index, err := NewUniform(0, len(s))
	if err != nil {
		return nil, err
	}
	return &Slice[T]{slice: s, index: index}, nil
}

func (s *Slice[T]) Sample(rng pcg.Rng) T {
	return s.slice[s.index.Sample(rng)]
}
