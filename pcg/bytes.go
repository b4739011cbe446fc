// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"fmt"
)

// ReadU32Into decodes src into dst as little-endian 32-bit words.
// It panics if src is shorter than 4*len(dst) bytes; sizing the
// buffer is the caller's responsibility.
func ReadU32Into(src []byte, dst []uint32) {
	if len(src) < 4*len(dst) {
		panic(fmt.Sprintf("pcg.ReadU32Into: need %d bytes, have %d", 4*len(dst), len(src)))
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[4*i:])
	}
}

// ReadU64Into decodes src into dst as little-endian 64-bit words.
// It panics if src is shorter than 8*len(dst) bytes.
func ReadU64Into(src []byte, dst []uint64) {
	if len(src) < 8*len(dst) {
		panic(fmt.Sprintf("pcg.ReadU64Into: need %d bytes, have %d", 8*len(dst), len(src)))
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
}
