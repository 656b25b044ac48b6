// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytes holds small helpers for byte ranges and buffers shared by
// the registry and the command-line tools.
package bytes

import (
	"fmt"
	"sort"
)

// Range is a half-open byte range [Offset, Offset+Length) within an image.
type Range struct {
	Offset uint64
	Length uint64
}

func (r Range) String() string {
	return fmt.Sprintf("[0x%x, 0x%x)", r.Offset, r.Offset+r.Length)
}

// End returns the exclusive end offset of the range.
func (r Range) End() uint64 {
	return r.Offset + r.Length
}

// Intersect returns true if ranges "r" and "cmp" have at least one byte
// with the same offset.
func (r Range) Intersect(cmp Range) bool {
	if r.Length == 0 || cmp.Length == 0 {
		return false
	}
	if r.End() <= cmp.Offset {
		return false
	}
	if r.Offset >= cmp.End() {
		return false
	}
	return true
}

// Ranges is a helper to manipulate multiple `Range`-s at once.
type Ranges []Range

// Sort sorts the slice by field Offset.
func (s Ranges) Sort() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Offset < s[j].Offset
	})
}

// FirstOverlap returns the indices of the first pair of intersecting
// ranges, or (-1, -1) if all ranges are disjoint. The receiver is not
// required to be sorted.
func (s Ranges) FirstOverlap() (int, int) {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i].Intersect(s[j]) {
				return i, j
			}
		}
	}
	return -1, -1
}
