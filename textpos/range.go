// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides positions and ranges within source text,
// in terms of rune indexes.
package textpos

import "fmt"

// Range defines a half-open range of rune indexes within source text:
// [Start, End), where Start is inclusive and End is exclusive.
type Range struct {
	Start, End int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Len returns the number of runes in the range. A negative length
// is reported as 0.
func (r Range) Len() int {
	return max(0, r.End-r.Start)
}

// IsNil returns whether the range is empty, having zero or negative length.
func (r Range) IsNil() bool {
	return r.End <= r.Start
}

// Contains returns whether the range contains the given rune index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Intersect returns the intersection of this range with the other range.
// The result is nil (per [Range.IsNil]) if they do not overlap.
func (r Range) Intersect(o Range) Range {
	return Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
}

// Canon returns the canonical version of the range, with Start and End
// swapped if necessary so that Start <= End.
func (r Range) Canon() Range {
	if r.End < r.Start {
		r.Start, r.End = r.End, r.Start
	}
	return r
}
