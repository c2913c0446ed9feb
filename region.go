// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/rich"
	"github.com/textmark/tappable/textpos"
)

// Region is one contiguous tappable range of the source text, with its
// resolved on-surface geometry and the attribute snapshot taken at the
// start of the range. Regions never overlap: a rune belongs to at most
// one Region.
type Region struct {

	// Range is the half-open source rune range of the region.
	Range textpos.Range

	// Rects are the bounding rectangles of the region's glyphs in the
	// surface's local coordinates, one per wrapped line segment, in
	// visual reading order. Empty if the layout collapsed the range
	// (e.g., truncation); such a region is never hit-testable.
	Rects []math32.Box2

	// Attributes is the attribute bag at Range.Start, including any
	// unrecognized keys, handed to listeners verbatim.
	Attributes rich.Attributes
}

// Frame returns the bounding box of all of the region's rectangles.
// It returns an empty box (per [math32.Box2.IsEmpty]) if the region
// has no rectangles.
func (rg *Region) Frame() math32.Box2 {
	fr := math32.B2Empty()
	for _, r := range rg.Rects {
		fr.ExpandByBox(r)
	}
	return fr
}

// HitTestable returns whether the region has on-surface geometry and
// can therefore be the result of a point lookup.
func (rg *Region) HitTestable() bool {
	return len(rg.Rects) > 0
}

// BuildRegions scans the attribute runs of the given text in character
// order and coalesces adjacent tappable runs whose recognized
// attributes (tappable marker and the two highlight colors) are equal
// into single regions. Runs that differ in any recognized key never
// merge, even when adjacent. Each region's rectangles are then resolved
// with one RuneRects call per region. The scan is O(n) in the number of
// attribute runs.
func BuildRegions(tx *rich.Text, lay Layout) []Region {
	if tx == nil {
		return nil
	}
	var regs []Region
	open := -1
	for _, run := range tx.Runs() {
		if !run.Attributes.Tappable() {
			open = -1
			continue
		}
		if open >= 0 && regs[open].Range.End == run.Range.Start &&
			regs[open].Attributes.RecognizedEqual(run.Attributes) {
			regs[open].Range.End = run.Range.End
			continue
		}
		regs = append(regs, Region{Range: run.Range, Attributes: run.Attributes})
		open = len(regs) - 1
	}
	if lay != nil {
		for i := range regs {
			regs[i].Rects = lay.RuneRects(regs[i].Range)
		}
	}
	return regs
}

// regionContaining returns the hit-testable region containing the given
// rune index, or nil.
func regionContaining(regs []Region, i int) *Region {
	for ri := range regs {
		rg := &regs[ri]
		if rg.HitTestable() && rg.Range.Contains(i) {
			return rg
		}
	}
	return nil
}
