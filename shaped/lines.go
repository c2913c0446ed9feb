// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/textpos"
)

// Lines is a list of shaped lines with an overall bounding box, in the
// surface's local coordinates with the origin at the top left of the
// first line. It implements the root package's Layout interface.
type Lines struct {

	// Source is the rune source that generated this set of lines.
	Source []rune

	// Lines are the shaped lines.
	Lines []Line

	// Bounds is the bounding box for the entire set of lines.
	Bounds math32.Box2

	// LineHeight is the nominal line height used when stacking lines.
	LineHeight float32

	// Truncated indicates whether any lines were truncated.
	Truncated bool
}

// Line is one wrapped line of shaped text, containing multiple runs.
type Line struct {

	// Range is the range of source runes represented in this line.
	Range textpos.Range

	// Runs are the shaped runs, in visual order.
	Runs []Run

	// Offset is the position of the line's baseline start, relative to
	// the Lines origin.
	Offset math32.Vector2

	// Bounds is the bounding box of the line, relative to the baseline
	// position; the upper left typically has a negative Y.
	Bounds math32.Box2
}

// Run is one face-consistent span of shaped glyphs within a line.
type Run struct {

	// Output is the go-text shaping output for this run.
	Output shaping.Output

	// Offset is the baseline-relative offset of the run start within
	// its line.
	Offset math32.Vector2
}

// Runes returns the run's source rune range.
func (rn *Run) Runes() textpos.Range {
	return textpos.Range{Start: rn.Output.Runes.Offset, End: rn.Output.Runes.Offset + rn.Output.Runes.Count}
}

func (ln *Line) String() string {
	return fmt.Sprintf("%v runs: %d", ln.Range, len(ln.Runs))
}

func (ls *Lines) String() string {
	str := ""
	for li := range ls.Lines {
		str += fmt.Sprintf("#### Line: %d %v\n", li, ls.Lines[li].String())
	}
	return str
}

// Size returns the total size of the shaped lines.
func (ls *Lines) Size() math32.Vector2 {
	return ls.Bounds.Size()
}

// RuneRects returns one rectangle per line segment covered by the
// given source rune range, in the Lines coordinates. Ranges outside
// the source, and segments that shaping collapsed to zero width,
// produce no rectangles.
func (ls *Lines) RuneRects(r textpos.Range) []math32.Box2 {
	r = clipRange(r, len(ls.Source))
	if r.Len() == 0 {
		return nil
	}
	var rects []math32.Box2
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		lr := r.Intersect(ln.Range)
		if lr.Len() == 0 {
			continue
		}
		x0 := ln.runeX(lr.Start)
		x1 := ln.runeX(lr.End)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if x1 == x0 {
			continue
		}
		bb := math32.B2(x0, ln.Bounds.Min.Y, x1, ln.Bounds.Max.Y)
		rects = append(rects, bb.Translate(ln.Offset))
	}
	return rects
}

// RuneAtPoint returns the index of the source rune whose glyph is
// nearest the given point: first the nearest line by Y distance, then
// the nearest rune by X within that line. It never fails; for empty
// lines it returns the line's start index.
func (ls *Lines) RuneAtPoint(pt math32.Vector2) int {
	if len(ls.Lines) == 0 {
		return 0
	}
	li := 0
	best := math32.Infinity
	for i := range ls.Lines {
		bb := ls.Lines[i].Bounds.Translate(ls.Lines[i].Offset)
		var d float32
		switch {
		case pt.Y < bb.Min.Y:
			d = bb.Min.Y - pt.Y
		case pt.Y > bb.Max.Y:
			d = pt.Y - bb.Max.Y
		}
		if d < best {
			best = d
			li = i
		}
		if d == 0 {
			break
		}
	}
	ln := &ls.Lines[li]
	if ln.Range.Len() == 0 {
		return ln.Range.Start
	}
	lx := pt.X - ln.Offset.X
	bi := ln.Range.Start
	bd := math32.Infinity
	x0 := ln.runeX(ln.Range.Start)
	for i := ln.Range.Start; i < ln.Range.End; i++ {
		x1 := ln.runeX(i + 1)
		if lx >= x0 && lx < x1 {
			return i
		}
		d := math32.Abs((x0+x1)/2 - lx)
		if d < bd {
			bd = d
			bi = i
		}
		x0 = x1
	}
	return bi
}

// runeX returns the x position of the caret boundary before source
// rune i, relative to the line's baseline start. Indexes past the
// line's runes yield the right edge.
func (ln *Line) runeX(i int) float32 {
	for ri := range ln.Runs {
		rn := &ln.Runs[ri]
		rr := rn.Runes()
		if i >= rr.End {
			continue
		}
		if i < rr.Start {
			return rn.Offset.X
		}
		return rn.Offset.X + math32.FromFixed(rn.runeAdvance(i))
	}
	if n := len(ln.Runs); n > 0 {
		rn := &ln.Runs[n-1]
		return rn.Offset.X + math32.FromFixed(rn.Output.Advance)
	}
	return 0
}

// runeAdvance returns the advance within the run up to source rune i,
// splitting multi-rune glyph clusters proportionally. Left-to-right
// glyph order is assumed.
func (rn *Run) runeAdvance(i int) fixed.Int26_6 {
	gs := rn.Output.Glyphs
	end := rn.Output.Runes.Offset + rn.Output.Runes.Count
	var x fixed.Int26_6
	for gi := 0; gi < len(gs); {
		ci := gs[gi].ClusterIndex
		var cadv fixed.Int26_6
		ge := gi
		for ; ge < len(gs) && gs[ge].ClusterIndex == ci; ge++ {
			cadv += gs[ge].XAdvance
		}
		cend := end
		if ge < len(gs) {
			cend = gs[ge].ClusterIndex
		}
		if i >= cend {
			x += cadv
			gi = ge
			continue
		}
		if i <= ci {
			return x
		}
		per := cadv / fixed.Int26_6(cend-ci)
		return x + per*fixed.Int26_6(i-ci)
	}
	return x
}
