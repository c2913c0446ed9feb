// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"testing"

	"github.com/go-text/typesetting/shaping"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"

	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/rich"
	"github.com/textmark/tappable/textpos"
)

// monoRun builds a synthetic shaped run with one glyph per rune, each
// advancing adv dots, with a 12 dot ascent and 4 dot descent.
func monoRun(start, n int, adv float32) Run {
	out := shaping.Output{}
	out.Runes = shaping.Range{Offset: start, Count: n}
	fa := math32.ToFixed(adv)
	for i := 0; i < n; i++ {
		out.Glyphs = append(out.Glyphs, shaping.Glyph{ClusterIndex: start + i, XAdvance: fa})
	}
	out.Advance = fa * fixed.Int26_6(n)
	out.LineBounds = shaping.Bounds{Ascent: math32.ToFixed(12), Descent: math32.ToFixed(-4)}
	return Run{Output: out}
}

// monoLines builds two stacked lines of 5 runes each, 10 dots per
// rune: line 0 covers runes [0, 5) at y [0, 16), line 1 covers
// [5, 10) at y [16, 32).
func monoLines() *Lines {
	ls := &Lines{Source: []rune("aaaaabbbbb"), LineHeight: 16}
	ls.Bounds.SetEmpty()
	for li := 0; li < 2; li++ {
		rn := monoRun(li*5, 5, 10)
		ln := Line{
			Range:  textpos.Range{Start: li * 5, End: li*5 + 5},
			Runs:   []Run{rn},
			Offset: math32.Vec2(0, 12+float32(li)*16),
			Bounds: math32.B2(0, -12, 50, 4),
		}
		ls.Bounds.ExpandByBox(ln.Bounds.Translate(ln.Offset))
		ls.Lines = append(ls.Lines, ln)
	}
	return ls
}

func TestRuneRectsSingleLine(t *testing.T) {
	ls := monoLines()
	rects := ls.RuneRects(textpos.Range{Start: 1, End: 3})
	assert.Equal(t, 1, len(rects))
	assert.Equal(t, math32.B2(10, 0, 30, 16), rects[0])
}

func TestRuneRectsAcrossLines(t *testing.T) {
	ls := monoLines()
	rects := ls.RuneRects(textpos.Range{Start: 3, End: 8})
	assert.Equal(t, 2, len(rects))
	assert.Equal(t, math32.B2(30, 0, 50, 16), rects[0])
	assert.Equal(t, math32.B2(0, 16, 30, 32), rects[1])
}

func TestRuneRectsClipped(t *testing.T) {
	ls := monoLines()
	assert.Nil(t, ls.RuneRects(textpos.Range{Start: 20, End: 30}))
	assert.Nil(t, ls.RuneRects(textpos.Range{Start: 3, End: 3}))
	rects := ls.RuneRects(textpos.Range{Start: -5, End: 50})
	assert.Equal(t, 2, len(rects))
}

func TestRuneAtPoint(t *testing.T) {
	ls := monoLines()
	assert.Equal(t, 0, ls.RuneAtPoint(math32.Vec2(5, 8)))
	assert.Equal(t, 2, ls.RuneAtPoint(math32.Vec2(25, 8)))
	assert.Equal(t, 7, ls.RuneAtPoint(math32.Vec2(25, 24)))

	// out of bounds resolves to the nearest rune
	assert.Equal(t, 0, ls.RuneAtPoint(math32.Vec2(-10, -10)))
	assert.Equal(t, 4, ls.RuneAtPoint(math32.Vec2(100, 8)))
	assert.Equal(t, 9, ls.RuneAtPoint(math32.Vec2(100, 100)))
}

func TestRuneXClusterSplit(t *testing.T) {
	// one glyph covering two runes (a ligature): the caret between the
	// two runes lands halfway through the cluster advance
	out := shaping.Output{}
	out.Runes = shaping.Range{Offset: 0, Count: 2}
	out.Glyphs = []shaping.Glyph{{ClusterIndex: 0, XAdvance: math32.ToFixed(20)}}
	out.Advance = math32.ToFixed(20)
	ln := Line{
		Range: textpos.Range{Start: 0, End: 2},
		Runs:  []Run{{Output: out}},
	}
	assert.Equal(t, float32(0), ln.runeX(0))
	assert.Equal(t, float32(10), ln.runeX(1))
	assert.Equal(t, float32(20), ln.runeX(2))
}

func TestWrapLinesSystemFonts(t *testing.T) {
	sh := NewShaper()
	src := "The quick brown fox jumps over the lazy dog"
	lns := sh.WrapLines(rich.NewSpan(src, nil), NewFont(), math32.Vec2(120, 0))
	if len(lns.Lines) == 0 {
		t.Skip("no system fonts available")
	}
	assert.Greater(t, len(lns.Lines), 1)
	assert.Equal(t, 0, lns.Lines[0].Range.Start)
	prev := 0
	for _, ln := range lns.Lines {
		assert.GreaterOrEqual(t, ln.Range.Start, prev)
		assert.Greater(t, ln.Range.End, ln.Range.Start)
		prev = ln.Range.End
	}

	// each rune's rect resolves back to itself or its cluster
	rects := lns.RuneRects(textpos.Range{Start: 4, End: 9}) // "quick"
	assert.NotEmpty(t, rects)
	for _, bb := range rects {
		i := lns.RuneAtPoint(bb.Center())
		assert.True(t, i >= 4 && i < 9, "rune %d not in [4, 9)", i)
	}
}
