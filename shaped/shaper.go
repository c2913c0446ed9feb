// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped provides a concrete [tappable.Layout] implementation
// backed by HarfBuzz shaping and line wrapping from
// github.com/go-text/typesetting. The [Shaper] turns styled text into
// [Lines] of shaped runs with per-rune geometry, which the root
// package uses for region rectangles and point-to-rune hit-testing.
package shaped

import (
	"os"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/textmark/tappable/base/errors"
	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/rich"
	"github.com/textmark/tappable/textpos"
)

// Font specifies the font parameters used for shaping. The label's
// attribute model carries no font styling, so one Font applies to the
// whole text.
type Font struct {

	// Family is the font family query, resolved through system font
	// scanning with standard fallbacks (e.g. "sans-serif", "serif",
	// "monospace", or a concrete family name).
	Family string

	// Size is the font size in dots.
	Size float32
}

// NewFont returns a Font with default values.
func NewFont() *Font {
	return &Font{Family: "sans-serif", Size: 16}
}

// Shaper is the text shaper and wrapper, from go-text/shaping.
// It is not safe for concurrent use.
type Shaper struct {
	shaper   shaping.HarfbuzzShaper
	wrapper  shaping.LineWrapper
	fontMap  *fontscan.FontMap
	splitter shaping.Segmenter

	// outBuff is the output buffer to avoid excessive memory consumption.
	outBuff []shaping.Output
}

// NewShaper returns a new Shaper using the system fonts, with the
// fontscan index cached in the user cache directory.
func NewShaper() *Shaper {
	sh := &Shaper{}
	sh.fontMap = fontscan.NewFontMap(nil)
	dir, err := os.UserCacheDir()
	errors.Log(err)
	errors.Log(sh.fontMap.UseSystemFonts(dir))
	sh.shaper.SetFontCacheSize(32)
	return sh
}

// WrapLines shapes the given source text with the given font and wraps
// it into lines fitting the given size. A zero size.X means no
// wrapping, and a zero size.Y means no truncation. The returned Lines
// implements the layout interface expected by the root package.
func (sh *Shaper) WrapLines(tx *rich.Text, fnt *Font, size math32.Vector2) *Lines {
	txt := tx.Runes()
	lns := &Lines{Source: txt}
	outs := sh.shapeText(txt, fnt)
	if len(outs) == 0 {
		return lns
	}
	lns.LineHeight = lineHeight(&outs[0])

	maxWidth := int(size.X)
	if maxWidth <= 0 {
		maxWidth = 1 << 20
	}
	nlines := 0
	if size.Y > 0 {
		nlines = max(1, int(math32.Floor(size.Y/lns.LineHeight)))
	}
	cfg := shaping.WrapConfig{
		Direction:          di.DirectionLTR,
		TruncateAfterLines: nlines,
		BreakPolicy:        shaping.WhenNecessary,
	}
	// TODO: split paragraphs at newlines and wrap each separately.
	wls, truncate := sh.wrapper.WrapParagraph(cfg, maxWidth, txt, shaping.NewSliceIterator(outs))
	lns.Truncated = truncate > 0

	lns.Bounds.SetEmpty()
	var off math32.Vector2
	for li, wl := range wls {
		ln := Line{}
		ln.Bounds.SetEmpty()
		var maxAsc fixed.Int26_6
		setFirst := false
		var pos float32
		for oi := range wl {
			out := wl[oi]
			maxAsc = max(maxAsc, out.LineBounds.Ascent)
			run := Run{Output: out}
			rr := run.Runes()
			if !setFirst {
				ln.Range.Start = rr.Start
				setFirst = true
			}
			ln.Range.End = rr.End
			run.Offset = math32.Vec2(pos, 0)
			ln.Bounds.ExpandByBox(runBounds(&out).Translate(run.Offset))
			pos += math32.FromFixed(out.Advance)
			ln.Runs = append(ln.Runs, run)
		}
		if ln.Bounds.IsEmpty() {
			ln.Bounds = math32.B2(0, -math32.FromFixed(maxAsc), 0, 0)
		}
		if li == 0 {
			off.Y = math32.FromFixed(maxAsc)
		}
		ln.Offset = off
		lns.Bounds.ExpandByBox(ln.Bounds.Translate(ln.Offset))
		off.Y += lns.LineHeight
		lns.Lines = append(lns.Lines, ln)
	}
	return lns
}

// shapeText shapes the source runes as one left-to-right input, split
// into face-consistent runs by the segmenter.
func (sh *Shaper) shapeText(txt []rune, fnt *Font) []shaping.Output {
	if len(txt) == 0 {
		return nil
	}
	sh.fontMap.SetQuery(fontscan.Query{Families: []string{fnt.Family}})
	in := shaping.Input{
		Text:      txt,
		RunStart:  0,
		RunEnd:    len(txt),
		Direction: di.DirectionLTR,
		Size:      math32.ToFixed(fnt.Size),
		Script:    detectScript(txt),
		Language:  language.NewLanguage("en"),
	}
	sh.outBuff = sh.outBuff[:0]
	ins := sh.splitter.Split(in, sh.fontMap)
	for _, in := range ins {
		if in.Face == nil {
			continue
		}
		sh.outBuff = append(sh.outBuff, sh.shaper.Shape(in))
	}
	return sh.outBuff
}

// detectScript returns the script of the first non-space rune. For
// mixed-script text the segmenter still resolves faces per run.
func detectScript(txt []rune) language.Script {
	for _, r := range txt {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// lineHeight is the nominal height of a line shaped with the given
// output's face and size.
func lineHeight(out *shaping.Output) float32 {
	lb := out.LineBounds
	return math32.FromFixed(lb.Ascent - lb.Descent + lb.Gap)
}

// runBounds is the line-level bounding box of a run, relative to its
// baseline start position.
func runBounds(out *shaping.Output) math32.Box2 {
	lb := out.LineBounds
	return math32.Box2{
		Min: math32.Vec2(0, -math32.FromFixed(lb.Ascent)),
		Max: math32.Vec2(math32.FromFixed(out.Advance), -math32.FromFixed(lb.Descent)),
	}
}

// clipRange clips a query range to the source length.
func clipRange(r textpos.Range, n int) textpos.Range {
	return r.Canon().Intersect(textpos.Range{Start: 0, End: n})
}
