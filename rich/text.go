// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"
	"strings"

	"github.com/textmark/tappable/textpos"
)

// Text is the styled text representation: spans of runes that share
// one [Attributes] bag. Span boundaries are the attribute run
// boundaries; rune indexing is in terms of the joined source runes.
// Text is treated as immutable once handed to a consumer: highlight
// state is expressed as a derived copy via [Text.WithHighlight],
// never by mutating the canonical text.
type Text struct {
	spans []span
}

type span struct {
	runes []rune
	attrs Attributes
}

// Run is one attribute run: a contiguous rune range sharing one
// attribute bag.
type Run struct {
	Range      textpos.Range
	Attributes Attributes
}

// NewText returns a new empty [Text].
func NewText() *Text {
	return &Text{}
}

// NewSpan returns a new [Text] with one span of the given string
// and attributes.
func NewSpan(s string, attrs Attributes) *Text {
	return NewText().AddSpan(s, attrs)
}

// AddSpan appends a span with the given string and attributes,
// returning the text for chaining. Empty strings are dropped:
// zero-length runs never occur.
func (tx *Text) AddSpan(s string, attrs Attributes) *Text {
	if s == "" {
		return tx
	}
	tx.spans = append(tx.spans, span{runes: []rune(s), attrs: attrs})
	return tx
}

// Len returns the total number of runes in the text.
func (tx *Text) Len() int {
	n := 0
	for _, sp := range tx.spans {
		n += len(sp.runes)
	}
	return n
}

// Runes returns a single slice with the contents of all span runes.
func (tx *Text) Runes() []rune {
	rs := make([]rune, 0, tx.Len())
	for _, sp := range tx.spans {
		rs = append(rs, sp.runes...)
	}
	return rs
}

func (tx *Text) String() string {
	var sb strings.Builder
	for _, sp := range tx.spans {
		sb.WriteString(string(sp.runes))
	}
	return sb.String()
}

// Substring returns the string contents of the given rune range,
// clipped to the text bounds.
func (tx *Text) Substring(r textpos.Range) string {
	r = r.Canon().Intersect(textpos.Range{Start: 0, End: tx.Len()})
	if r.IsNil() {
		return ""
	}
	return string(tx.Runes()[r.Start:r.End])
}

// Runs returns the attribute runs of the text in character order.
// The returned attribute bags are the text's own, not copies.
func (tx *Text) Runs() []Run {
	runs := make([]Run, 0, len(tx.spans))
	off := 0
	for _, sp := range tx.spans {
		n := len(sp.runes)
		runs = append(runs, Run{
			Range:      textpos.Range{Start: off, End: off + n},
			Attributes: sp.attrs,
		})
		off += n
	}
	return runs
}

// AttributesAt returns the attribute bag in effect at the given rune
// index, or nil if the index is out of bounds.
func (tx *Text) AttributesAt(i int) Attributes {
	if i < 0 {
		return nil
	}
	off := 0
	for _, sp := range tx.spans {
		if i < off+len(sp.runes) {
			return sp.attrs
		}
		off += len(sp.runes)
	}
	return nil
}

// Clone returns a copy of the text. Span rune slices are shared;
// attribute bags are copied.
func (tx *Text) Clone() *Text {
	c := &Text{spans: make([]span, len(tx.spans))}
	for i, sp := range tx.spans {
		c.spans[i] = span{runes: sp.runes, attrs: sp.attrs.Clone()}
	}
	return c
}

// Highlight is a render-time override of background and/or foreground
// color over one rune range. A nil color means no override for that
// channel.
type Highlight struct {
	Range      textpos.Range
	Background color.Color
	Foreground color.Color
}

// WithHighlight returns a derived copy of the text with the given
// highlight applied as [BackgroundKey] / [ForegroundKey] render
// attributes over the highlight range. The receiver is not modified;
// discarding the returned copy restores the pre-highlight rendering
// exactly.
func (tx *Text) WithHighlight(h Highlight) *Text {
	hr := h.Range.Canon().Intersect(textpos.Range{Start: 0, End: tx.Len()})
	if hr.IsNil() || (h.Background == nil && h.Foreground == nil) {
		return tx
	}
	nt := &Text{}
	off := 0
	for _, sp := range tx.spans {
		sr := textpos.Range{Start: off, End: off + len(sp.runes)}
		ov := sr.Intersect(hr)
		if ov.IsNil() {
			nt.spans = append(nt.spans, sp)
		} else {
			if ov.Start > sr.Start {
				nt.spans = append(nt.spans, span{runes: sp.runes[:ov.Start-sr.Start], attrs: sp.attrs})
			}
			ha := sp.attrs.Clone()
			if ha == nil {
				ha = Attributes{}
			}
			if h.Background != nil {
				ha[BackgroundKey] = h.Background
			}
			if h.Foreground != nil {
				ha[ForegroundKey] = h.Foreground
			}
			nt.spans = append(nt.spans, span{runes: sp.runes[ov.Start-sr.Start : ov.End-sr.Start], attrs: ha})
			if ov.End < sr.End {
				nt.spans = append(nt.spans, span{runes: sp.runes[ov.End-sr.Start:], attrs: sp.attrs})
			}
		}
		off = sr.End
	}
	return nt
}
