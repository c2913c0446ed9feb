// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides the styled text model for tappable text:
// a sequence of runes organized into spans, where each span carries
// a bag of attributes. Three attribute keys are recognized and drive
// interaction; all other keys are carried through opaquely.
package rich

import "image/color"

// Attribute keys recognized by the region index and gesture handling.
const (
	// TappableRegionKey marks a span as interactive. The value is a bool;
	// a non-bool value is treated as a presence marker.
	TappableRegionKey = "tappable-region"

	// HighlightedBackgroundKey is the background color to apply to a
	// tappable region while it is pressed. The value is a [color.Color];
	// anything else means no background override.
	HighlightedBackgroundKey = "highlighted-background-color"

	// HighlightedForegroundKey is the text color to apply to a tappable
	// region while it is pressed. The value is a [color.Color];
	// anything else means no foreground override.
	HighlightedForegroundKey = "highlighted-foreground-color"
)

// Render attribute keys, set on the derived render copy of the text
// while a tappable region is highlighted. They are not interpreted here.
const (
	BackgroundKey = "background-color"
	ForegroundKey = "foreground-color"
)

// Attributes is a bag of attribute key / value pairs captured at one
// character position. It is used to decide region membership and is
// handed to listeners verbatim, so unrecognized keys pass through.
type Attributes map[string]any

// Tappable returns whether the tappable region marker is set.
// A bool value reports its own truth; any other non-nil value counts
// as a presence marker.
func (a Attributes) Tappable() bool {
	switch v := a[TappableRegionKey].(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// HighlightedBackground returns the highlighted background color and
// whether a valid one is present. A value of the wrong type means
// no override.
func (a Attributes) HighlightedBackground() (color.Color, bool) {
	c, ok := a[HighlightedBackgroundKey].(color.Color)
	return c, ok
}

// HighlightedForeground returns the highlighted foreground color and
// whether a valid one is present. A value of the wrong type means
// no override.
func (a Attributes) HighlightedForeground() (color.Color, bool) {
	c, ok := a[HighlightedForegroundKey].(color.Color)
	return c, ok
}

// Clone returns a copy of the attribute bag.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// RecognizedEqual reports whether a and o agree on all recognized keys:
// the tappable marker and the two highlight colors. Unrecognized keys
// never affect the result.
func (a Attributes) RecognizedEqual(o Attributes) bool {
	if a.Tappable() != o.Tappable() {
		return false
	}
	ab, aok := a.HighlightedBackground()
	ob, ook := o.HighlightedBackground()
	if aok != ook || (aok && !colorsEqual(ab, ob)) {
		return false
	}
	af, aok := a.HighlightedForeground()
	of, ook := o.HighlightedForeground()
	if aok != ook || (aok && !colorsEqual(af, of)) {
		return false
	}
	return true
}

// colorsEqual compares colors by their premultiplied RGBA values.
func colorsEqual(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
