// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/textpos"
)

// Layout converts between rune ranges in the source text and geometry
// on the display surface. It is typically provided by a text layout
// engine such as [github.com/textmark/tappable/shaped.Lines]; tests can
// substitute a fixed-grid implementation. Both methods must be
// deterministic for a fixed text and bounds.
type Layout interface {

	// RuneRects returns the bounding rectangles covering the glyphs of
	// the given source rune range, in the surface's local coordinates,
	// ordered in visual reading order. A range wrapped across lines
	// yields one rectangle per line segment. The result may be empty,
	// e.g., for a range collapsed by truncation.
	RuneRects(r textpos.Range) []math32.Box2

	// RuneAtPoint returns the source rune index nearest to the given
	// point in the surface's local coordinates. It is total: points
	// outside the laid-out text resolve to the nearest index.
	RuneAtPoint(pt math32.Vector2) int
}
