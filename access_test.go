// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/textmark/tappable"
	"github.com/textmark/tappable/rich"
	"github.com/textmark/tappable/textpos"
)

func TestAccessibilityElements(t *testing.T) {
	lb, lay, _, longs := pressLabel(t)

	els := lb.AccessibilityElements()
	assert.Equal(t, 2, len(els))

	assert.Equal(t, "aaaa", els[0].Label)
	assert.Equal(t, textpos.Range{Start: 0, End: 4}, els[0].Range)
	assert.Equal(t, lay.RuneRects(els[0].Range)[0], els[0].Frame)
	assert.Equal(t, "bbbb", els[1].Label)

	// the synthesized long-press action comes first and behaves like a
	// real long press at the region start
	assert.Equal(t, 1, len(els[1].Actions))
	assert.Equal(t, tappable.DefaultLongPressActionName, els[1].Actions[0].Name)
	els[1].Actions[0].Activate()
	d := expectOne(t, longs, "long press")
	assert.Equal(t, 5, d.index)
	assert.Equal(t, "b", d.attrs["href"])
}

func TestAccessibilityActionName(t *testing.T) {
	lb, _, _, _ := pressLabel(t)
	assert.Equal(t, tappable.DefaultLongPressActionName, lb.LongPressAccessibilityActionName())

	lb.SetLongPressAccessibilityActionName("Show Options")
	els := lb.AccessibilityElements()
	assert.Equal(t, "Show Options", els[0].Actions[0].Name)

	// empty resets to the default
	lb.SetLongPressAccessibilityActionName("")
	assert.Equal(t, tappable.DefaultLongPressActionName, lb.LongPressAccessibilityActionName())
}

func TestAccessibilityCustomActions(t *testing.T) {
	lb, _, _, _ := pressLabel(t)
	var got textpos.Range
	lb.SetAccessibilityListener(tappable.AccessibilityListenerFunc(func(r textpos.Range, attrs rich.Attributes) []tappable.CustomAction {
		got = r
		return []tappable.CustomAction{{Name: "Share"}, {Name: "Copy"}}
	}))
	els := lb.AccessibilityElements()
	assert.Equal(t, textpos.Range{Start: 5, End: 9}, got)
	// listener actions keep their order, after the long-press action
	names := make([]string, len(els[0].Actions))
	for i, a := range els[0].Actions {
		names[i] = a.Name
	}
	assert.Equal(t, []string{tappable.DefaultLongPressActionName, "Share", "Copy"}, names)
}

func TestAccessibilityNoLongPressListener(t *testing.T) {
	lb, _, _, _ := pressLabel(t)
	lb.SetLongPressListener(nil)
	els := lb.AccessibilityElements()
	assert.Equal(t, 2, len(els))
	assert.Empty(t, els[0].Actions)
}

func TestAccessibilityExcludesCollapsed(t *testing.T) {
	tx := rich.NewSpan("ab", tapAttrs())
	lb := tappable.NewLabel().SetText(tx) // no layout: no geometry
	assert.Empty(t, lb.AccessibilityElements())
}
