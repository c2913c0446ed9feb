// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"github.com/textmark/tappable/rich"
	"github.com/textmark/tappable/textpos"
)

// TapListener is notified when a tap gesture completes within a
// tappable region. The index is the source rune index nearest the
// press, and attrs is the region's attribute snapshot captured at
// press time. The label holds the listener without implying ownership;
// an unset listener simply disables tap dispatch.
type TapListener interface {
	Tapped(runeIndex int, attrs rich.Attributes)
}

// TapListenerFunc adapts a function to the [TapListener] interface.
type TapListenerFunc func(runeIndex int, attrs rich.Attributes)

func (f TapListenerFunc) Tapped(runeIndex int, attrs rich.Attributes) {
	f(runeIndex, attrs)
}

// LongPressListener is notified when the pointer stays pressed within
// one region for at least the configured long-press duration. If no
// LongPressListener is set, no long-press timer is armed and no
// accessibility long-press action is synthesized.
type LongPressListener interface {
	LongPressed(runeIndex int, attrs rich.Attributes)
}

// LongPressListenerFunc adapts a function to the [LongPressListener]
// interface.
type LongPressListenerFunc func(runeIndex int, attrs rich.Attributes)

func (f LongPressListenerFunc) LongPressed(runeIndex int, attrs rich.Attributes) {
	f(runeIndex, attrs)
}

// AccessibilityListener supplies additional custom actions for the
// accessibility element of a region, given the region's rune range and
// the attribute snapshot at its start. The returned actions keep their
// order, after any synthesized long-press action.
type AccessibilityListener interface {
	CustomActions(r textpos.Range, attrs rich.Attributes) []CustomAction
}

// AccessibilityListenerFunc adapts a function to the
// [AccessibilityListener] interface.
type AccessibilityListenerFunc func(r textpos.Range, attrs rich.Attributes) []CustomAction

func (f AccessibilityListenerFunc) CustomActions(r textpos.Range, attrs rich.Attributes) []CustomAction {
	return f(r, attrs)
}
