// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"slices"

	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/textpos"
)

// CustomAction is a named accessibility action attached to a region's
// element.
type CustomAction struct {

	// Name is the localized name announced for the action.
	Name string

	// Activate performs the action.
	Activate func()
}

// Element describes one tappable region to the host accessibility
// tree: a frame, a spoken label, and the custom actions available.
type Element struct {

	// Frame is the bounding box of all of the region's rectangles.
	// For a region wrapped across lines this spans the full extent,
	// matching how a screen reader announces one focusable element.
	Frame math32.Box2

	// Label is the text content of the region's range.
	Label string

	// Range is the region's source rune range.
	Range textpos.Range

	// Actions are the custom actions: the synthesized long-press
	// action first (when a long-press listener is configured),
	// followed by listener-provided actions in their given order.
	Actions []CustomAction
}

// AccessibilityElements produces one element per tappable region with
// on-surface geometry. Regions whose rectangles were collapsed by
// layout are excluded. When a long-press listener is configured, each
// element gets a custom action named by the configured long-press
// action name that invokes the listener exactly as a real long press
// at the region's start would.
func (lb *Label) AccessibilityElements() []Element {
	lb.mu.Lock()
	tx := lb.text
	lp := lb.longPress
	al := lb.accessibility
	name := lb.opts.longPressActionName()
	regs := slices.Clone(lb.regions)
	lb.mu.Unlock()

	var els []Element
	for _, rg := range regs {
		if !rg.HitTestable() || !rg.Attributes.Tappable() {
			continue
		}
		el := Element{Frame: rg.Frame(), Range: rg.Range}
		if tx != nil {
			el.Label = tx.Substring(rg.Range)
		}
		if lp != nil {
			el.Actions = append(el.Actions, CustomAction{
				Name: name,
				Activate: func() {
					lp.LongPressed(rg.Range.Start, rg.Attributes)
				},
			})
		}
		if al != nil {
			el.Actions = append(el.Actions, al.CustomActions(rg.Range, rg.Attributes)...)
		}
		els = append(els, el)
	}
	return els
}
