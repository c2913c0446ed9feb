// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the touch event types consumed by a tappable
// text surface, listener registration, and a queue for serializing
// events from input goroutines onto the surface's owning goroutine.
package events

// Types determines the type of touch event. Only the first active
// pointer is modeled: there is at most one touch sequence in flight.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// TouchStart happens when a pointer first makes contact with the
	// surface, beginning a touch sequence. A TouchStart while a prior
	// sequence is unfinished supersedes it.
	TouchStart

	// TouchMove happens when the active pointer moves.
	TouchMove

	// TouchEnd happens when the active pointer lifts, ending the
	// touch sequence normally.
	TouchEnd

	// TouchCancel happens when the system interrupts the touch
	// sequence (e.g., an incoming call or gesture takeover).
	// No tap or long-press results from a cancelled sequence.
	TouchCancel
)

var typeNames = map[Types]string{
	UnknownType: "UnknownType",
	TouchStart:  "TouchStart",
	TouchMove:   "TouchMove",
	TouchEnd:    "TouchEnd",
	TouchCancel: "TouchCancel",
}

func (t Types) String() string {
	if nm, ok := typeNames[t]; ok {
		return nm
	}
	return "Types(?)"
}
