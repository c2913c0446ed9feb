// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"github.com/textmark/tappable/math32"
)

// Event is one touch event: a type, a position in the text surface's
// local coordinate space, and a timestamp.
type Event struct {
	// Typ is the type of the event.
	Typ Types

	// Pos is the pointer position in the surface's local coordinates.
	Pos math32.Vector2

	// Tm is when the event occurred.
	Tm time.Time

	handled bool
}

// NewTouch returns a new touch [Event] of the given type at the given
// position, timestamped now.
func NewTouch(typ Types, pos math32.Vector2) *Event {
	return &Event{Typ: typ, Pos: pos, Tm: time.Now()}
}

// Type returns the type of the event.
func (e *Event) Type() Types {
	return e.Typ
}

// Time returns when the event occurred.
func (e *Event) Time() time.Time {
	return e.Tm
}

// SetHandled marks the event as handled, stopping any remaining
// listener calls for it.
func (e *Event) SetHandled() {
	e.handled = true
}

// IsHandled returns whether the event has been marked as handled.
func (e *Event) IsHandled() bool {
	return e.handled
}

func (e *Event) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", e.Typ, e.Pos, e.Tm.Format("04:05.000"))
}
