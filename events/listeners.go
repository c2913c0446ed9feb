// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of listener functions for different event
// types. Listeners are closures with all needed context captured.
type Listeners map[Types][]func(e *Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a listener function for the given event type.
func (ls *Listeners) Add(typ Types, fun func(e *Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all listener functions for the given event, in reverse
// order of addition so that the most recently added runs first,
// stopping if the event is marked as handled. This gives natural,
// optional override behavior without priority mechanisms.
func (ls *Listeners) Call(e *Event) {
	if e.IsHandled() {
		return
	}
	fns := (*ls)[e.Type()]
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i](e)
		if e.IsHandled() {
			break
		}
	}
}
