// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"time"

	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/rich"
)

// session is the transient state for the one active touch sequence.
// A session over a region moves through: pressed, then exactly one of
// cancelled (moved out or superseded), long-pressed (timer fired, the
// matching end is swallowed), or tapped (end while still pressed).
// A session that began outside every region is inert: it tracks the
// sequence so that later movement back in never dispatches.
type session struct {

	// origin is a copy of the region under the press, valid when active.
	origin Region

	// active is whether the press began inside a hit-testable region.
	active bool

	// originIndex is the source rune index nearest the press point.
	originIndex int

	startPos  math32.Vector2
	startTime time.Time

	longPressed bool
	cancelled   bool

	// timer is the armed long-press timer, nil once disarmed or fired.
	timer *time.Timer

	// gen is the session generation, matched by timer callbacks.
	gen uint64
}

// stopTimer disarms the long-press timer. Disarming an already fired
// or already disarmed timer is a no-op.
func (s *session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// pressStart begins a new touch session at the given point. Any
// unfinished session is superseded: its highlight is cleared and its
// timer disarmed, with no dispatch.
func (lb *Label) pressStart(pt math32.Vector2, tm time.Time) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if s := lb.sess; s != nil {
		s.stopTimer()
		lb.render = nil
		lb.sess = nil
	}
	lb.gen++
	s := &session{startPos: pt, startTime: tm, originIndex: -1, gen: lb.gen}
	lb.sess = s
	rg, i := lb.lookup(pt)
	if rg == nil {
		return
	}
	s.active = true
	s.origin = *rg
	s.originIndex = i
	lb.applyHighlight(rg)
	if lb.longPress != nil {
		gen := s.gen
		s.timer = time.AfterFunc(lb.opts.LongPressDuration, func() {
			lb.longPressTimeout(gen)
		})
	}
}

// pressMove handles pointer movement during a session. Moving to a
// point whose lookup yields a different region (or none), or moving
// beyond the slop tolerance, cancels the press: the highlight clears
// immediately and the eventual end dispatches nothing.
func (lb *Label) pressMove(pt math32.Vector2) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	s := lb.sess
	if s == nil || !s.active || s.cancelled || s.longPressed {
		return
	}
	rg, _ := lb.lookup(pt)
	out := rg == nil || rg.Range != s.origin.Range
	if !out && pt.DistanceTo(s.startPos) > lb.opts.MoveTolerance {
		out = true
	}
	if out {
		s.cancelled = true
		s.stopTimer()
		lb.render = nil
	}
}

// pressEnd completes the touch sequence. A session still pressed, not
// cancelled, and without a fired long press dispatches a tap with the
// press-time snapshot; all other sessions end silently.
func (lb *Label) pressEnd() {
	lb.mu.Lock()
	s := lb.sess
	lb.sess = nil
	if s == nil {
		lb.mu.Unlock()
		return
	}
	s.stopTimer()
	lb.render = nil
	var fire func()
	if s.active && !s.cancelled && !s.longPressed && lb.tap != nil {
		tl, i, at := lb.tap, s.originIndex, s.origin.Attributes
		fire = func() { tl.Tapped(i, at) }
	}
	lb.mu.Unlock()
	if fire != nil {
		fire()
	}
}

// pressCancel ends the touch sequence without any dispatch.
func (lb *Label) pressCancel() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	s := lb.sess
	lb.sess = nil
	if s == nil {
		return
	}
	s.stopTimer()
	lb.render = nil
}

// longPressTimeout runs when the long-press timer fires. Fires for a
// superseded, cancelled, or completed session are stale and ignored.
// On a live session it clears the highlight, dispatches the long-press
// listener, and keeps the session alive so that the matching end is
// swallowed without a tap.
func (lb *Label) longPressTimeout(gen uint64) {
	lb.mu.Lock()
	s := lb.sess
	if s == nil || s.gen != gen || !s.active || s.cancelled || s.longPressed {
		lb.mu.Unlock()
		return
	}
	s.longPressed = true
	s.timer = nil
	lb.render = nil
	var fire func()
	if lp := lb.longPress; lp != nil {
		i, at := s.originIndex, s.origin.Attributes
		fire = func() { lp.LongPressed(i, at) }
	}
	lb.mu.Unlock()
	if fire != nil {
		fire()
	}
}

// applyHighlight derives the render copy with the region's highlight
// colors applied over its range. Absent or malformed highlight colors
// mean no override for that channel. Caller must hold the mutex.
func (lb *Label) applyHighlight(rg *Region) {
	if lb.text == nil {
		return
	}
	bg, _ := rg.Attributes.HighlightedBackground()
	fg, _ := rg.Attributes.HighlightedForeground()
	lb.render = lb.text.WithHighlight(rich.Highlight{
		Range:      rg.Range,
		Background: bg,
		Foreground: fg,
	})
}
