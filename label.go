// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"slices"
	"sync"
	"time"

	"github.com/textmark/tappable/events"
	"github.com/textmark/tappable/math32"
	"github.com/textmark/tappable/rich"
)

// Label is a tappable text surface: it owns the current region index
// over a styled text and layout, tracks the single active touch
// session, and dispatches to the configured listeners. All event
// processing is expected to arrive serialized on one goroutine
// (see [events.Queue]); the internal mutex only guards against the
// long-press timer goroutine.
type Label struct {
	mu sync.Mutex

	// text is the canonical styled text; never mutated by the label.
	text *rich.Text

	// render is the derived render copy with the highlight applied,
	// or nil when no highlight is active.
	render *rich.Text

	// layout resolves rune ranges and points to surface geometry.
	layout Layout

	// regions is the current region index, rebuilt wholesale on any
	// text or layout change.
	regions []Region

	// sess is the active touch session, nil when idle.
	sess *session

	// gen numbers touch sessions, guarding against stale timer fires.
	gen uint64

	// listeners are host observers of raw touch events.
	listeners events.Listeners

	tap           TapListener
	longPress     LongPressListener
	accessibility AccessibilityListener

	opts Options
}

// RegionInfo describes the tappable region at a queried point.
type RegionInfo struct {

	// Frame is the bounding box of the region's rectangles in the
	// surface's local coordinates.
	Frame math32.Box2

	// Attributes is the region's attribute snapshot.
	Attributes rich.Attributes
}

// NewLabel returns a new [Label] with default options.
func NewLabel() *Label {
	lb := &Label{}
	lb.opts.Defaults()
	return lb
}

// SetText sets the styled text, rebuilding the region index and
// dropping any active highlight. An active touch session is not
// invalidated: it dispatches with its press-time snapshot.
func (lb *Label) SetText(tx *rich.Text) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.text = tx
	lb.render = nil
	lb.rebuild()
	return lb
}

// SetLayout sets the layout provider, rebuilding the region index.
func (lb *Label) SetLayout(lay Layout) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.layout = lay
	lb.rebuild()
	return lb
}

// Update rebuilds the region index from the current text and layout.
// Call it after the layout's bounds or line-breaking parameters change.
func (lb *Label) Update() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.rebuild()
}

// rebuild replaces the whole region index. Caller must hold the mutex.
func (lb *Label) rebuild() {
	lb.regions = BuildRegions(lb.text, lb.layout)
}

// Text returns the canonical styled text.
func (lb *Label) Text() *rich.Text {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.text
}

// Render returns the text to render right now: the canonical text, or
// the derived copy with the press highlight applied while a region is
// pressed.
func (lb *Label) Render() *rich.Text {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lb.render != nil {
		return lb.render
	}
	return lb.text
}

// Regions returns a copy of the current region index.
func (lb *Label) Regions() []Region {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return slices.Clone(lb.regions)
}

// SetTapListener sets the listener notified of completed taps.
func (lb *Label) SetTapListener(l TapListener) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.tap = l
	return lb
}

// SetLongPressListener sets the listener notified of long presses.
// If nil, no long-press timer is armed and no accessibility long-press
// action is synthesized.
func (lb *Label) SetLongPressListener(l LongPressListener) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.longPress = l
	return lb
}

// SetAccessibilityListener sets the listener supplying additional
// accessibility custom actions per region.
func (lb *Label) SetAccessibilityListener(l AccessibilityListener) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.accessibility = l
	return lb
}

// SetOptions sets all interaction options at once.
func (lb *Label) SetOptions(o Options) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.opts = o
	return lb
}

// Options returns the current interaction options.
func (lb *Label) Options() Options {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.opts
}

// SetLongPressDuration sets how long the pointer must stay pressed
// before a long press is recognized.
func (lb *Label) SetLongPressDuration(d time.Duration) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.opts.LongPressDuration = d
	return lb
}

// SetLongPressAccessibilityActionName sets the name announced for the
// synthesized long-press accessibility action. Setting the empty
// string resets it to [DefaultLongPressActionName].
func (lb *Label) SetLongPressAccessibilityActionName(name string) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.opts.LongPressAccessibilityActionName = name
	return lb
}

// LongPressAccessibilityActionName returns the effective name of the
// synthesized long-press accessibility action.
func (lb *Label) LongPressAccessibilityActionName() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.opts.longPressActionName()
}

// On adds a listener function for raw touch events of the given type,
// called after the label's own gesture handling.
func (lb *Label) On(typ events.Types, fun func(e *events.Event)) *Label {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.listeners.Add(typ, fun)
	return lb
}

// HandleEvent processes one touch event through the gesture state
// machine and then through any [Label.On] listeners. Events must be
// delivered from a single goroutine in occurrence order.
func (lb *Label) HandleEvent(e *events.Event) {
	switch e.Type() {
	case events.TouchStart:
		lb.pressStart(e.Pos, e.Time())
	case events.TouchMove:
		lb.pressMove(e.Pos)
	case events.TouchEnd:
		lb.pressEnd()
	case events.TouchCancel:
		lb.pressCancel()
	}
	lb.mu.Lock()
	ls := lb.listeners
	lb.mu.Unlock()
	ls.Call(e)
}

// TouchStart delivers a touch-begin at the given point.
func (lb *Label) TouchStart(pt math32.Vector2) {
	lb.HandleEvent(events.NewTouch(events.TouchStart, pt))
}

// TouchMove delivers a pointer move at the given point.
func (lb *Label) TouchMove(pt math32.Vector2) {
	lb.HandleEvent(events.NewTouch(events.TouchMove, pt))
}

// TouchEnd delivers a touch-end.
func (lb *Label) TouchEnd(pt math32.Vector2) {
	lb.HandleEvent(events.NewTouch(events.TouchEnd, pt))
}

// TouchCancel delivers a system cancellation of the touch sequence.
func (lb *Label) TouchCancel() {
	lb.HandleEvent(events.NewTouch(events.TouchCancel, math32.Vector2{}))
}

// RegionInfoAtPoint returns the frame and attributes of the tappable
// region at the given point, if any. It is usable outside the touch
// pipeline (e.g., for preview interactions) and uses the same lookup
// as gesture hit-testing.
func (lb *Label) RegionInfoAtPoint(pt math32.Vector2) (RegionInfo, bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	rg, _ := lb.lookup(pt)
	if rg == nil {
		return RegionInfo{}, false
	}
	return RegionInfo{Frame: rg.Frame(), Attributes: rg.Attributes}, true
}

// lookup maps a point to the hit-testable region containing the rune
// nearest the point, along with that rune index. It relies solely on
// the layout's nearest-rune mapping, never on rect containment, so
// inter-line gaps resolve the same way the layout resolves them.
// Caller must hold the mutex.
func (lb *Label) lookup(pt math32.Vector2) (*Region, int) {
	if lb.layout == nil || len(lb.regions) == 0 {
		return nil, -1
	}
	i := lb.layout.RuneAtPoint(pt)
	return regionContaining(lb.regions, i), i
}
