// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/textmark/tappable/math32"
)

func TestListeners(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(TouchStart, func(e *Event) { order = append(order, 1) })
	ls.Add(TouchStart, func(e *Event) { order = append(order, 2) })
	ls.Add(TouchEnd, func(e *Event) { order = append(order, 3) })

	ls.Call(NewTouch(TouchStart, math32.Vec2(0, 0)))
	// most recently added runs first
	assert.Equal(t, []int{2, 1}, order)

	order = nil
	ls.Add(TouchStart, func(e *Event) {
		order = append(order, 4)
		e.SetHandled()
	})
	ls.Call(NewTouch(TouchStart, math32.Vec2(0, 0)))
	assert.Equal(t, []int{4}, order)

	// an already handled event is not delivered
	order = nil
	e := NewTouch(TouchEnd, math32.Vec2(0, 0))
	e.SetHandled()
	ls.Call(e)
	assert.Empty(t, order)
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.NextEvent())

	q.Send(NewTouch(TouchStart, math32.Vec2(1, 2)))
	q.Send(NewTouch(TouchMove, math32.Vec2(3, 4)))
	q.Send(NewTouch(TouchEnd, math32.Vec2(3, 4)))
	assert.Equal(t, uint64(3), q.Len())

	e := q.NextEvent()
	assert.Equal(t, TouchStart, e.Type())
	assert.Equal(t, math32.Vec2(1, 2), e.Pos)
	assert.Equal(t, TouchMove, q.NextEvent().Type())
	assert.Equal(t, TouchEnd, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
}

func TestQueueConcurrentSend(t *testing.T) {
	var q Queue
	q.Init()
	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < n; j++ {
				q.Send(NewTouch(TouchMove, math32.Vec2(0, 0)))
			}
		}()
	}
	wg.Wait()
	got := 0
	for q.NextEvent() != nil {
		got++
	}
	assert.Equal(t, 4*n, got)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "TouchStart", TouchStart.String())
	assert.Equal(t, "TouchCancel", TouchCancel.String())
}
