// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestFixedConversion(t *testing.T) {
	assert.Equal(t, fixed.Int26_6(64), ToFixed(1))
	assert.Equal(t, float32(1.5), FromFixed(ToFixed(1.5)))
	assert.Equal(t, float32(0.25), FromFixed(fixed.Int26_6(16)))
}

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(5), v.DistanceTo(Vec2(0, 0)))
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, image.Point{X: 3, Y: 4}, v.ToPointFloor())
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 20)
	assert.Equal(t, Vec2(10, 20), b.Size())
	assert.Equal(t, Vec2(5, 10), b.Center())
	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.False(t, b.ContainsPoint(Vec2(11, 5)))
	assert.Equal(t, float32(0), b.DistanceToPoint(Vec2(5, 5)))
	assert.Equal(t, float32(5), b.DistanceToPoint(Vec2(15, 10)))
	assert.Equal(t, B2(5, 5, 15, 25), b.Translate(Vec2(5, 5)))
	assert.Equal(t, image.Rect(0, 0, 10, 20), b.ToRect())
}

func TestBox2Empty(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(2, 3))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(2, 3, 2, 3), b)
	b.ExpandByBox(B2(0, 5, 4, 9))
	assert.Equal(t, B2(0, 3, 4, 9), b)
}

func TestBox2SetOps(t *testing.T) {
	a := B2(0, 0, 10, 10)
	b := B2(5, 5, 15, 15)
	assert.Equal(t, B2(0, 0, 15, 15), a.Union(b))
	assert.Equal(t, B2(5, 5, 10, 10), a.Intersect(b))
	assert.True(t, a.Intersect(B2(20, 20, 30, 30)).IsEmpty())
}
