// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vec2(FromFixed(pt.X), FromFixed(pt.Y))
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add returns the vector sum of v and u.
func (v Vector2) Add(u Vector2) Vector2 {
	return Vec2(v.X+u.X, v.Y+u.Y)
}

// Sub returns v minus u.
func (v Vector2) Sub(u Vector2) Vector2 {
	return Vec2(v.X-u.X, v.Y-u.Y)
}

// MulScalar returns v multiplied by the scalar s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// SetAdd adds u to v in place.
func (v *Vector2) SetAdd(u Vector2) {
	v.X += u.X
	v.Y += u.Y
}

// SetScalar sets both components to the given scalar value.
func (v *Vector2) SetScalar(s float32) {
	v.X = s
	v.Y = s
}

// SetMin sets each component to the minimum of its current value
// and the corresponding component of u.
func (v *Vector2) SetMin(u Vector2) {
	v.X = min(v.X, u.X)
	v.Y = min(v.Y, u.Y)
}

// SetMax sets each component to the maximum of its current value
// and the corresponding component of u.
func (v *Vector2) SetMax(u Vector2) {
	v.X = max(v.X, u.X)
	v.Y = max(v.Y, u.Y)
}

// Clamp constrains each component to the range given by the
// corresponding components of lo and hi.
func (v *Vector2) Clamp(lo, hi Vector2) {
	v.X = min(max(v.X, lo.X), hi.X)
	v.Y = min(max(v.Y, lo.Y), hi.Y)
}

// Length returns the Euclidean length of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the distance between v and u as points.
func (v Vector2) DistanceTo(u Vector2) float32 {
	return v.Sub(u).Length()
}

// ToPointFloor returns an [image.Point] with both components floored.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// ToPointCeil returns an [image.Point] with both components ceiled.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// ToFixed returns a [fixed.Point26_6] version of this vector.
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}
