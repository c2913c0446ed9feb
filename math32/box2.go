// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 is a 2D axis-aligned bounding box defined by its minimum and
// maximum corner points.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y
// coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values,
// ready to be expanded by points or boxes.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return B2(float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Max.X), float32(rect.Max.Y))
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	b := Box2{}
	b.Min = Vector2FromFixed(rect.Min)
	b.Max = Vector2FromFixed(rect.Max)
	return b
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty
// (max < min on either coordinate).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the vector from the minimum point to the maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ExpandByPoint expands this bounding box as needed to include the
// given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox expands this bounding box as needed to include the
// given box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Union returns the union of this box with the other box.
func (b Box2) Union(other Box2) Box2 {
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// Intersect returns the intersection of this box with the other box.
func (b Box2) Intersect(other Box2) Box2 {
	other.Min.SetMax(b.Min)
	other.Max.SetMin(b.Max)
	return other
}

// ContainsPoint returns whether this bounding box contains the given point.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y {
		return false
	}
	return true
}

// ClampPoint returns the given point clamped to be inside this box.
func (b Box2) ClampPoint(point Vector2) Vector2 {
	point.Clamp(b.Min, b.Max)
	return point
}

// DistanceToPoint returns the distance from this box to the given point,
// which is 0 for points inside the box.
func (b Box2) DistanceToPoint(point Vector2) float32 {
	return b.ClampPoint(point).Sub(point).Length()
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// ToRect returns an [image.Rectangle] version of this box, using floor
// for the minimum and ceil for the maximum.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}
