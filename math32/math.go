// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 2D vector and bounding-box types
// for text geometry, wrapping optimized scalar functions from
// [github.com/chewxy/math32].
package math32

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// ToFixed converts a float32 value to a fixed.Int26_6.
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed converts a fixed.Int26_6 value to a float32.
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
