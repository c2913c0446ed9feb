// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tappable makes sub-ranges of styled, line-wrapped text
// interactive: it derives tappable regions from attribute runs in a
// [rich.Text], resolves touch input against them through a pluggable
// [Layout], and drives a press / highlight / tap-or-long-press state
// machine with listener dispatch and accessibility element generation.
//
// The canonical text is never mutated: while a region is pressed, the
// highlight colors are applied to a derived render copy available from
// [Label.Render], and dropped again on every way out of the gesture.
package tappable
