// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsNil())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(1))
	assert.Equal(t, "[2, 5)", r.String())

	assert.Equal(t, 0, Range{Start: 5, End: 2}.Len())
	assert.True(t, Range{Start: 3, End: 3}.IsNil())
}

func TestRangeIntersect(t *testing.T) {
	r := Range{Start: 2, End: 8}
	assert.Equal(t, Range{Start: 4, End: 6}, r.Intersect(Range{Start: 4, End: 6}))
	assert.Equal(t, Range{Start: 2, End: 5}, r.Intersect(Range{Start: 0, End: 5}))
	assert.True(t, r.Intersect(Range{Start: 9, End: 12}).IsNil())
	assert.True(t, r.Intersect(Range{Start: 8, End: 10}).IsNil())
}

func TestRangeCanon(t *testing.T) {
	assert.Equal(t, Range{Start: 2, End: 5}, Range{Start: 5, End: 2}.Canon())
	assert.Equal(t, Range{Start: 2, End: 5}, Range{Start: 2, End: 5}.Canon())
}
