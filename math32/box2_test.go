// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(1, 2, 5, 8)
	assert.Equal(t, Vec2(1, 2), b.Min)
	assert.Equal(t, Vec2(5, 8), b.Max)
	assert.Equal(t, Vec2(4, 6), b.Size())
	assert.Equal(t, Vec2(3, 5), b.Center())
	assert.False(t, b.IsEmpty())

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, Infinity, e.Min.X)
	assert.Equal(t, -Infinity, e.Max.Y)
}

func TestBox2Expand(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(2, 3))
	assert.Equal(t, B2(2, 3, 2, 3), b)

	b.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 3, 2, 5), b)

	b.ExpandByBox(B2(0, 0, 10, 4))
	assert.Equal(t, B2(-1, 0, 10, 5), b)

	// expanding an empty box by another box adopts that box
	e := B2Empty()
	e.ExpandByBox(B2(1, 1, 2, 2))
	assert.Equal(t, B2(1, 1, 2, 2), e)
}

func TestBox2SetFromPoints(t *testing.T) {
	b := Box2{}
	b.SetFromPoints([]Vector2{{4, 1}, {-2, 7}, {3, 3}})
	assert.Equal(t, B2(-2, 1, 4, 7), b)

	b.SetFromPoints(nil)
	assert.True(t, b.IsEmpty())
}

func TestBox2UnionIntersect(t *testing.T) {
	a := B2(0, 0, 4, 4)
	b := B2(2, 2, 6, 6)

	assert.Equal(t, B2(0, 0, 6, 6), a.Union(b))
	assert.Equal(t, B2(2, 2, 4, 4), a.Intersect(b))
	assert.True(t, a.IntersectsBox(b))
	assert.False(t, a.IntersectsBox(B2(5, 5, 6, 6)))
	assert.True(t, a.ContainsBox(B2(1, 1, 3, 3)))
	assert.False(t, a.ContainsBox(b))
	assert.True(t, a.ContainsPoint(Vec2(4, 0)))
	assert.False(t, a.ContainsPoint(Vec2(4.1, 0)))
}

func TestBox2Transforms(t *testing.T) {
	b := B2(1, 1, 3, 4)
	assert.Equal(t, B2(3, 0, 5, 3), b.Translate(Vec2(2, -1)))

	c := B2(5, 8, 1, 2).Canon()
	assert.Equal(t, B2(1, 2, 5, 8), c)

	r := B2(0.5, 0.5, 2.5, 2.5).ToRect()
	assert.Equal(t, image.Rect(0, 0, 3, 3), r)
	assert.Equal(t, B2(0, 0, 3, 3), B2FromRect(r))
}
