// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/shadow/math32"
	"github.com/stretchr/testify/assert"
)

func TestSides(t *testing.T) {
	assert.Equal(t, Sides{}, NewSides())
	assert.Equal(t, Sides{5, 5, 5, 5}, NewSides(5))
	assert.Equal(t, Sides{2, 4, 2, 4}, NewSides(2, 4))
	assert.Equal(t, Sides{1, 2, 3, 2}, NewSides(1, 2, 3))
	assert.Equal(t, Sides{1, 2, 3, 4}, NewSides(1, 2, 3, 4))

	s := NewSides(1, 2, 3, 4)
	assert.Equal(t, float32(6), s.Horizontal())
	assert.Equal(t, float32(4), s.Vertical())
	assert.Equal(t, math32.Vec2(6, 4), s.Size())
	assert.Equal(t, math32.Vec2(4, 1), s.Pos())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, math32.Vec2(0, 5), SanitizeSize(math32.Vec2(-3, 5)))
	assert.Equal(t, math32.Vec2(0, 0), SanitizeSize(math32.Vec2(math32.NaN(), math32.Inf(-1))))
	assert.Equal(t, math32.Infinity, SanitizeSize(math32.Vec2(math32.Infinity, 0)).X)

	assert.Equal(t, math32.Vec2(0, -2), SanitizePoint(math32.Vec2(math32.Infinity, -2)))
	assert.Equal(t, math32.Vec2(0, 0), SanitizePoint(math32.Vec2(math32.NaN(), math32.Inf(-1))))
}

func TestMetricsBounds(t *testing.T) {
	m := Metrics{Pos: math32.Vec2(10, 20), Size: math32.Vec2(30, 40)}
	assert.Equal(t, math32.B2(10, 20, 40, 60), m.Bounds())
}

func TestDirections(t *testing.T) {
	assert.Equal(t, math32.X, Row.Dim())
	assert.Equal(t, math32.Y, Column.Dim())
	assert.Equal(t, "Row", Row.String())
	assert.Equal(t, "Column", Column.String())
	assert.Equal(t, "LTR", LTR.String())
	assert.Equal(t, "RTL", RTL.String())
}

func TestContextDefaults(t *testing.T) {
	c := &Context{}
	c.Defaults()
	assert.Equal(t, float32(96), c.DPI)
	assert.Equal(t, LTR, c.Direction)
	assert.Equal(t, math32.Vector2{}, c.Viewport)
}
