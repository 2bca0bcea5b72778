// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides the geometry side of the shadow tree:
// the per-pass [Context], sanitized size handling, and the pluggable
// [Arranger] interface with a default [Stack] implementation that
// stacks items along a main axis with gap, padding, and growth.
package layout

import (
	"fmt"

	"cogentcore.org/shadow/math32"
)

// Directions specifies the main axis along which a container
// stacks its children.
type Directions int32

const (
	// Row indicates that items are stacked horizontally.
	Row Directions = iota

	// Column indicates that items are stacked vertically.
	Column
)

// Dim returns the [math32.Dims] main axis of this direction.
func (d Directions) Dim() math32.Dims {
	if d == Row {
		return math32.X
	}
	return math32.Y
}

func (d Directions) String() string {
	switch d {
	case Row:
		return "Row"
	case Column:
		return "Column"
	}
	return "DirectionsN"
}

// TextDirections specifies the horizontal base direction of the
// content, which determines the edge that scrolling originates from.
type TextDirections int32

const (
	// LTR is left-to-right content, with the scroll origin at the left edge.
	LTR TextDirections = iota

	// RTL is right-to-left content, with the scroll origin at the right edge.
	RTL
)

func (d TextDirections) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	}
	return "TextDirectionsN"
}

// Context has the external parameters governing one layout pass.
// A fresh copy is captured at the start of each pass and is never
// modified while the pass is running.
type Context struct {
	// Viewport is the total space available to the root node.
	Viewport math32.Vector2

	// DPI is the logical dots per inch of the target display,
	// for arrangers that snap geometry to device pixels.
	DPI float32

	// Direction is the base content direction for the pass.
	Direction TextDirections
}

// Defaults sets standard context values: a 96 DPI display with
// left-to-right content and no viewport.
func (c *Context) Defaults() {
	c.DPI = 96
	c.Direction = LTR
}

func (c Context) String() string {
	return fmt.Sprintf("viewport: %v, dpi: %g, direction: %v", c.Viewport, c.DPI, c.Direction)
}

// SanitizeSize returns the given size with NaN, negative, and negative
// infinity components replaced by zero. Positive infinity is preserved,
// indicating unbounded available space.
func SanitizeSize(v math32.Vector2) math32.Vector2 {
	for d := math32.X; d <= math32.Y; d++ {
		x := v.Dim(d)
		if math32.IsNaN(x) || x < 0 {
			v.SetDim(d, 0)
		}
	}
	return v
}

// SanitizePoint returns the given point with NaN and infinite
// components replaced by zero.
func SanitizePoint(v math32.Vector2) math32.Vector2 {
	for d := math32.X; d <= math32.Y; d++ {
		x := v.Dim(d)
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			v.SetDim(d, 0)
		}
	}
	return v
}
