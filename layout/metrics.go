// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"cogentcore.org/shadow/math32"
)

// Metrics is the computed geometry of one node: its position within
// the parent's content space and its total size.
type Metrics struct {
	// Pos is the position of the top-left corner relative to the
	// top-left corner of the parent, before any scroll translation
	// the parent applies to its content.
	Pos math32.Vector2

	// Size is the total size occupied, including padding.
	Size math32.Vector2
}

// Bounds returns the metrics as a [math32.Box2] from Pos to Pos + Size.
func (m Metrics) Bounds() math32.Box2 {
	return math32.Box2{Min: m.Pos, Max: m.Pos.Add(m.Size)}
}

func (m Metrics) String() string {
	return fmt.Sprintf("pos: %v, size: %v", m.Pos, m.Size)
}

// Sides is a set of float32 values for the top, right, bottom, and
// left sides of a box, used for padding.
type Sides struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewSides returns a new [Sides] set from the given CSS-ordered values:
// none is zero for all, one is all, two is top/bottom and right/left,
// three is top, right/left, and bottom, and four is top, right, bottom,
// and left.
func NewSides(vals ...float32) Sides {
	s := Sides{}
	s.Set(vals...)
	return s
}

// Set sets the sides from the given CSS-ordered values, as in [NewSides].
func (s *Sides) Set(vals ...float32) {
	switch len(vals) {
	case 0:
		*s = Sides{}
	case 1:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[0], vals[1]
	case 3:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[1]
	default:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[3]
	}
}

// Horizontal returns the sum of the left and right sides.
func (s Sides) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns the sum of the top and bottom sides.
func (s Sides) Vertical() float32 {
	return s.Top + s.Bottom
}

// Size returns the total horizontal and vertical extent as a vector.
func (s Sides) Size() math32.Vector2 {
	return math32.Vec2(s.Horizontal(), s.Vertical())
}

// Pos returns the top-left inset as a vector.
func (s Sides) Pos() math32.Vector2 {
	return math32.Vec2(s.Left, s.Top)
}

// Box has the declared geometry inputs of one container, as the
// arranger sees them.
type Box struct {
	// Min is the declared minimum size; zero means none.
	Min math32.Vector2

	// Max is the declared maximum size; zero means none.
	Max math32.Vector2

	// Padding is the inset between the container edge and its content.
	Padding Sides

	// Gap is the space between adjacent items along the main axis.
	Gap float32

	// Direction is the main axis along which items are stacked.
	Direction Directions
}

// Item is one child as the arranger sees it: declared size bounds,
// growth weights, and a content-driven size query.
type Item struct {
	// Min is the declared minimum size; zero means none.
	Min math32.Vector2

	// Max is the declared maximum size; zero means none.
	Max math32.Vector2

	// Grow has per-axis weights for distributing surplus space.
	Grow math32.Vector2

	// Intrinsic returns the content-driven size of the item given the
	// available space. It must be pure. It may be nil for items whose
	// size comes entirely from Min.
	Intrinsic func(avail math32.Vector2) math32.Vector2
}

// Result is the output of arranging one container: the size the
// content wants and the metrics of each item.
type Result struct {
	// Size is the content-driven size of the container, including
	// padding, clamped to the container's declared Min and Max.
	Size math32.Vector2

	// Items has the computed metrics of each input item, in order,
	// with positions relative to the container's top-left corner,
	// inset by its padding.
	Items []Metrics
}

// Arranger computes the geometry of a container's items within the
// available space. Implementations must be pure: identical inputs
// yield identical results, with no retained state between calls,
// so that passes can run and be discarded freely.
type Arranger interface {
	Arrange(ctx *Context, box Box, items []Item, avail math32.Vector2) Result
}
