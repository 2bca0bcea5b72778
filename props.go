// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"log/slog"
	"reflect"

	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
	"github.com/jinzhu/copier"
)

// Overflows specifies the behavior of content that exceeds the
// container bounds along one axis.
type Overflows int32

const (
	// OverflowVisible renders overflowing content outside the container.
	OverflowVisible Overflows = iota

	// OverflowHidden clips overflowing content.
	OverflowHidden

	// OverflowScroll makes the axis scrollable: content is clipped
	// and translated by the committed scroll offset.
	OverflowScroll
)

func (o Overflows) String() string {
	switch o {
	case OverflowVisible:
		return "OverflowVisible"
	case OverflowHidden:
		return "OverflowHidden"
	case OverflowScroll:
		return "OverflowScroll"
	}
	return "OverflowsN"
}

// Props has the declared, host-supplied attributes of a node. Props
// are immutable once attached to a node: updates replace the whole
// value. The zero value is valid.
type Props struct {
	// Min is the declared minimum size; zero means none.
	Min math32.Vector2

	// Max is the declared maximum size; zero means none.
	Max math32.Vector2

	// Grow has per-axis weights for taking surplus space in the parent.
	Grow math32.Vector2

	// Direction is the main axis along which children are stacked.
	Direction layout.Directions

	// Gap is the space between adjacent children along the main axis.
	Gap float32

	// Padding is the inset between the node edge and its content.
	Padding layout.Sides

	// Overflow is the per-axis overflow behavior, indexed by
	// [math32.Dims]. For [Scroll] nodes, the axes set to
	// [OverflowScroll] are the scrollable axes; a Scroll node with
	// none declared scrolls vertically.
	Overflow [2]Overflows

	// ScrollDisabled turns off gesture driven offset updates for a
	// [Scroll] node. Content geometry is still derived.
	ScrollDisabled bool

	// Attributes has arbitrary declared key/value pairs carried
	// through to the rendering layer untouched.
	Attributes map[string]any
}

// Clone returns a deep copy of the props, so that the caller and the
// tree never share mutable memory.
func (p Props) Clone() Props {
	np := Props{}
	err := copier.CopyWithOption(&np, &p, copier.Option{DeepCopy: true})
	if err != nil {
		slog.Error("shadow.Props.Clone failed", "err", err)
		return p
	}
	return np
}

// sanitize clamps invalid declared geometry in place: NaN, negative,
// and infinite sizes become zero.
func (p *Props) sanitize() {
	p.Min = layout.SanitizeSize(p.Min)
	p.Max = layout.SanitizeSize(p.Max)
	p.Grow = layout.SanitizeSize(p.Grow)
	for d := math32.X; d <= math32.Y; d++ {
		if math32.IsInf(p.Min.Dim(d), 1) {
			p.Min.SetDim(d, 0)
		}
		if math32.IsInf(p.Max.Dim(d), 1) {
			p.Max.SetDim(d, 0)
		}
		if math32.IsInf(p.Grow.Dim(d), 1) {
			p.Grow.SetDim(d, 0)
		}
	}
	if math32.IsNaN(p.Gap) || math32.IsInf(p.Gap, 0) || p.Gap < 0 {
		p.Gap = 0
	}
	pv := []*float32{&p.Padding.Top, &p.Padding.Right, &p.Padding.Bottom, &p.Padding.Left}
	for _, f := range pv {
		if math32.IsNaN(*f) || math32.IsInf(*f, 0) || *f < 0 {
			*f = 0
		}
	}
}

// box returns the props as [layout.Box] container inputs.
func (p Props) box() layout.Box {
	return layout.Box{
		Min:       p.Min,
		Max:       p.Max,
		Padding:   p.Padding,
		Gap:       p.Gap,
		Direction: p.Direction,
	}
}

// propsEqual reports whether two props values are semantically equal,
// including their attribute maps.
func propsEqual(a, b Props) bool {
	return reflect.DeepEqual(a, b)
}
