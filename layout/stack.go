// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/shadow/math32"
)

// Stack is the default [Arranger]. It stacks items along the main
// axis of the container in order, separated by Gap, inset by Padding,
// with each item clamped to its declared Min and Max. Surplus main
// axis space is distributed by Grow weight in a single round, and
// items with cross axis Grow are stretched to the available cross
// size. It is not a constraint solver: items that overflow simply
// extend past the available space.
type Stack struct{}

// Arrange implements [Arranger].
func (st *Stack) Arrange(ctx *Context, box Box, items []Item, avail math32.Vector2) Result {
	avail = SanitizeSize(avail)
	inner := innerAvail(avail, box.Padding)
	ma := box.Direction.Dim()
	ca := ma.Other()

	sizes := make([]math32.Vector2, len(items))
	var totalGrow, totalMain float32
	for i, it := range items {
		want := it.Min
		if it.Intrinsic != nil {
			want = want.Max(SanitizeSize(it.Intrinsic(inner)))
		}
		sizes[i] = clampSize(want, it.Min, it.Max)
		totalMain += sizes[i].Dim(ma)
		totalGrow += math32.Max(it.Grow.Dim(ma), 0)
	}
	if len(items) > 1 {
		totalMain += box.Gap * float32(len(items)-1)
	}

	// distribute surplus main axis space by grow weight. one round:
	// shares lost to an item's max are not redistributed.
	if totalGrow > 0 && !math32.IsInf(inner.Dim(ma), 1) {
		extra := inner.Dim(ma) - totalMain
		if extra > 0 {
			for i, it := range items {
				g := math32.Max(it.Grow.Dim(ma), 0)
				if g == 0 {
					continue
				}
				sz := sizes[i]
				sz.SetDim(ma, sz.Dim(ma)+extra*g/totalGrow)
				sizes[i] = clampSize(sz, it.Min, it.Max)
			}
		}
	}

	// stretch growing items across the cross axis
	if !math32.IsInf(inner.Dim(ca), 1) {
		for i, it := range items {
			if it.Grow.Dim(ca) > 0 && sizes[i].Dim(ca) < inner.Dim(ca) {
				sz := sizes[i]
				sz.SetDim(ca, inner.Dim(ca))
				sizes[i] = clampSize(sz, it.Min, it.Max)
			}
		}
	}

	res := Result{Items: make([]Metrics, len(items))}
	origin := box.Padding.Pos()
	cursor := float32(0)
	var contentCross float32
	for i := range items {
		pos := origin
		pos.SetDim(ma, pos.Dim(ma)+cursor)
		res.Items[i] = Metrics{Pos: pos, Size: sizes[i]}
		cursor += sizes[i].Dim(ma)
		if i < len(items)-1 {
			cursor += box.Gap
		}
		contentCross = math32.Max(contentCross, sizes[i].Dim(ca))
	}

	var content math32.Vector2
	content.SetDim(ma, cursor)
	content.SetDim(ca, contentCross)
	res.Size = clampSize(content.Add(box.Padding.Size()), box.Min, box.Max)
	return res
}

// innerAvail returns the space available to content after padding,
// preserving unbounded axes.
func innerAvail(avail math32.Vector2, pad Sides) math32.Vector2 {
	ps := pad.Size()
	for d := math32.X; d <= math32.Y; d++ {
		if !math32.IsInf(avail.Dim(d), 1) {
			avail.SetDim(d, math32.Max(avail.Dim(d)-ps.Dim(d), 0))
		}
	}
	return avail
}

// clampSize clamps the given size to the declared min and max bounds,
// where zero max components mean unbounded, and forces all components
// to be finite and non-negative.
func clampSize(sz, min, max math32.Vector2) math32.Vector2 {
	sz = sz.Max(min)
	for d := math32.X; d <= math32.Y; d++ {
		if mx := max.Dim(d); mx > 0 {
			sz.SetDim(d, math32.Min(sz.Dim(d), mx))
		}
		if x := sz.Dim(d); math32.IsNaN(x) || math32.IsInf(x, 0) || x < 0 {
			sz.SetDim(d, 0)
		}
	}
	return sz
}
