// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
)

// scrollAxes returns which axes of the node are scrollable: the axes
// declared [OverflowScroll], or vertical for a [Scroll] node with
// none declared. Non-scroll nodes have no scrollable axes.
func (n *Node) scrollAxes() [2]bool {
	var axes [2]bool
	if n.kind != Scroll {
		return axes
	}
	any := false
	for d := math32.X; d <= math32.Y; d++ {
		if n.props.Overflow[d] == OverflowScroll {
			axes[d] = true
			any = true
		}
	}
	if !any {
		axes[math32.Y] = true
	}
	return axes
}

// ContentOriginOffset returns the translation to apply to the child
// rendering coordinate space of a scrollable node for its committed
// scroll offset. The translation is not baked into child metrics, so
// scroll position changes never require re-laying-out children.
// In right-to-left mode the horizontal origin edge flips: the offset
// is measured from the opposite edge, reversing the sign of the
// horizontal translation. Non-scrollable nodes return zero.
func (n *Node) ContentOriginOffset() math32.Vector2 {
	ss := n.ScrollState()
	if ss == nil {
		return math32.Vector2{}
	}
	org := ss.Offset.Negate()
	if ss.Direction == layout.RTL {
		org.X = ss.Offset.X
	}
	return org
}

// deriveScrollState computes the state a scroll container should
// commit for freshly derived geometry: the content bounding size
// (never smaller than the container), the scroll offset carried over
// from the committed state or the given gesture, re-clamped against
// the new content, and the pass direction. If nothing observable
// differs from the committed state, the committed state itself is
// returned, so that a no-op pass publishes nothing.
func deriveScrollState(committed *ScrollState, container, content math32.Vector2, dir layout.TextDirections, gesture *math32.Vector2) *ScrollState {
	content = content.Max(container)
	off := math32.Vector2{}
	if committed != nil {
		off = committed.Offset
	}
	if gesture != nil {
		off = *gesture
	}
	off = ClampOffset(off, content, container)
	cand := &ScrollState{ContentSize: content, Offset: off, Direction: dir}
	if committed != nil {
		if cand.equal(committed) {
			return committed
		}
		cand.Revision = committed.Revision + 1
	} else {
		cand.Revision = 1
	}
	return cand
}
