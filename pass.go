// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"fmt"
	"slices"

	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
)

// passState carries the inputs and counters of one layout pass. A
// pass is a pure function of the base tree, the context, and the
// gesture offsets: it builds new nodes along changed paths and
// returns everything else shared with the base.
type passState struct {
	ctx      *layout.Context
	arranger layout.Arranger
	gestures map[Tag]math32.Vector2

	laid   int // nodes rebuilt with fresh geometry or state
	reused int // nodes returned unchanged from the base
}

// layoutTree lays out the whole tree from the given root against the
// context viewport, returning the resulting root and whether anything
// changed.
func (ps *passState) layoutTree(root *Node) (*Node, bool) {
	return ps.layoutNode(root, rootSize(root.props, ps.ctx.Viewport), math32.Vector2{})
}

// rootSize resolves the size of the root node: the viewport bounded
// below by the declared Min and above by Max.
func rootSize(p Props, viewport math32.Vector2) math32.Vector2 {
	sz := layout.SanitizeSize(viewport).Max(p.Min)
	for d := math32.X; d <= math32.Y; d++ {
		if mx := p.Max.Dim(d); mx > 0 {
			sz.SetDim(d, math32.Min(sz.Dim(d), mx))
		}
		if math32.IsInf(sz.Dim(d), 1) {
			sz.SetDim(d, 0)
		}
	}
	return sz
}

// layoutNode computes metrics for the node at the given assigned
// geometry, arranges and recurses into its children, and derives
// scroll state for scrollable containers. It returns the input node
// itself when nothing observable changed, preserving structural
// sharing with the base revision.
func (ps *passState) layoutNode(n *Node, size, pos math32.Vector2) (*Node, bool) {
	m := layout.Metrics{Pos: pos, Size: size}

	avail := size
	axes := n.scrollAxes()
	for d := math32.X; d <= math32.Y; d++ {
		if axes[d] {
			avail.SetDim(d, math32.Infinity)
		}
	}

	items := make([]layout.Item, len(n.children))
	for i, c := range n.children {
		items[i] = ps.item(c)
	}
	res := ps.arranger.Arrange(ps.ctx, n.props.box(), items, avail)
	if len(res.Items) != len(n.children) {
		panic(fmt.Sprintf("shadow: arranger returned %d item metrics for %d children of %v", len(res.Items), len(n.children), n))
	}

	children := n.children
	childChanged := false
	for i, c := range n.children {
		nc, ch := ps.layoutNode(c, res.Items[i].Size, res.Items[i].Pos)
		if ch {
			if !childChanged {
				children = slices.Clone(n.children)
				childChanged = true
			}
			children[i] = nc
		}
	}

	state := n.state
	if n.kind == Scroll {
		state = ps.scrollState(n, size, res)
	}

	changed := !n.sealed || n.dirty || m != n.metrics || childChanged || state != n.state
	if !changed {
		ps.reused++
		return n, false
	}
	out := n
	if n.sealed {
		out = n.clone()
	}
	out.children = children
	out.setState(state)
	out.setMetrics(m)
	ps.laid++
	return out, true
}

// scrollState derives the state a scroll container should commit from
// the arranged geometry of its children: the content extent including
// trailing padding, folded with any gesture offset for this node.
func (ps *passState) scrollState(n *Node, size math32.Vector2, res layout.Result) State {
	var content math32.Vector2
	if len(res.Items) > 0 {
		bb := math32.B2Empty()
		for _, im := range res.Items {
			bb.ExpandByBox(im.Bounds())
		}
		content = bb.Max.Add(math32.Vec2(n.props.Padding.Right, n.props.Padding.Bottom))
		content = content.Max(math32.Vector2{})
	}
	var gesture *math32.Vector2
	if g, ok := ps.gestures[n.tag]; ok {
		gesture = &g
	}
	return deriveScrollState(n.ScrollState(), size, content, ps.ctx.Direction, gesture)
}

// item returns the arranger's view of a child: declared bounds and
// growth, with content-driven intrinsic sizing for plain containers.
// Scrollable containers do not propagate their content size to the
// parent: their intrinsic size is their declared minimum.
func (ps *passState) item(n *Node) layout.Item {
	it := layout.Item{Min: n.props.Min, Max: n.props.Max, Grow: n.props.Grow}
	if n.kind == Scroll || len(n.children) == 0 {
		return it
	}
	it.Intrinsic = func(avail math32.Vector2) math32.Vector2 {
		return ps.measure(n, avail)
	}
	return it
}

// measure returns the content-driven size of a container given the
// available space, by arranging its children without committing
// anything.
func (ps *passState) measure(n *Node, avail math32.Vector2) math32.Vector2 {
	items := make([]layout.Item, len(n.children))
	for i, c := range n.children {
		items[i] = ps.item(c)
	}
	return ps.arranger.Arrange(ps.ctx, n.props.box(), items, avail).Size
}
