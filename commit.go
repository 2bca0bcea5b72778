// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"log/slog"
	"time"

	"cogentcore.org/shadow/math32"
)

// Flush drains all input staged since the previous flush, applies it
// to the current tree, runs one layout pass, and atomically publishes
// the result as a new [Revision]. It returns the published revision,
// or nil if the staged input produced no observable change (in which
// case nothing is published and [Root.Current] is unchanged).
// Flush can be called from any goroutine; concurrent calls are
// serialized.
func (rt *Root) Flush() *Revision {
	rt.flushMu.Lock()
	defer rt.flushMu.Unlock()

	rt.mu.Lock()
	pd := rt.pd
	rt.pd = pending{}
	ctx := rt.ctx
	arr := rt.arranger
	rt.mu.Unlock()

	if pd.empty() {
		return nil
	}

	for {
		base := rt.current.Load()
		broot := rt.seed
		if base != nil {
			broot = base.root
		}

		root := applyUpdates(broot, &pd)
		gestures := rt.gestureTargets(root, pd.scrolls)
		if base != nil && root == broot && len(gestures) == 0 && !pd.layout {
			return nil
		}

		ps := &passState{ctx: &ctx, arranger: arr, gestures: gestures}
		out, changed := ps.layoutTree(root)
		if base != nil && !changed && root == broot {
			return nil
		}
		out.seal()

		rev := rt.newRevision(base, out)
		if !rt.current.CompareAndSwap(base, rev) {
			continue
		}

		if DebugSettings.LayoutTrace {
			slog.Debug("shadow: layout pass", "revision", rev.number, "laid", ps.laid, "reused", ps.reused)
		}
		if DebugSettings.CommitTrace {
			slog.Debug("shadow: commit", "revision", rev.number, "nodes", len(rev.index), "time", rev.time)
		}

		rt.publish(rev)
		rt.emitDiff(base, rev)
		rt.emitter.flush()
		return rev
	}
}

// newRevision makes the revision for the given sealed root, numbered
// after prev. A tag appearing more than once in the tree is a host
// error: it is logged, and lookups resolve to the first node in tree
// order.
func (rt *Root) newRevision(prev *Revision, root *Node) *Revision {
	num := uint64(1)
	if prev != nil {
		num = prev.number + 1
	}
	index := map[Tag]*Node{}
	root.WalkDown(func(n *Node) bool {
		if _, ok := index[n.tag]; ok {
			slog.Error("shadow: duplicate tag in committed tree", "tag", n.tag)
			return Continue
		}
		index[n.tag] = n
		return Continue
	})
	return &Revision{number: num, time: time.Now(), root: root, index: index}
}

// publish delivers the revision to the updates channel, dropping
// the previously buffered revision if the receiver has not taken it.
func (rt *Root) publish(rev *Revision) {
	for {
		select {
		case rt.updates <- rev:
			return
		default:
		}
		select {
		case <-rt.updates:
		default:
		}
	}
}

// gestureTargets resolves staged scroll offsets against the updated
// tree, dropping those whose target is missing, not scrollable, or
// has scrolling disabled.
func (rt *Root) gestureTargets(root *Node, scrolls map[Tag]math32.Vector2) map[Tag]math32.Vector2 {
	if len(scrolls) == 0 {
		return nil
	}
	index := map[Tag]*Node{}
	root.index(index)
	gestures := map[Tag]math32.Vector2{}
	for tag, off := range scrolls {
		n := index[tag]
		switch {
		case n == nil:
			slog.Debug("shadow: scroll offset for unknown tag", "tag", tag)
		case n.kind != Scroll:
			slog.Debug("shadow: scroll offset for non-scroll node", "node", n)
		case n.props.ScrollDisabled:
			slog.Debug("shadow: scroll offset for disabled node", "node", n)
		default:
			gestures[tag] = off
		}
	}
	return gestures
}

// applyUpdates applies the staged prop and child plan updates to the
// tree rooted at base, returning the updated root. Nodes are copied
// on write, so untouched subtrees are shared with base, and base
// itself is returned when nothing changed. Updates addressed to tags
// not present in the tree are dropped with a debug log.
func applyUpdates(base *Node, pd *pending) *Node {
	if len(pd.props) == 0 && len(pd.children) == 0 {
		return base
	}
	usedProps := map[Tag]bool{}
	usedPlans := map[Tag]bool{}
	root := applyNode(base, pd, usedProps, usedPlans)
	for tag := range pd.props {
		if !usedProps[tag] {
			slog.Debug("shadow: props for unknown tag", "tag", tag)
		}
	}
	for tag := range pd.children {
		if !usedPlans[tag] {
			slog.Debug("shadow: children for unknown tag", "tag", tag)
		}
	}
	return root
}

// applyNode applies pending updates to one node and its subtree.
func applyNode(n *Node, pd *pending, usedProps, usedPlans map[Tag]bool) *Node {
	out := n
	plan, hasPlan := pd.children[n.tag]
	if hasPlan && usedPlans[n.tag] {
		// tags must be unique within the tree, so a second
		// encounter means a duplicate or a plan cycle
		slog.Debug("shadow: children plan already applied", "tag", n.tag)
		hasPlan = false
	}
	if hasPlan {
		usedPlans[n.tag] = true
		kids := reconcileChildren(n.children, plan, pd, usedProps, usedPlans)
		if !sameNodes(kids, out.children) {
			out = mutable(out)
			out.children = kids
		}
	} else if len(n.children) > 0 {
		var kids []*Node
		for i, c := range n.children {
			nc := applyNode(c, pd, usedProps, usedPlans)
			if nc != c && kids == nil {
				kids = make([]*Node, len(n.children))
				copy(kids, n.children[:i])
			}
			if kids != nil {
				kids[i] = nc
			}
		}
		if kids != nil {
			out = mutable(out)
			out.children = kids
		}
	}
	if p, ok := pd.props[n.tag]; ok {
		usedProps[n.tag] = true
		if !propsEqual(p, out.props) {
			out = mutable(out)
			out.props = p
		}
	}
	return out
}

// reconcileChildren builds the new child list for a plan, reusing
// existing children whose tag and kind match their declaration.
func reconcileChildren(old []*Node, plan []Decl, pd *pending, usedProps, usedPlans map[Tag]bool) []*Node {
	byTag := map[Tag]*Node{}
	for _, c := range old {
		byTag[c.tag] = c
	}
	kids := make([]*Node, 0, len(plan))
	for _, d := range plan {
		c := byTag[d.Tag]
		if c != nil && c.kind == d.Kind {
			if !propsEqual(d.Props, c.props) {
				nc := mutable(c)
				nc.props = d.Props
				c = nc
			}
			c = applyNode(c, pd, usedProps, usedPlans)
		} else {
			c = newNode(d.Tag, d.Kind, d.Props)
			c = applyNode(c, pd, usedProps, usedPlans)
		}
		kids = append(kids, c)
	}
	return kids
}

// mutable returns n if it is already an unsealed working copy, and
// a fresh unsealed clone of it otherwise.
func mutable(n *Node) *Node {
	if n.sealed {
		return n.clone()
	}
	return n
}

// sameNodes reports whether the two child lists contain the same
// nodes in the same order.
func sameNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// emitDiff emits scroll events for every scroll node whose state
// changed between the two revisions, in tree order.
func (rt *Root) emitDiff(base *Revision, rev *Revision) {
	rev.WalkDown(func(n *Node) bool {
		ss := n.ScrollState()
		if ss == nil {
			return Continue
		}
		var old *ScrollState
		if base != nil {
			if on := base.Node(n.tag); on != nil {
				old = on.ScrollState()
			}
		}
		if old == ss {
			return Continue
		}
		if old == nil || old.ContentSize != ss.ContentSize {
			if old != nil || ss.ContentSize != n.metrics.Size {
				rt.emitter.Emit(Event{
					Tag:         n.tag,
					Type:        ContentSizeChange,
					Offset:      ss.Offset,
					ContentSize: ss.ContentSize,
					Container:   n.metrics.Size,
					Revision:    rev.number,
					Time:        rev.time,
				})
			}
		}
		if old == nil || old.Offset != ss.Offset {
			if old != nil || ss.Offset != (math32.Vector2{}) {
				rt.emitter.Emit(Event{
					Tag:         n.tag,
					Type:        ScrollChange,
					Offset:      ss.Offset,
					ContentSize: ss.ContentSize,
					Container:   n.metrics.Size,
					Revision:    rev.number,
					Time:        rev.time,
				})
			}
		}
		return Continue
	})
}
