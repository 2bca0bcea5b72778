// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shadow implements a tree of immutable UI node snapshots
// with cached layout metrics, maintained off the main thread by a
// coalescing layout scheduler and published to readers through an
// atomic commit protocol. Scrollable containers derive committed
// content geometry and scroll position through the same commit path,
// so gesture driven offset updates and structural layout changes
// always converge on one consistent [Revision].
//
// A [Root] owns one tree. Hosts feed it declared updates
// ([Root.ApplyProps], [Root.SetChildren]), viewport and context
// changes, and raw scroll gestures ([Root.ScrollTo]); the engine
// folds everything into new revisions, which readers obtain without
// blocking via [Root.Current] or [Root.Updates].
package shadow

import (
	"fmt"

	"cogentcore.org/shadow/layout"
)

// Tag is the stable identity of a logical node across revisions.
// Snapshots of the same node in different revisions share a Tag.
// Tags must be unique within a tree.
type Tag int64

// Kinds is the set of node kinds. The set is closed: node behavior
// is selected by kind, not by subclassing.
type Kinds int32

const (
	// View is a plain container that stacks its children.
	View Kinds = iota

	// Scroll is a scrollable container that derives committed scroll
	// geometry ([ScrollState]) from the layout of its children.
	Scroll
)

func (k Kinds) String() string {
	switch k {
	case View:
		return "View"
	case Scroll:
		return "Scroll"
	}
	return "KindsN"
}

// Continue and Break are the semantic return values of a
// [Node.WalkDown] function: whether to continue descending
// into the children of the current node.
const (
	Continue = true
	Break    = false
)

// Node is one immutable snapshot of a logical UI node. A node under
// construction belongs exclusively to the commit cycle building it;
// once its revision is published, the node is sealed and any further
// mutation panics. Reads never require locking.
type Node struct {
	tag      Tag
	kind     Kinds
	props    Props
	state    State
	children []*Node
	metrics  layout.Metrics
	dirty    bool
	sealed   bool
}

// newNode returns a new unsealed node with the given identity and
// declared props, taking ownership of the props.
func newNode(tag Tag, kind Kinds, props Props) *Node {
	return &Node{tag: tag, kind: kind, props: props, dirty: true}
}

// Tag returns the stable identity of the node.
func (n *Node) Tag() Tag { return n.tag }

// Kind returns the kind of the node.
func (n *Node) Kind() Kinds { return n.kind }

// Props returns the declared attributes of the node.
// The result must be treated as read-only.
func (n *Node) Props() Props { return n.props }

// State returns the engine-derived state of the node, or nil if the
// node has none.
func (n *Node) State() State { return n.state }

// ScrollState returns the derived scroll state of the node, or nil
// if the node is not a scrollable container or has not been laid
// out yet.
func (n *Node) ScrollState() *ScrollState {
	ss, _ := n.state.(*ScrollState)
	return ss
}

// Children returns the children of the node, in order.
// The result must be treated as read-only.
func (n *Node) Children() []*Node { return n.children }

// Metrics returns the layout metrics computed for the node by the
// most recent layout pass that touched it.
func (n *Node) Metrics() layout.Metrics { return n.metrics }

// Dirty reports whether the metrics of the node are out of date
// with respect to its props, state, or children.
func (n *Node) Dirty() bool { return n.dirty }

func (n *Node) String() string {
	return fmt.Sprintf("%v(%d)", n.kind, n.tag)
}

// WalkDown calls the given function on the node and then each of its
// children recursively in depth-first order, stopping descent into a
// node's children if the function returns [Break].
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range n.children {
		c.WalkDown(fun)
	}
}

// clone returns an unsealed copy of the node sharing its children.
func (n *Node) clone() *Node {
	nc := *n
	nc.sealed = false
	nc.children = make([]*Node, len(n.children))
	copy(nc.children, n.children)
	return &nc
}

// seal marks the node and everything below it immutable. Subtrees
// shared from prior revisions are already sealed and are not
// descended into.
func (n *Node) seal() {
	if n.sealed {
		return
	}
	n.sealed = true
	for _, c := range n.children {
		c.seal()
	}
}

// mustMutable panics if the node has been sealed by a published
// revision.
func (n *Node) mustMutable() {
	if n.sealed {
		panic(fmt.Sprintf("shadow: mutation of sealed node %v", n))
	}
}

// setMetrics records the given metrics on the node and marks them up
// to date. The node must not be sealed.
func (n *Node) setMetrics(m layout.Metrics) {
	n.mustMutable()
	n.metrics = m
	n.dirty = false
}

// setState replaces the derived state of the node. The node must not
// be sealed.
func (n *Node) setState(st State) {
	n.mustMutable()
	n.state = st
}

// index adds the node and everything below it to the given tag map.
func (n *Node) index(m map[Tag]*Node) {
	m[n.tag] = n
	for _, c := range n.children {
		c.index(m)
	}
}
