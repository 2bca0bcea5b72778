// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
)

// Decl declares one child in a [Root.SetChildren] plan. The plan is
// reconciled against the current children by [Tag]: existing nodes
// with a matching tag are updated in place, missing ones are created,
// and current children absent from the plan are removed.
type Decl struct {
	// Tag is the unique identity of the child.
	Tag Tag

	// Kind is the node kind. The kind of an existing node
	// cannot be changed; a mismatch removes the old node and
	// creates a new one (discarding any scroll state).
	Kind Kinds

	// Props are the declared properties for the child.
	Props Props
}

// Revision is one published, immutable snapshot of the tree.
// All of its nodes are sealed, so it can be read from any
// goroutine without locks, concurrently with later layout passes.
type Revision struct {
	number uint64
	time   time.Time
	root   *Node
	index  map[Tag]*Node
}

// Number is the sequence number of this revision. Numbers are
// strictly increasing across the revisions of one [Root].
func (r *Revision) Number() uint64 { return r.number }

// Time is the time at which this revision was published.
func (r *Revision) Time() time.Time { return r.time }

// Root is the root node of the snapshot.
func (r *Revision) Root() *Node { return r.root }

// Node returns the node with the given tag, or nil if no such
// node exists in this revision.
func (r *Revision) Node(tag Tag) *Node { return r.index[tag] }

// WalkDown calls the given function on every node in the snapshot
// in depth-first order, per [Node.WalkDown].
func (r *Revision) WalkDown(fun func(n *Node) bool) { r.root.WalkDown(fun) }

func (r *Revision) String() string {
	return fmt.Sprintf("revision %d (%d nodes)", r.number, len(r.index))
}

// pending accumulates input between flushes. Repeated updates to
// the same tag coalesce, keeping only the latest value.
type pending struct {
	props    map[Tag]Props
	children map[Tag][]Decl
	scrolls  map[Tag]math32.Vector2
	layout   bool
}

func (pd *pending) empty() bool {
	return len(pd.props) == 0 && len(pd.children) == 0 && len(pd.scrolls) == 0 && !pd.layout
}

// Root owns one shadow tree. Inputs arrive through [Root.ApplyProps],
// [Root.SetChildren], and [Root.ScrollTo] from any goroutine; each
// [Root.Flush] drains everything accumulated so far, runs one layout
// pass, and atomically publishes the result as a new [Revision].
// [Root.Start] runs flushes on a background goroutine instead.
type Root struct {
	// current is the most recently published revision. It is nil
	// until the first flush commits.
	current atomic.Pointer[Revision]

	// mu guards the pending input and the layout context.
	mu       sync.Mutex
	pd       pending
	ctx      layout.Context
	arranger layout.Arranger
	running  bool
	stop     chan struct{}
	done     chan struct{}

	// flushMu serializes flush cycles.
	flushMu sync.Mutex

	// wake signals the worker that input is pending.
	wake chan struct{}

	// updates carries published revisions to [Root.Updates].
	updates chan *Revision

	emitter *Emitter

	// seed is the initial root node, used until the first flush.
	seed *Node
}

// NewRoot returns a new [Root] whose tree consists of the single
// given root node declaration. Nothing is published until the
// first flush; [Root.Current] returns nil before that.
func NewRoot(root Decl) *Root {
	rp := root.Props.Clone()
	rp.sanitize()
	seed := newNode(root.Tag, root.Kind, rp)
	seed.seal()
	ctx := layout.Context{}
	ctx.Defaults()
	rt := &Root{
		ctx:      ctx,
		arranger: &layout.Stack{},
		wake:     make(chan struct{}, 1),
		updates:  make(chan *Revision, 1),
		emitter:  newEmitter(),
		seed:     seed,
	}
	rt.pd.layout = true
	return rt
}

// ApplyProps stages new properties for the node with the given tag.
// The props are deep copied, so the caller can keep mutating its
// copy. Repeated calls for one tag coalesce, keeping the latest.
func (rt *Root) ApplyProps(tag Tag, p Props) {
	p = p.Clone()
	p.sanitize()
	rt.mu.Lock()
	if rt.pd.props == nil {
		rt.pd.props = map[Tag]Props{}
	}
	rt.pd.props[tag] = p
	rt.mu.Unlock()
	rt.signal()
}

// SetChildren stages the full child plan for the node with the given
// tag, replacing its current children on the next flush. It returns
// an error if the plan contains duplicate tags. Tags must be unique
// across the whole tree, not just within one plan: a collision
// between the plans of different parents is only detectable once the
// cycle is applied, so the flush logs it as an error and resolves
// lookups to the first node in tree order.
func (rt *Root) SetChildren(tag Tag, plan []Decl) error {
	seen := map[Tag]bool{}
	for _, d := range plan {
		if seen[d.Tag] {
			return fmt.Errorf("shadow: duplicate child tag %v in plan for %v", d.Tag, tag)
		}
		seen[d.Tag] = true
	}
	plan = slices.Clone(plan)
	for i := range plan {
		plan[i].Props = plan[i].Props.Clone()
		plan[i].Props.sanitize()
	}
	rt.mu.Lock()
	if rt.pd.children == nil {
		rt.pd.children = map[Tag][]Decl{}
	}
	rt.pd.children[tag] = plan
	rt.mu.Unlock()
	rt.signal()
	return nil
}

// ScrollTo stages a scroll offset for the scroll node with the given
// tag. The offset is clamped against the content bounds computed by
// the flush that consumes it, so an offset staged concurrently with
// a content change is clamped against the new content, not the old.
func (rt *Root) ScrollTo(tag Tag, offset math32.Vector2) {
	offset = layout.SanitizePoint(offset)
	rt.mu.Lock()
	if rt.pd.scrolls == nil {
		rt.pd.scrolls = map[Tag]math32.Vector2{}
	}
	rt.pd.scrolls[tag] = offset
	rt.mu.Unlock()
	rt.signal()
}

// NeedsLayout requests a layout pass on the next flush even if no
// other input is pending.
func (rt *Root) NeedsLayout() {
	rt.mu.Lock()
	rt.pd.layout = true
	rt.mu.Unlock()
	rt.signal()
}

// SetViewport sets the viewport size available to the root node.
func (rt *Root) SetViewport(size math32.Vector2) {
	rt.mu.Lock()
	rt.ctx.Viewport = size
	rt.pd.layout = true
	rt.mu.Unlock()
	rt.signal()
}

// SetDPI sets the display resolution, in dots per inch.
func (rt *Root) SetDPI(dpi float32) {
	rt.mu.Lock()
	rt.ctx.DPI = dpi
	rt.pd.layout = true
	rt.mu.Unlock()
	rt.signal()
}

// SetDirection sets the text direction. Scroll nodes re-derive
// their origin mapping on the next flush, preserving their current
// scroll offsets.
func (rt *Root) SetDirection(d layout.TextDirections) {
	rt.mu.Lock()
	rt.ctx.Direction = d
	rt.pd.layout = true
	rt.mu.Unlock()
	rt.signal()
}

// SetArranger sets the [layout.Arranger] used to arrange children.
// A nil arranger is ignored. The default is [layout.Stack].
func (rt *Root) SetArranger(a layout.Arranger) {
	if a == nil {
		return
	}
	rt.mu.Lock()
	rt.arranger = a
	rt.pd.layout = true
	rt.mu.Unlock()
	rt.signal()
}

// Current returns the most recently published [Revision], or nil if
// nothing has been published yet. It never blocks and can be called
// from any goroutine.
func (rt *Root) Current() *Revision {
	return rt.current.Load()
}

// Updates returns a channel that receives published revisions.
// The channel holds only the latest revision: if the receiver
// falls behind, intermediate revisions are dropped.
func (rt *Root) Updates() <-chan *Revision {
	return rt.updates
}

// On registers a listener for the given event type. Listeners are
// called in registration order, after each flush that produced
// events, on the flushing goroutine.
func (rt *Root) On(typ Types, fun func(e Event)) {
	rt.emitter.On(typ, fun)
}

// Start launches a background worker that flushes whenever input is
// pending. It does nothing if the worker is already running.
func (rt *Root) Start() {
	rt.mu.Lock()
	if rt.running {
		rt.mu.Unlock()
		return
	}
	rt.running = true
	rt.stop = make(chan struct{})
	rt.done = make(chan struct{})
	stop, done := rt.stop, rt.done
	if !rt.pd.empty() {
		rt.signal()
	}
	rt.mu.Unlock()
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case <-rt.wake:
				rt.Flush()
			}
		}
	}()
}

// Stop stops the background worker and waits for any in-progress
// flush to finish. Staged input is kept for the next flush.
func (rt *Root) Stop() {
	rt.mu.Lock()
	if !rt.running {
		rt.mu.Unlock()
		return
	}
	rt.running = false
	stop, done := rt.stop, rt.done
	rt.mu.Unlock()
	close(stop)
	<-done
}

// signal wakes the worker without blocking. The channel holds one
// token, so repeated signals while a flush is in progress coalesce
// into a single following flush.
func (rt *Root) signal() {
	select {
	case rt.wake <- struct{}{}:
	default:
	}
}
