// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"cogentcore.org/shadow/base/queue"
	"cogentcore.org/shadow/math32"
)

// Types is the set of event types emitted by the engine toward the
// declarative layer.
type Types int32

const (
	// ScrollChange is sent when a commit changes the scroll offset
	// of a scrollable container.
	ScrollChange Types = iota

	// ContentSizeChange is sent when a commit changes the content
	// bounding size of a scrollable container.
	ContentSizeChange
)

func (t Types) String() string {
	switch t {
	case ScrollChange:
		return "ScrollChange"
	case ContentSizeChange:
		return "ContentSizeChange"
	}
	return "TypesN"
}

// Event is one notification from the engine about a committed change
// on a node. Events are snapshots: they carry the committed values,
// not references into the tree.
type Event struct {
	// Tag is the node the event is about.
	Tag Tag

	// Type is the kind of change.
	Type Types

	// Offset is the committed scroll offset.
	Offset math32.Vector2

	// ContentSize is the committed content bounding size.
	ContentSize math32.Vector2

	// Container is the committed size of the container itself.
	Container math32.Vector2

	// Revision is the number of the tree revision that produced the event.
	Revision uint64

	// Time is when the revision was published.
	Time time.Time
}

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured.
type Listeners map[Types][]func(ev Event)

// Init ensures that map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for given type.
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for given event, in the order they were
// added. Events are notifications, not requests: there is no handled
// flag and no way for a listener to consume an event.
func (ls *Listeners) Call(ev Event) {
	for _, fun := range (*ls)[ev.Type] {
		fun(ev)
	}
}

// Emitter delivers engine events to registered listeners. Emitting
// never blocks the engine: events go through a lock-free FIFO queue
// and are delivered after the commit that produced them, in emit
// order, on the goroutine running the commit. Listeners must not
// block; ordering is guaranteed between events for the same node and
// type.
type Emitter struct {
	queue queue.Queue[Event]
	mu    sync.RWMutex
	ls    Listeners
}

func newEmitter() *Emitter {
	em := &Emitter{}
	em.queue.Init()
	return em
}

// On registers a listener function for the given event type. A
// listener registered during a delivery receives only later events.
func (em *Emitter) On(typ Types, fun func(Event)) {
	em.mu.Lock()
	defer em.mu.Unlock()
	// the table is replaced, never mutated in place, so flush can
	// call into its snapshot outside the lock
	nls := Listeners{}
	for t, fs := range em.ls {
		nls[t] = slices.Clone(fs)
	}
	nls.Add(typ, fun)
	em.ls = nls
}

// Emit queues the given event for delivery. It is safe to call from
// any goroutine and never blocks.
func (em *Emitter) Emit(ev Event) {
	em.queue.Send(ev)
}

// flush delivers all queued events to listeners in FIFO order.
func (em *Emitter) flush() {
	for {
		ev, ok := em.queue.Next()
		if !ok {
			return
		}
		if DebugSettings.EventTrace {
			slog.Debug("event", "type", ev.Type, "tag", ev.Tag, "offset", ev.Offset, "content", ev.ContentSize, "revision", ev.Revision)
		}
		em.mu.RLock()
		ls := em.ls
		em.mu.RUnlock()
		ls.Call(ev)
	}
}
