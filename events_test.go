// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"testing"

	"cogentcore.org/shadow/math32"
	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(ScrollChange, func(e Event) { order = append(order, 1) })
	ls.Add(ScrollChange, func(e Event) { order = append(order, 2) })
	ls.Add(ContentSizeChange, func(e Event) { order = append(order, 3) })

	ls.Call(Event{Type: ScrollChange})
	assert.Equal(t, []int{1, 2}, order)

	ls.Call(Event{Type: ContentSizeChange})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestEmitterFIFO(t *testing.T) {
	em := newEmitter()
	var got []Event
	em.On(ScrollChange, func(e Event) { got = append(got, e) })
	em.On(ContentSizeChange, func(e Event) { got = append(got, e) })

	em.Emit(Event{Tag: 1, Type: ContentSizeChange, ContentSize: math32.Vec2(10, 20)})
	em.Emit(Event{Tag: 1, Type: ScrollChange, Offset: math32.Vec2(0, 5)})
	em.Emit(Event{Tag: 2, Type: ScrollChange, Offset: math32.Vec2(0, 7)})
	em.flush()

	assert.Len(t, got, 3)
	assert.Equal(t, ContentSizeChange, got[0].Type)
	assert.Equal(t, Tag(1), got[1].Tag)
	assert.Equal(t, Tag(2), got[2].Tag)
}

func TestEmitterRegisterDuringDelivery(t *testing.T) {
	em := newEmitter()
	var got []int
	registered := false
	em.On(ScrollChange, func(e Event) {
		got = append(got, 1)
		if !registered {
			registered = true
			em.On(ScrollChange, func(e Event) { got = append(got, 2) })
		}
	})

	// the listener added mid-delivery only sees the next flush
	em.Emit(Event{Type: ScrollChange})
	em.flush()
	assert.Equal(t, []int{1}, got)

	em.Emit(Event{Type: ScrollChange})
	em.flush()
	assert.Equal(t, []int{1, 1, 2}, got)
}

func TestEmitterNoListeners(t *testing.T) {
	em := newEmitter()
	em.Emit(Event{Tag: 1, Type: ScrollChange})
	em.flush() // events with no listeners are dropped

	var got []Event
	em.On(ScrollChange, func(e Event) { got = append(got, e) })
	em.flush()
	assert.Empty(t, got)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "ScrollChange", ScrollChange.String())
	assert.Equal(t, "ContentSizeChange", ContentSizeChange.String())
}
