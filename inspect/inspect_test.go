// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cogentcore.org/shadow"
	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRevision returns a published revision with a scroll container
// (tag 2) holding overflowing content (tag 3).
func testRevision(t *testing.T) (*shadow.Root, *shadow.Revision) {
	t.Helper()
	rt := shadow.NewRoot(shadow.Decl{Tag: 1, Kind: shadow.View, Props: shadow.Props{Direction: layout.Column}})
	rt.SetViewport(math32.Vec2(100, 200))
	require.NoError(t, rt.SetChildren(1, []shadow.Decl{
		{Tag: 2, Kind: shadow.Scroll, Props: shadow.Props{Direction: layout.Column, Min: math32.Vec2(100, 200)}},
	}))
	require.NoError(t, rt.SetChildren(2, []shadow.Decl{
		{Tag: 3, Kind: shadow.View, Props: shadow.Props{Min: math32.Vec2(100, 500)}},
	}))
	rev := rt.Flush()
	require.NotNil(t, rev)
	return rt, rev
}

func TestSummarize(t *testing.T) {
	_, rev := testRevision(t)
	sum := Summarize(rev)

	assert.Equal(t, rev.Number(), sum.Number)
	require.Len(t, sum.Nodes, 3)
	assert.Equal(t, shadow.Tag(1), sum.Nodes[0].Tag)
	assert.Equal(t, "View", sum.Nodes[0].Kind)
	assert.Equal(t, "Scroll", sum.Nodes[1].Kind)

	require.NotNil(t, sum.Nodes[1].Scroll)
	assert.Equal(t, math32.Vec2(100, 500), sum.Nodes[1].Scroll.ContentSize)
	assert.Nil(t, sum.Nodes[0].Scroll)
	assert.Nil(t, sum.Nodes[2].Scroll)
}

func TestServerRoundTrip(t *testing.T) {
	_, rev := testRevision(t)
	sv := NewServer()
	hs := httptest.NewServer(sv)
	defer hs.Close()

	cl, err := Connect("ws" + strings.TrimPrefix(hs.URL, "http"))
	require.NoError(t, err)
	defer cl.Close()

	require.Eventually(t, func() bool { return sv.NumClients() == 1 }, 2*time.Second, 10*time.Millisecond)
	sv.Publish(rev)

	sum, err := cl.Next()
	require.NoError(t, err)
	assert.Equal(t, rev.Number(), sum.Number)
	require.Len(t, sum.Nodes, 3)
	assert.Equal(t, math32.Vec2(100, 200), sum.Nodes[1].Size)
	require.NotNil(t, sum.Nodes[1].Scroll)
	assert.Equal(t, math32.Vec2(100, 500), sum.Nodes[1].Scroll.ContentSize)
}

func TestServerWatch(t *testing.T) {
	rt, _ := testRevision(t)
	sv := NewServer()
	hs := httptest.NewServer(sv)
	defer hs.Close()

	// drain the revision buffered by the fixture flush so the
	// client sees only what it is watching for
	select {
	case <-rt.Updates():
	default:
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sv.Watch(ctx, rt)

	cl, err := Connect("ws" + strings.TrimPrefix(hs.URL, "http"))
	require.NoError(t, err)
	defer cl.Close()
	require.Eventually(t, func() bool { return sv.NumClients() == 1 }, 2*time.Second, 10*time.Millisecond)

	rt.ScrollTo(2, math32.Vec2(0, 400))
	rev := rt.Flush()
	require.NotNil(t, rev)

	sum, err := cl.Next()
	require.NoError(t, err)
	assert.Equal(t, rev.Number(), sum.Number)
	require.NotNil(t, sum.Nodes[1].Scroll)
	assert.Equal(t, math32.Vec2(0, 300), sum.Nodes[1].Scroll.Offset)
}

func TestClientConnectError(t *testing.T) {
	_, err := Connect("ws://127.0.0.1:1/nope")
	assert.Error(t, err)
}
