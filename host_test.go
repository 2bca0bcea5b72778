// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"context"
	"testing"

	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRegistry(t *testing.T) {
	h := NewHost()
	a := NewRoot(Decl{Tag: 1, Kind: View})
	b := NewRoot(Decl{Tag: 1, Kind: View})

	require.NoError(t, h.AddRoot("main", a))
	require.NoError(t, h.AddRoot("palette", b))
	assert.Error(t, h.AddRoot("main", b))

	assert.Same(t, a, h.Root("main"))
	assert.Same(t, b, h.Root("palette"))
	assert.Nil(t, h.Root("missing"))
	assert.Equal(t, []*Root{a, b}, h.Roots())

	h.RemoveRoot("main")
	assert.Nil(t, h.Root("main"))
	assert.Equal(t, []*Root{b}, h.Roots())
	h.RemoveRoot("main") // removing twice is fine
}

func TestHostFlushAll(t *testing.T) {
	h := NewHost()
	for i, name := range []string{"a", "b", "c"} {
		rt := NewRoot(Decl{Tag: Tag(i + 1), Kind: View, Props: Props{Direction: layout.Column}})
		rt.SetViewport(math32.Vec2(100, 100))
		require.NoError(t, h.AddRoot(name, rt))
	}

	require.NoError(t, h.FlushAll(context.Background()))
	for _, rt := range h.Roots() {
		require.NotNil(t, rt.Current())
		assert.Equal(t, uint64(1), rt.Current().Number())
	}
}

func TestHostFlushAllCanceled(t *testing.T) {
	h := NewHost()
	rt := NewRoot(Decl{Tag: 1, Kind: View})
	rt.SetViewport(math32.Vec2(100, 100))
	require.NoError(t, h.AddRoot("main", rt))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, h.FlushAll(ctx))
}

func TestHostStartStopAll(t *testing.T) {
	h := NewHost()
	for i, name := range []string{"a", "b"} {
		rt := NewRoot(Decl{Tag: Tag(i + 1), Kind: View})
		require.NoError(t, h.AddRoot(name, rt))
	}
	h.StartAll()
	h.StopAll()
	for _, rt := range h.Roots() {
		assert.False(t, rt.running)
	}
}
