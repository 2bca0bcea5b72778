// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Host manages a set of named [Root] trees, typically one per
// window or surface. All methods can be called from any goroutine.
type Host struct {
	mu    sync.RWMutex
	roots map[string]*Root
	order []string
}

// NewHost returns a new empty [Host].
func NewHost() *Host {
	return &Host{roots: map[string]*Root{}}
}

// AddRoot registers the given root under the given name. It returns
// an error if the name is already registered.
func (h *Host) AddRoot(name string, rt *Root) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.roots[name]; ok {
		return fmt.Errorf("shadow: root %q already registered", name)
	}
	h.roots[name] = rt
	h.order = append(h.order, name)
	return nil
}

// Root returns the root registered under the given name, or nil.
func (h *Host) Root(name string) *Root {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.roots[name]
}

// Roots returns all registered roots, in registration order.
func (h *Host) Roots() []*Root {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rts := make([]*Root, 0, len(h.order))
	for _, name := range h.order {
		rts = append(rts, h.roots[name])
	}
	return rts
}

// RemoveRoot removes the root registered under the given name.
// It does not stop the root's worker.
func (h *Host) RemoveRoot(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.roots[name]; !ok {
		return
	}
	delete(h.roots, name)
	for i, nm := range h.order {
		if nm == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// FlushAll flushes every registered root, each on its own goroutine,
// and waits for all of them. It returns the context error if the
// context is canceled before all flushes start.
func (h *Host) FlushAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, rt := range h.Roots() {
		rt := rt
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rt.Flush()
			return nil
		})
	}
	return g.Wait()
}

// StartAll starts the background worker of every registered root.
func (h *Host) StartAll() {
	for _, rt := range h.Roots() {
		rt.Start()
	}
}

// StopAll stops the background worker of every registered root.
func (h *Host) StopAll() {
	for _, rt := range h.Roots() {
		rt.Stop()
	}
}
