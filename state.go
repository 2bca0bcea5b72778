// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"fmt"

	"cogentcore.org/shadow/layout"
	"cogentcore.org/shadow/math32"
)

// State is engine-derived data attached to a node, produced by layout
// passes rather than declared by the host. A State value is immutable
// once attached: derivations replace the whole value, never merge
// fields from different passes.
type State interface {
	// StateRevision returns the monotonic revision counter of this
	// state within its node lineage.
	StateRevision() uint64
}

// ScrollState is the derived state of a [Scroll] node: the committed
// content geometry and scroll position that the rendering layer and
// the gesture system observe.
type ScrollState struct {
	// ContentSize is the bounding size of the laid-out children.
	// It is never smaller than the container itself.
	ContentSize math32.Vector2

	// Offset is the committed scroll position, always within
	// [0, max(0, ContentSize - container)] on each axis.
	Offset math32.Vector2

	// Direction is the content direction the state was derived under,
	// determining which edge scrolling originates from.
	Direction layout.TextDirections

	// Revision is the monotonic counter of state derivations for
	// this node lineage.
	Revision uint64
}

// StateRevision implements [State].
func (ss *ScrollState) StateRevision() uint64 { return ss.Revision }

func (ss *ScrollState) String() string {
	return fmt.Sprintf("content: %v, offset: %v, %v, rev: %d", ss.ContentSize, ss.Offset, ss.Direction, ss.Revision)
}

// equal reports whether the observable fields of the two states
// match, ignoring the revision counters.
func (ss *ScrollState) equal(other *ScrollState) bool {
	if other == nil {
		return false
	}
	return ss.ContentSize == other.ContentSize &&
		ss.Offset == other.Offset &&
		ss.Direction == other.Direction
}

// MaxOffset returns the maximum valid scroll offset for the given
// content and container sizes: max(0, content - container) per axis.
func MaxOffset(content, container math32.Vector2) math32.Vector2 {
	return content.Sub(container).Max(math32.Vector2{})
}

// ClampOffset returns the given offset clamped per axis to
// [0, [MaxOffset]] for the given content and container sizes.
func ClampOffset(off, content, container math32.Vector2) math32.Vector2 {
	off = layout.SanitizePoint(off)
	off.Clamp(math32.Vector2{}, MaxOffset(content, container))
	return off
}
