// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that prints compact log messages, with
// the level colored by severity when [UseColor] is on.
type Handler struct {
	opts  slog.HandlerOptions
	prof  termenv.Profile
	group string
	attrs string
	mu    *sync.Mutex
	w     io.Writer
}

// NewHandler makes a new [Handler] writing to the given writer with
// the given options, which may be nil for the defaults.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{w: w, mu: &sync.Mutex{}, prof: termenv.EnvColorProfile()}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = UserLevel
	}
	return h
}

// Enabled implements [slog.Handler.Enabled].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle implements [slog.Handler.Handle].
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, "15:04:05")
		buf = append(buf, ' ')
	}
	buf = append(buf, h.levelString(r.Level)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// WithAttrs implements [slog.Handler.WithAttrs].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	buf := []byte(nh.attrs)
	for _, a := range attrs {
		buf = nh.appendAttr(buf, a)
	}
	nh.attrs = string(buf)
	return &nh
}

// WithGroup implements [slog.Handler.WithGroup].
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.group = nh.group + name + "."
	return &nh
}

func (h *Handler) appendAttr(buf []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := h.group
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = append(buf, ' ')
			buf = append(buf, prefix...)
			buf = append(buf, ga.Key...)
			buf = append(buf, '=')
			buf = append(buf, ga.Value.String()...)
		}
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, h.group...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	buf = append(buf, a.Value.String()...)
	return buf
}

// levelString returns the display form of the given level,
// colored by severity when [UseColor] is on.
func (h *Handler) levelString(level slog.Level) string {
	s := level.String()
	if !UseColor {
		return s
	}
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = h.prof.Color("1")
	case level >= slog.LevelWarn:
		c = h.prof.Color("3")
	case level >= slog.LevelInfo:
		c = h.prof.Color("2")
	default:
		c = h.prof.Color("6")
	}
	return termenv.String(s).Foreground(c).Bold().String()
}
