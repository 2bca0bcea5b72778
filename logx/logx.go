// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging configuration and helper functions
// on top of the standard log/slog, with colored output via termenv.
// The default user level is controlled by the debug and release
// build tags.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above it are shown. It defaults to [slog.LevelInfo],
// or [slog.LevelDebug] with the debug build tag, or [slog.LevelWarn]
// with the release build tag. It should typically be set through
// [SetUserLevel], which also updates the default logger.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// UseDefaults installs a default logger writing to [os.Stderr] with a
// colored [Handler] at [UserLevel]. It is called automatically when
// the package is initialized, and can be called again after changing
// [UserLevel] or [UseColor].
func UseDefaults() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

// SetUserLevel sets [UserLevel] and updates the default logger
// accordingly.
func SetUserLevel(level slog.Level) {
	UserLevel = level
	UseDefaults()
}

func init() {
	UseDefaults()
}
