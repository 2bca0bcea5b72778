// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/shadow/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugSettingsRoundTrip(t *testing.T) {
	old := DebugSettings
	oldLevel := logx.UserLevel
	defer func() {
		DebugSettings = old
		logx.SetUserLevel(oldLevel)
	}()

	fn := filepath.Join(t.TempDir(), "debug.toml")
	DebugSettings = DebugSettingsData{
		LayoutTrace: true,
		CommitTrace: true,
		EventTrace:  false,
		LogLevel:    slog.LevelDebug,
	}
	require.NoError(t, SaveDebugSettings(fn))

	DebugSettings = DebugSettingsData{}
	require.NoError(t, LoadDebugSettings(fn))
	assert.True(t, DebugSettings.LayoutTrace)
	assert.True(t, DebugSettings.CommitTrace)
	assert.False(t, DebugSettings.EventTrace)
	assert.Equal(t, slog.LevelDebug, DebugSettings.LogLevel)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
}

func TestLoadDebugSettingsPartial(t *testing.T) {
	old := DebugSettings
	oldLevel := logx.UserLevel
	defer func() {
		DebugSettings = old
		logx.SetUserLevel(oldLevel)
	}()

	fn := filepath.Join(t.TempDir(), "debug.toml")
	require.NoError(t, os.WriteFile(fn, []byte("CommitTrace = true\n"), 0666))
	require.NoError(t, LoadDebugSettings(fn))
	assert.True(t, DebugSettings.CommitTrace)
	assert.False(t, DebugSettings.LayoutTrace)
	assert.Equal(t, oldLevel, DebugSettings.LogLevel)
}

func TestLoadDebugSettingsMissing(t *testing.T) {
	err := LoadDebugSettings(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
