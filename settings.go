// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/shadow/logx"
	"github.com/pelletier/go-toml/v2"
)

// DebugSettingsData is the data for engine debugging settings.
type DebugSettingsData struct {
	// LayoutTrace logs a summary of every layout pass.
	LayoutTrace bool

	// CommitTrace logs every published revision.
	CommitTrace bool

	// EventTrace logs every delivered event.
	EventTrace bool

	// LogLevel is the user log verbosity level.
	LogLevel slog.Level
}

// DebugSettings are the engine debugging settings. They can be
// loaded from a TOML file with [LoadDebugSettings]. Trace output
// goes through [slog.Debug], so [logx.UserLevel] must be at debug
// for it to be shown.
var DebugSettings = DebugSettingsData{LogLevel: logx.UserLevel}

// LoadDebugSettings sets [DebugSettings] from the given TOML file
// and applies the loaded log level.
func LoadDebugSettings(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	ds := DebugSettingsData{LogLevel: logx.UserLevel}
	if err := toml.Unmarshal(b, &ds); err != nil {
		return fmt.Errorf("loading debug settings from %q: %w", filename, err)
	}
	DebugSettings = ds
	logx.SetUserLevel(ds.LogLevel)
	return nil
}

// SaveDebugSettings writes the current [DebugSettings] to the given
// TOML file.
func SaveDebugSettings(filename string) error {
	b, err := toml.Marshal(&DebugSettings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
