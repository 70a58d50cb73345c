// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, uint32(0), cfg.Device.NodeID)
	assert.Equal(t, 0, cfg.Device.Channel)
	assert.Equal(t, "streets", cfg.Map.Style)
	assert.Equal(t, 13, cfg.Map.Zoom)
	assert.True(t, cfg.UI.ShowTimestamps)
	assert.Equal(t, 0, cfg.UI.MaxWidth)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[device]
node_id = 188935169
channel = 2

[map]
style = "topo"
zoom = 9

[ui]
show_timestamps = false
max_width = 100
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(188935169), cfg.Device.NodeID)
	assert.Equal(t, 2, cfg.Device.Channel)
	assert.Equal(t, "topo", cfg.Map.Style)
	assert.Equal(t, 9, cfg.Map.Zoom)
	assert.False(t, cfg.UI.ShowTimestamps)
	assert.Equal(t, 100, cfg.UI.MaxWidth)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[map]
style = "dark"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Map.Style)
	assert.Equal(t, 13, cfg.Map.Zoom)
	assert.True(t, cfg.UI.ShowTimestamps)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	// Implicit path: fall back to defaults.
	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, "streets", cfg.Map.Style)

	// Explicit path: the user asked for this file, so it is an error.
	_, err = Load(missing, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `[device` + "\n")
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[device]
node_id = 1
channel = 1

[map]
style = "streets"
zoom = 5
`)

	t.Setenv("MESHWAY_NODE_ID", "0x0b45ec01")
	t.Setenv("MESHWAY_CHANNEL", "3")
	t.Setenv("MESHWAY_MAP_STYLE", "satellite")
	t.Setenv("MESHWAY_MAP_ZOOM", "11")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(0x0b45ec01), cfg.Device.NodeID)
	assert.Equal(t, 3, cfg.Device.Channel)
	assert.Equal(t, "satellite", cfg.Map.Style)
	assert.Equal(t, 11, cfg.Map.Zoom)
}

func TestEnvOverrideBadValueIgnored(t *testing.T) {
	t.Setenv("MESHWAY_NODE_ID", "not-a-number")

	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), cfg.Device.NodeID)
}

func TestValidateChannelRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Device.Channel = 8
	assert.Error(t, cfg.Validate())

	cfg.Device.Channel = -1
	assert.Error(t, cfg.Validate())

	cfg.Device.Channel = 7
	assert.NoError(t, cfg.Validate())
}

func TestValidateMapStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Map.Style = "watercolor"
	assert.Error(t, cfg.Validate())

	for _, style := range MapStyles {
		cfg.Map.Style = style
		assert.NoError(t, cfg.Validate())
	}
}

func TestValidateClampsZoom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Map.Zoom = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Map.Zoom)

	cfg.Map.Zoom = 30
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 18, cfg.Map.Zoom)
}

func TestValidateClampsMaxWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.MaxWidth = -5
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.UI.MaxWidth)
}
