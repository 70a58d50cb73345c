// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for meshway.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides.
//
// Configuration file locations (in order of precedence):
//   - path given on the command line
//   - ~/.meshway/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete meshway configuration.
type Config struct {
	// Device settings (the locally-connected radio)
	Device DeviceConfig `toml:"device"`

	// Map settings
	Map MapConfig `toml:"map"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// DeviceConfig identifies the locally-connected device.
type DeviceConfig struct {
	// NodeID is the node number of the connected radio. Messages whose
	// sender matches this id render as self-sent.
	NodeID uint32 `toml:"node_id"`

	// Channel is the channel slot to open on startup (0 is primary).
	Channel int `toml:"channel"`
}

// MapConfig contains the map style configuration.
type MapConfig struct {
	// Style is the named map style: "streets", "topo", "satellite", "dark".
	Style string `toml:"style"`

	// Zoom is the initial zoom level for waypoint previews (1-18).
	Zoom int `toml:"zoom"`
}

// UIConfig contains look-and-feel settings.
type UIConfig struct {
	// ShowTimestamps toggles the time next to the sender label.
	ShowTimestamps bool `toml:"show_timestamps"`

	// MaxWidth caps the rendered width of the chat column (0 = terminal width).
	MaxWidth int `toml:"max_width"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// MapStyles are the recognized map style names.
var MapStyles = []string{"streets", "topo", "satellite", "dark"}

const (
	defaultStyle = "streets"
	defaultZoom  = 13

	minZoom = 1
	maxZoom = 18
)

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			NodeID:  0,
			Channel: 0,
		},
		Map: MapConfig{
			Style: defaultStyle,
			Zoom:  defaultZoom,
		},
		UI: UIConfig{
			ShowTimestamps: true,
			MaxWidth:       0,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meshway", "config.toml")
}

// =============================================================================
// LOADING
// =============================================================================

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Load reads the config at path, applies env overrides and validates.
// A missing file is not an error: defaults are used, env overrides still
// apply, and ErrNotFound is wrapped only when path was given explicitly.
func Load(path string, explicit bool) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
		case os.IsNotExist(err):
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
		default:
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies overrides from the environment:
//   - MESHWAY_NODE_ID: overrides device.node_id
//   - MESHWAY_CHANNEL: overrides device.channel
//   - MESHWAY_MAP_STYLE: overrides map.style
//   - MESHWAY_MAP_ZOOM: overrides map.zoom
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MESHWAY_NODE_ID"); v != "" {
		if id, err := strconv.ParseUint(v, 0, 32); err == nil {
			c.Device.NodeID = uint32(id)
		}
	}
	if v := os.Getenv("MESHWAY_CHANNEL"); v != "" {
		if ch, err := strconv.Atoi(v); err == nil {
			c.Device.Channel = ch
		}
	}
	if v := os.Getenv("MESHWAY_MAP_STYLE"); v != "" {
		c.Map.Style = v
	}
	if v := os.Getenv("MESHWAY_MAP_ZOOM"); v != "" {
		if z, err := strconv.Atoi(v); err == nil {
			c.Map.Zoom = z
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks field values, clamping where a bad value has an obvious
// nearest-valid interpretation and erroring where it does not.
func (c *Config) Validate() error {
	if c.Device.Channel < 0 || c.Device.Channel > 7 {
		return fmt.Errorf("device.channel must be 0-7, got %d", c.Device.Channel)
	}

	if !validStyle(c.Map.Style) {
		return fmt.Errorf("map.style must be one of %v, got %q", MapStyles, c.Map.Style)
	}

	// Zoom clamps rather than errors: an out-of-range zoom still has a
	// sensible reading.
	if c.Map.Zoom < minZoom {
		c.Map.Zoom = minZoom
	}
	if c.Map.Zoom > maxZoom {
		c.Map.Zoom = maxZoom
	}

	if c.UI.MaxWidth < 0 {
		c.UI.MaxWidth = 0
	}

	return nil
}

func validStyle(style string) bool {
	for _, s := range MapStyles {
		if s == style {
			return true
		}
	}
	return false
}
