// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for meshway.
//
// # Configuration File
//
// The config file is TOML, by default at ~/.meshway/config.toml:
//
//	[device]
//	node_id = 0x1a2b3c4d
//	channel = 0
//
//	[map]
//	style = "topo"
//	zoom = 13
//
//	[ui]
//	show_timestamps = true
//	max_width = 100
//
// # Environment Overrides
//
// MESHWAY_NODE_ID, MESHWAY_CHANNEL, MESHWAY_MAP_STYLE and MESHWAY_MAP_ZOOM
// override the corresponding file values.
//
// # Hot Reload
//
// Watcher observes the config file and delivers parsed updates through a
// callback, debounced against editor write bursts.
package config
