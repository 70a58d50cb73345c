// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string and width helpers for the meshway TUI.
//
// All helpers are display-width aware (via go-runewidth) so layout math
// stays correct for CJK and other double-width characters.
package util
