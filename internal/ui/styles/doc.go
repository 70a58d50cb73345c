// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the meshway TUI.
//
// The palette is a set of lipgloss.AdaptiveColor values that pick light or
// dark variants automatically. Theme bundles per-component lipgloss styles
// (bubbles, map, input, status bar) and detects terminal color capability
// through termenv at construction time.
//
// StatusIndicators supplies ASCII shape symbols used alongside color so
// delivery and status states stay distinguishable for colorblind users.
package styles
