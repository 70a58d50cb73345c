// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the meshway TUI.
//
// Components are pure view objects: each holds display inputs plus a
// *styles.Theme, and View() returns a styled string. None of them owns
// mutable application state; identical inputs render identical output.
//
// # Components
//
//   - MessageBubble / MessageList: chat message bubbles. Self-sent
//     messages render right-aligned with a delivery status line; peer
//     messages left-aligned without one. Waypoint messages embed a
//     MapView preview and the "show on map" affordance.
//   - MapView: schematic map box with graticule and projected waypoint
//     markers, used both as the in-bubble preview and the full map screen.
//   - Header, StatusBar: screen chrome.
//
// The pure resolution logic the bubbles build on lives in format.go:
// AckText (delivery state to display text), FormatUsername (sender
// classification and label fallback), FormatTime and FormatCoords.
package components
