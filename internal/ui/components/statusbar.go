// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the meshway TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meshway/meshway-tui/internal/ui/styles"
	"github.com/meshway/meshway-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the device link state shown in the status bar.
type Status int

const (
	StatusConnected Status = iota
	StatusConnecting
	StatusOffline
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "Connected"
	case StatusConnecting:
		return "Connecting..."
	case StatusOffline:
		return "Offline"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status.
// Distinct shapes alongside colors keep states apart for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusConnected:
		return styles.StatusIndicators.Active
	case StatusConnecting:
		return styles.StatusIndicators.Pending
	case StatusOffline:
		return "-"
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// Shortcut is one key hint on the right side of the bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom status line.
type StatusBar struct {
	Status    Status
	NodeCount int
	Shortcuts []Shortcut
	Width     int

	theme *styles.Theme
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// View renders the status bar.
func (sb *StatusBar) View() string {
	left := sb.Status.Icon() + " " + sb.Status.String()
	if sb.NodeCount > 0 {
		left += "  " + util.Itoa(sb.NodeCount) + " nodes"
	}

	var hints []string
	for _, s := range sb.Shortcuts {
		hints = append(hints,
			sb.theme.ShortcutKey.Render(s.Key)+" "+sb.theme.ShortcutDesc.Render(s.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := sb.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		right = ""
	}

	line := left + strings.Repeat(" ", gap) + right
	return sb.theme.StatusBar.Width(sb.Width).Render(line)
}
