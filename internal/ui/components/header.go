// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the meshway TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/meshway/meshway-tui/internal/ui/styles"
	"github.com/meshway/meshway-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header renders the one-line screen header: app name, screen title and
// a right-aligned detail (channel name, node count, ...).
type Header struct {
	Title  string
	Detail string
	Width  int

	theme *styles.Theme
}

// NewHeader creates a new Header.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{Width: 80, theme: theme}
}

// View renders the header line.
func (h *Header) View() string {
	brand := h.theme.HeaderTitle.Render("meshway")
	title := h.theme.HeaderSubtitle.Render(h.Title)
	left := brand + " " + title

	detail := h.theme.HeaderSubtitle.Render(h.Detail)

	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(detail) - 2
	if gap < 1 {
		gap = 1
		detail = h.theme.HeaderSubtitle.Render(
			util.TruncateWidth(h.Detail, maxIntZero(h.Width-lipgloss.Width(left)-3)))
	}

	line := left + lipgloss.NewStyle().Width(gap).Render("") + detail
	return h.theme.Header.Width(h.Width).Render(line)
}

func maxIntZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
