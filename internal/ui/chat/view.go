// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the channel chat screen for the TUI.
//
// This file contains the rendering for the chat screen: header, message
// viewport, input box and status bar, stacked to exactly the terminal
// height.
package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/meshway/meshway-tui/internal/ui/components"
	"github.com/meshway/meshway-tui/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	input := m.renderInput()
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		input,
		status,
	)
}

func (m Model) renderHeader() string {
	ch := m.st.Channel(m.channel)
	name := ch.Name
	if name == "" {
		name = "Channel " + util.Itoa(m.channel)
	}

	h := components.NewHeader(m.theme)
	h.Title = name
	h.Detail = util.Itoa(len(ch.Messages)) + " messages"
	h.Width = m.width
	return h.View()
}

func (m Model) renderInput() string {
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

func (m Model) renderStatusBar() string {
	sb := components.NewStatusBar(m.theme)
	sb.Status = m.status
	sb.NodeCount = len(m.st.Nodes())
	sb.Width = m.width
	for _, b := range m.keyMap.ShortHelp() {
		sb.Shortcuts = append(sb.Shortcuts, components.Shortcut{
			Key:  b.Help().Key,
			Desc: b.Help().Desc,
		})
	}
	return sb.View()
}

