// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mapview provides the full map screen for the TUI.
package mapview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meshway/meshway-tui/internal/model"
	"github.com/meshway/meshway-tui/internal/store"
	"github.com/meshway/meshway-tui/internal/ui/components"
	"github.com/meshway/meshway-tui/internal/ui/styles"
	"github.com/meshway/meshway-tui/internal/util"
)

// CloseMsg asks the host to return to the chat screen.
type CloseMsg struct{}

// KeyMap defines the keyboard bindings for the map screen.
type KeyMap struct {
	Back key.Binding
	Next key.Binding
}

// DefaultKeyMap returns the default map screen bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("Esc/q", "back to chat"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("Tab/n", "next waypoint"),
		),
	}
}

// Model is the Bubble Tea model for the map screen.
type Model struct {
	st    *store.Store
	theme *styles.Theme

	width  int
	height int
	keyMap KeyMap
}

// New creates the map screen.
func New(st *store.Store, theme *styles.Theme) Model {
	return Model{
		st:     st,
		theme:  theme,
		keyMap: DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize resizes the screen layout.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Back):
			return m, func() tea.Msg { return CloseMsg{} }
		case key.Matches(msg, m.keyMap.Next):
			m.cycleActive()
		}
	}
	return m, nil
}

// cycleActive selects the next waypoint as the active one.
func (m *Model) cycleActive() {
	wps := m.st.Waypoints()
	if len(wps) == 0 {
		return
	}
	active := m.st.ActiveWaypoint()
	next := wps[0].ID
	for i, wp := range wps {
		if wp.ID == active && i+1 < len(wps) {
			next = wps[i+1].ID
			break
		}
	}
	m.st.SetActiveWaypoint(next)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	h := components.NewHeader(m.theme)
	h.Title = "Map"
	h.Detail = util.Itoa(len(m.st.Waypoints())) + " waypoints"
	h.Width = m.width
	header := h.View()

	cfg := m.st.MapConfig()
	active := m.st.ActiveWaypoint()

	centerLat, centerLon := m.center(active)
	view := components.NewMapView(m.theme, cfg.Style, cfg.Zoom, centerLat, centerLon)
	view.ActiveID = active
	for _, wp := range m.st.Waypoints() {
		view.Markers = append(view.Markers, components.MapMarker{
			ID:    wp.ID,
			Label: wp.Name,
			Lat:   wp.Latitude,
			Lon:   wp.Longitude,
		})
	}

	// header (1) + box border (2) + legend + status hints
	gridHeight := m.height - 5 - len(view.Markers)
	if gridHeight < 3 {
		gridHeight = 3
	}
	view.SetSize(m.width-2, gridHeight)

	sb := components.NewStatusBar(m.theme)
	sb.Status = components.StatusConnected
	sb.Width = m.width
	sb.Shortcuts = []components.Shortcut{
		{Key: m.keyMap.Back.Help().Key, Desc: m.keyMap.Back.Help().Desc},
		{Key: m.keyMap.Next.Help().Key, Desc: m.keyMap.Next.Help().Desc},
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		view.View(),
		sb.View(),
	)
}

// center picks the active waypoint's coordinates, falling back to the
// first known waypoint, then to 0,0.
func (m *Model) center(activeID string) (float64, float64) {
	wps := m.st.Waypoints()
	var first *model.WaypointPayload
	for i := range wps {
		if wps[i].ID == activeID {
			return wps[i].Latitude, wps[i].Longitude
		}
		if first == nil {
			first = &wps[i]
		}
	}
	if first != nil {
		return first.Latitude, first.Longitude
	}
	return 0, 0
}

