// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the channel chat screen for the TUI.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshway/meshway-tui/internal/mesh"
	"github.com/meshway/meshway-tui/internal/model"
	"github.com/meshway/meshway-tui/internal/store"
	"github.com/meshway/meshway-tui/internal/ui/components"
	"github.com/meshway/meshway-tui/internal/ui/styles"
)

// =============================================================================
// OUTBOUND MESSAGES
// =============================================================================

// OpenMapMsg asks the host to switch to the map screen. The active
// waypoint has already been dispatched to the store when this is emitted.
type OpenMapMsg struct {
	WaypointID string
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the channel chat screen.
type Model struct {
	// Injected collaborators
	st   *store.Store
	feed *mesh.Feed

	// Which channel slot this screen shows
	channel int

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	viewport viewport.Model
	input    textinput.Model
	keyMap   KeyMap

	status         components.Status
	showTimestamps bool
	maxWidth       int
}

// New creates the chat screen for a channel slot.
func New(st *store.Store, feed *mesh.Feed, channel int, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Message the channel..."
	input.Prompt = "> "
	input.Focus()

	vp := viewport.New(80, 20)

	return Model{
		st:             st,
		feed:           feed,
		channel:        channel,
		theme:          theme,
		viewport:       vp,
		input:          input,
		keyMap:         DefaultKeyMap(),
		status:         components.StatusConnected,
		showTimestamps: true,
	}
}

// SetShowTimestamps toggles timestamps in bubble headers.
func (m *Model) SetShowTimestamps(show bool) {
	m.showTimestamps = show
}

// SetMaxWidth caps the chat column width (0 = full terminal width).
func (m *Model) SetMaxWidth(w int) {
	m.maxWidth = w
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize resizes the screen layout.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// header (1) + input box (3) + status bar (1)
	vpHeight := height - 5
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 6

	m.Refresh()
}

// Refresh re-renders the message list from the store snapshot.
// Called after every store mutation that concerns this channel.
func (m *Model) Refresh() {
	ch := m.st.Channel(m.channel)
	mapCfg := m.st.MapConfig()

	list := components.NewMessageList(m.theme)
	list.Messages = ch.Messages
	list.NodeLookup = m.st.Node
	list.ViewerID = m.st.ViewerID()
	list.MapStyle = mapCfg.Style
	list.MapZoom = mapCfg.Zoom
	list.ShowTimestamps = m.showTimestamps
	list.SetWidth(m.contentWidth())

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(list.View())
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) contentWidth() int {
	w := m.width
	if m.maxWidth > 0 && w > m.maxWidth {
		w = m.maxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Submit):
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case key.Matches(msg, m.keyMap.ShowMap):
			if cmd := m.showLatestWaypoint(); cmd != nil {
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit sends the composed text as a self message: it lands in the
// channel as pending and the feed answers later with an ack update.
func (m *Model) submit() tea.Cmd {
	body := m.input.Value()
	if body == "" {
		return nil
	}
	m.input.SetValue("")

	msg := model.NewTextMessage(m.st.ViewerID(), body)
	m.st.AppendMessage(m.channel, msg)
	m.feed.QueueAck(context.Background(), m.channel, msg.ID)
	m.Refresh()
	m.viewport.GotoBottom()
	return nil
}

// showLatestWaypoint activates the most recent waypoint on the channel:
// dispatch it as the active waypoint, then navigate to the map screen.
func (m *Model) showLatestWaypoint() tea.Cmd {
	ch := m.st.Channel(m.channel)
	for i := len(ch.Messages) - 1; i >= 0; i-- {
		if wp, ok := ch.Messages[i].Waypoint(); ok {
			m.st.SetActiveWaypoint(wp.ID)
			return func() tea.Msg { return OpenMapMsg{WaypointID: wp.ID} }
		}
	}
	return nil
}
