// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui owns the top-level Bubble Tea model: screen routing between
// the chat and map screens, window sizing fan-out, and delivery of mesh
// feed events into the store.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshway/meshway-tui/internal/config"
	"github.com/meshway/meshway-tui/internal/mesh"
	"github.com/meshway/meshway-tui/internal/store"
	"github.com/meshway/meshway-tui/internal/ui/chat"
	"github.com/meshway/meshway-tui/internal/ui/mapview"
	"github.com/meshway/meshway-tui/internal/ui/styles"
)

// =============================================================================
// ROUTES
// =============================================================================

// Route names a screen.
type Route int

const (
	RouteChat Route = iota
	RouteMap
)

// =============================================================================
// MESSAGES
// =============================================================================

// feedEventMsg wraps one mesh event for the update loop.
type feedEventMsg struct {
	event mesh.Event
}

// feedClosedMsg reports that the feed channel was closed.
type feedClosedMsg struct{}

// ConfigReloadedMsg carries a hot-reloaded config into the update loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root model.
type App struct {
	st   *store.Store
	feed *mesh.Feed

	route Route
	chat  chat.Model
	mapv  mapview.Model

	width  int
	height int
	theme  *styles.Theme
}

// NewApp wires the screens around the injected store and feed.
func NewApp(st *store.Store, feed *mesh.Feed, cfg *config.Config, theme *styles.Theme) App {
	chatScreen := chat.New(st, feed, cfg.Device.Channel, theme)
	chatScreen.SetShowTimestamps(cfg.UI.ShowTimestamps)
	chatScreen.SetMaxWidth(cfg.UI.MaxWidth)

	return App{
		st:    st,
		feed:  feed,
		route: RouteChat,
		chat:  chatScreen,
		mapv:  mapview.New(st, theme),
		theme: theme,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	a.feed.Start(context.Background())
	return tea.Batch(a.chat.Init(), a.waitForEvent())
}

// waitForEvent blocks on the feed until the next event arrives.
func (a App) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.feed.Events()
		if !ok {
			return feedClosedMsg{}
		}
		return feedEventMsg{event: ev}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.chat.SetSize(msg.Width, msg.Height)
		a.mapv.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.feed.Stop()
			return a, tea.Quit
		}

	case feedEventMsg:
		a.applyEvent(msg.event)
		a.chat.Refresh()
		return a, a.waitForEvent()

	case feedClosedMsg:
		return a, nil

	case ConfigReloadedMsg:
		a.st.SetMapConfig(store.MapConfig{
			Style: msg.Config.Map.Style,
			Zoom:  msg.Config.Map.Zoom,
		})
		a.chat.SetShowTimestamps(msg.Config.UI.ShowTimestamps)
		a.chat.SetMaxWidth(msg.Config.UI.MaxWidth)
		a.chat.Refresh()
		return a, nil

	case chat.OpenMapMsg:
		a.route = RouteMap
		return a, nil

	case mapview.CloseMsg:
		a.route = RouteChat
		a.chat.Refresh()
		return a, nil
	}

	var cmd tea.Cmd
	switch a.route {
	case RouteChat:
		a.chat, cmd = a.chat.Update(msg)
	case RouteMap:
		a.mapv, cmd = a.mapv.Update(msg)
	}
	return a, cmd
}

// applyEvent folds a mesh event into the store.
func (a *App) applyEvent(ev mesh.Event) {
	switch ev := ev.(type) {
	case mesh.NodeSeen:
		a.st.UpsertNode(ev.Node)
	case mesh.MessageReceived:
		a.st.AppendMessage(ev.Channel, ev.Message)
	case mesh.AckUpdated:
		a.st.SetAck(ev.Channel, ev.MessageID, ev.State, ev.Err)
	}
}

// View implements tea.Model.
func (a App) View() string {
	switch a.route {
	case RouteMap:
		return a.mapv.View()
	default:
		return a.chat.View()
	}
}
