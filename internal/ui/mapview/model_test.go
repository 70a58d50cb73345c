// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshway/meshway-tui/internal/model"
	"github.com/meshway/meshway-tui/internal/store"
	"github.com/meshway/meshway-tui/internal/ui/styles"
)

func newTestScreen(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st := store.New(0xAA, store.MapConfig{Style: "topo", Zoom: 13})
	m := New(st, styles.NewTheme())
	m.SetSize(80, 24)
	return m, st
}

func addWaypoint(st *store.Store, name string, lat, lon float64) model.WaypointPayload {
	msg := model.NewWaypointMessage(0xBB, name, lat, lon)
	st.AppendMessage(0, msg)
	wp, _ := msg.Waypoint()
	return wp
}

func TestBackEmitsCloseMsg(t *testing.T) {
	m, _ := newTestScreen(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseMsg)
	assert.True(t, ok)
	_ = m
}

func TestCycleActiveSelectsAWaypoint(t *testing.T) {
	m, st := newTestScreen(t)
	wp := addWaypoint(st, "Trailhead bridge", 40.0213, -75.1882)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_ = m
	assert.Equal(t, wp.ID, st.ActiveWaypoint())
}

func TestCycleActiveVisitsEveryWaypoint(t *testing.T) {
	m, st := newTestScreen(t)
	alpha := addWaypoint(st, "Alpha crossing", 40.0, -75.0)
	bravo := addWaypoint(st, "Bravo ridge", 40.1, -75.1)
	charlie := addWaypoint(st, "Charlie creek", 40.2, -75.2)

	// Waypoints come out of the store ordered by name, so repeated Tab
	// presses walk that order and wrap around.
	want := []string{alpha.ID, bravo.ID, charlie.ID, alpha.ID, bravo.ID}
	for _, id := range want {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, id, st.ActiveWaypoint())
	}
	_ = m
}

func TestCycleActiveWithNoWaypointsIsNoop(t *testing.T) {
	m, st := newTestScreen(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_ = m
	assert.Equal(t, "", st.ActiveWaypoint())
}

func TestViewShowsWaypointCountAndLegend(t *testing.T) {
	m, st := newTestScreen(t)
	wp := addWaypoint(st, "Rally point", 40.0, -75.0)
	st.SetActiveWaypoint(wp.ID)

	view := m.View()
	assert.Contains(t, view, "Map")
	assert.Contains(t, view, "1 waypoints")
	assert.Contains(t, view, "topo z13")
	assert.Contains(t, view, "Rally point")
}

func TestViewCentersOnActiveWaypoint(t *testing.T) {
	m, st := newTestScreen(t)
	addWaypoint(st, "Old camp", 39.9, -75.3)
	active := addWaypoint(st, "Trailhead bridge", 40.0213, -75.1882)
	st.SetActiveWaypoint(active.ID)

	lat, lon := m.center(active.ID)
	assert.InDelta(t, 40.0213, lat, 1e-9)
	assert.InDelta(t, -75.1882, lon, 1e-9)
}

func TestViewBeforeSizeIsPlaceholder(t *testing.T) {
	st := store.New(0xAA, store.MapConfig{Style: "streets", Zoom: 13})
	m := New(st, styles.NewTheme())
	assert.Equal(t, "Loading...", m.View())
}
