// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshway/meshway-tui/internal/model"
)

func newTestStore() *Store {
	return New(0xAA, MapConfig{Style: "streets", Zoom: 13})
}

func TestViewerID(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, model.NodeID(0xAA), s.ViewerID())
}

func TestNodeReturnsNilWhenUnseen(t *testing.T) {
	s := newTestStore()
	assert.Nil(t, s.Node(0xBB))
}

func TestNodeSnapshotIsolation(t *testing.T) {
	s := newTestStore()
	s.UpsertNode(&model.Node{ID: 0xBB, LongName: "Team Alpha"})

	snap := s.Node(0xBB)
	require.NotNil(t, snap)
	snap.LongName = "mutated"

	assert.Equal(t, "Team Alpha", s.Node(0xBB).LongName)
}

func TestUpsertNodeReplacesEntry(t *testing.T) {
	s := newTestStore()
	s.UpsertNode(&model.Node{ID: 0xBB, LongName: "Team Alpha"})
	s.UpsertNode(&model.Node{ID: 0xBB, LongName: "Team Alpha", ShortName: "TA", LastHeard: time.Now()})

	n := s.Node(0xBB)
	require.NotNil(t, n)
	assert.Equal(t, "TA", n.ShortName)
	assert.False(t, n.LastHeard.IsZero())
	assert.Len(t, s.Nodes(), 1)
}

func TestNodesSortedByLastHeard(t *testing.T) {
	s := newTestStore()
	now := time.Now()
	s.UpsertNode(&model.Node{ID: 1, LongName: "Older", LastHeard: now.Add(-time.Hour)})
	s.UpsertNode(&model.Node{ID: 2, LongName: "Recent", LastHeard: now})

	nodes := s.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "Recent", nodes[0].LongName)
}

func TestChannelCreateOnUse(t *testing.T) {
	s := newTestStore()
	ch := s.Channel(0)
	require.NotNil(t, ch)
	assert.Equal(t, 0, ch.Index)

	s.SetChannelName(0, "Primary")
	assert.Equal(t, "Primary", s.Channel(0).Name)
}

func TestAppendMessageRegistersWaypoint(t *testing.T) {
	s := newTestStore()
	msg := model.NewWaypointMessage(0xBB, "Trailhead bridge", 40.0213, -75.1882)
	s.AppendMessage(0, msg)

	assert.Len(t, s.Channel(0).Messages, 1)

	wps := s.Waypoints()
	require.Len(t, wps, 1)
	assert.Equal(t, "Trailhead bridge", wps[0].Name)
}

func TestAppendTextMessageAddsNoWaypoint(t *testing.T) {
	s := newTestStore()
	s.AppendMessage(0, model.NewTextMessage(0xBB, "Copy that"))
	assert.Empty(t, s.Waypoints())
}

func TestWaypointsOrderStable(t *testing.T) {
	s := newTestStore()
	names := []string{"delta", "foxtrot", "alpha", "hotel", "bravo", "golf", "charlie", "echo"}
	for _, n := range names {
		s.AppendMessage(0, model.NewWaypointMessage(0xBB, n, 40.0, -75.0))
	}

	first := s.Waypoints()
	require.Len(t, first, len(names))
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Name, first[i].Name)
	}

	// Reads of unchanged state return the same order every time.
	for trial := 0; trial < 50; trial++ {
		assert.Equal(t, first, s.Waypoints())
	}
}

func TestWaypointsOrderTieBreaksOnID(t *testing.T) {
	s := newTestStore()
	s.AppendMessage(0, model.NewWaypointMessage(0xBB, "Rally point", 40.0, -75.0))
	s.AppendMessage(0, model.NewWaypointMessage(0xCC, "Rally point", 40.1, -75.1))

	first := s.Waypoints()
	require.Len(t, first, 2)
	assert.Less(t, first[0].ID, first[1].ID)
	assert.Equal(t, first, s.Waypoints())
}

func TestChannelSnapshotIsolation(t *testing.T) {
	s := newTestStore()
	s.SetChannelName(0, "Primary")
	s.AppendMessage(0, model.NewTextMessage(0xBB, "Radio check"))

	snap := s.Channel(0)
	snap.Name = "mutated"
	snap.Messages = append(snap.Messages, model.NewTextMessage(0xBB, "stray"))

	fresh := s.Channel(0)
	assert.Equal(t, "Primary", fresh.Name)
	assert.Len(t, fresh.Messages, 1)
}

func TestSetActiveWaypointLastWriteWins(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, "", s.ActiveWaypoint())

	s.SetActiveWaypoint("wp-1")
	s.SetActiveWaypoint("wp-2")
	assert.Equal(t, "wp-2", s.ActiveWaypoint())
}

func TestSetAckTransitions(t *testing.T) {
	s := newTestStore()
	msg := model.NewTextMessage(0xAA, "On my way")
	s.AppendMessage(0, msg)

	s.SetAck(0, msg.ID, model.AckFailed, "Timed out")
	got := s.Channel(0).FindMessage(msg.ID)
	assert.Equal(t, model.AckFailed, got.Ack)
	assert.Equal(t, "Timed out", got.AckError)

	// Recovering clears the stale reason.
	s.SetAck(0, msg.ID, model.AckAcknowledged, "")
	got = s.Channel(0).FindMessage(msg.ID)
	assert.Equal(t, model.AckAcknowledged, got.Ack)
	assert.Equal(t, "", got.AckError)
}

func TestSetAckUnknownMessageIsNoop(t *testing.T) {
	s := newTestStore()
	s.SetAck(0, "missing", model.AckAcknowledged, "")
	assert.Empty(t, s.Channel(0).Messages)
}

func TestSetMapConfig(t *testing.T) {
	s := newTestStore()
	s.SetMapConfig(MapConfig{Style: "topo", Zoom: 9})

	cfg := s.MapConfig()
	assert.Equal(t, "topo", cfg.Style)
	assert.Equal(t, 9, cfg.Zoom)
}

func TestConcurrentDispatch(t *testing.T) {
	s := newTestStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.AppendMessage(0, model.NewTextMessage(0xAA, "burst"))
			s.UpsertNode(&model.Node{ID: model.NodeID(n), LongName: "Node"})
			s.SetActiveWaypoint("wp")
			_ = s.Nodes()
			_ = s.Waypoints()
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Channel(0).Messages, 20)
	assert.Len(t, s.Nodes(), 20)
	assert.Equal(t, "wp", s.ActiveWaypoint())
}
