// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the shared application state the UI reads from and
// dispatches to: the viewer identity, the node directory, channel history,
// waypoints and the map configuration.
//
// Screens receive a *Store by injection rather than reaching into process
// globals. Reads are snapshot reads taken at render time; writes are
// fire-and-forget dispatches with last-write-wins semantics.
package store

import (
	"sort"
	"sync"

	"github.com/meshway/meshway-tui/internal/model"
)

// =============================================================================
// MAP CONFIG
// =============================================================================

// MapConfig is the map style descriptor shared by the preview component
// and the full map screen.
type MapConfig struct {
	// Style is the named map style, e.g. "streets" or "topo".
	Style string

	// Zoom is the initial zoom level for previews.
	Zoom int
}

// =============================================================================
// STORE
// =============================================================================

// Store is the snapshot store for shared application state.
type Store struct {
	mu sync.RWMutex

	viewerID model.NodeID
	nodes    map[model.NodeID]*model.Node
	channels map[int]*model.Channel

	waypoints      map[string]model.WaypointPayload
	activeWaypoint string

	mapCfg MapConfig
}

// New creates a store for the given connected device.
func New(viewerID model.NodeID, mapCfg MapConfig) *Store {
	return &Store{
		viewerID:  viewerID,
		nodes:     make(map[model.NodeID]*model.Node),
		channels:  make(map[int]*model.Channel),
		waypoints: make(map[string]model.WaypointPayload),
		mapCfg:    mapCfg,
	}
}

// =============================================================================
// READ SELECTORS
// =============================================================================

// ViewerID returns the node id of the locally-connected device.
func (s *Store) ViewerID() model.NodeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewerID
}

// Node looks up a directory entry by node id. Returns nil when the node
// has not been seen; callers fall back to model.FallbackName.
func (s *Store) Node(id model.NodeID) *model.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n, ok := s.nodes[id]; ok {
		cp := *n
		return &cp
	}
	return nil
}

// Nodes returns a snapshot of the node directory, most recently heard first.
func (s *Store) Nodes() []*model.Node {
	s.mu.RLock()
	out := make([]*model.Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		cp := *n
		out = append(out, &cp)
	}
	s.mu.RUnlock()
	model.SortNodes(out)
	return out
}

// Channel returns a snapshot of the channel at the given slot, creating
// the slot on first use. The message slice is copied so callers can hold
// it across dispatches; the messages themselves are shared.
func (s *Store) Channel(index int) *model.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := s.channelLocked(index)
	cp := *ch
	cp.Messages = append([]*model.Message(nil), ch.Messages...)
	return &cp
}

func (s *Store) channelLocked(index int) *model.Channel {
	ch, ok := s.channels[index]
	if !ok {
		ch = model.NewChannel("", index)
		s.channels[index] = ch
	}
	return ch
}

// Waypoints returns a snapshot of all known waypoints, ordered by name
// then id. Repeated reads of unchanged state agree, so marker cycling
// on the map screen visits every waypoint in a stable cycle.
func (s *Store) Waypoints() []model.WaypointPayload {
	s.mu.RLock()
	out := make([]model.WaypointPayload, 0, len(s.waypoints))
	for _, wp := range s.waypoints {
		out = append(out, wp)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ActiveWaypoint returns the id of the waypoint selected on the map,
// or the empty string when none is selected.
func (s *Store) ActiveWaypoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeWaypoint
}

// MapConfig returns the current map style descriptor.
func (s *Store) MapConfig() MapConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapCfg
}

// =============================================================================
// DISPATCH
// =============================================================================

// SetActiveWaypoint marks the given waypoint as the active one on the map.
// Fire-and-forget: there is no response, and concurrent dispatches resolve
// last-write-wins.
func (s *Store) SetActiveWaypoint(id string) {
	s.mu.Lock()
	s.activeWaypoint = id
	s.mu.Unlock()
}

// UpsertNode merges a directory entry for a node seen on the mesh.
func (s *Store) UpsertNode(n *model.Node) {
	s.mu.Lock()
	cp := *n
	s.nodes[n.ID] = &cp
	s.mu.Unlock()
}

// SetChannelName names the channel at the given slot.
func (s *Store) SetChannelName(index int, name string) {
	s.mu.Lock()
	s.channelLocked(index).Name = name
	s.mu.Unlock()
}

// AppendMessage adds a message to a channel and registers any waypoint
// it carries so the map screen can plot it.
func (s *Store) AppendMessage(index int, msg *model.Message) {
	s.mu.Lock()
	s.channelLocked(index).AddMessage(msg)
	if wp, ok := msg.Waypoint(); ok {
		s.waypoints[wp.ID] = wp
	}
	s.mu.Unlock()
}

// SetAck updates the delivery status of a message. The error string is
// kept only for failed updates.
func (s *Store) SetAck(index int, messageID string, state model.AckState, ackErr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.channelLocked(index).FindMessage(messageID)
	if msg == nil {
		return
	}
	msg.Ack = state
	if state == model.AckFailed {
		msg.AckError = ackErr
	} else {
		msg.AckError = ""
	}
}

// SetMapConfig replaces the map style descriptor (config reload).
func (s *Store) SetMapConfig(cfg MapConfig) {
	s.mu.Lock()
	s.mapCfg = cfg
	s.mu.Unlock()
}
