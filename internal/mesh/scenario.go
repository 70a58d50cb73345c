// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mesh simulates the event stream of a connected mesh radio.
package mesh

import (
	"time"

	"github.com/meshway/meshway-tui/internal/model"
)

// Scripted traffic for the primary channel: a small search-and-rescue
// net with a base camp, two field teams and a relay, including one
// waypoint broadcast so the map has something to show.

const (
	nodeBaseCamp model.NodeID = 0x0b45ec01
	nodeTeamA    model.NodeID = 0x7e3aa102
	nodeTeamB    model.NodeID = 0x7e3aa203
	nodeRelay    model.NodeID = 0x99f00704
)

func scenario(viewerID model.NodeID) []Event {
	now := time.Now()

	msg := func(sender model.NodeID, body string) Event {
		m := model.NewTextMessage(sender, body)
		return MessageReceived{Channel: 0, Message: m}
	}

	wpMsg := model.NewWaypointMessage(nodeTeamA, "Trailhead bridge", 40.0213, -75.1882)

	return []Event{
		NodeSeen{Node: &model.Node{ID: viewerID, LongName: "Field Tablet", ShortName: "FT", LastHeard: now}},
		NodeSeen{Node: &model.Node{ID: nodeBaseCamp, LongName: "Base Camp", ShortName: "BC", LastHeard: now}},
		NodeSeen{Node: &model.Node{ID: nodeTeamA, LongName: "Team Alpha", ShortName: "TA", LastHeard: now}},
		NodeSeen{Node: &model.Node{ID: nodeRelay, ShortName: "RLY", LastHeard: now}},

		msg(nodeBaseCamp, "Radio check, all teams report in."),
		msg(nodeTeamA, "Alpha here, five by five."),
		// Team B has no directory entry yet: its messages exercise the
		// unknown-sender fallback until the NodeSeen below arrives.
		msg(nodeTeamB, "Bravo copies, moving to the north ridge."),
		NodeSeen{Node: &model.Node{ID: nodeTeamB, LongName: "Team Bravo", ShortName: "TB", LastHeard: now}},
		MessageReceived{Channel: 0, Message: wpMsg},
		msg(nodeTeamA, "Crossing marked, bridge is passable on foot only."),
		msg(nodeBaseCamp, "Copy. Bravo, route through Alpha's waypoint."),
	}
}
