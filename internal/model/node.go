// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for mesh nodes, channels and messages.
package model

import (
	"sort"
	"time"
)

// =============================================================================
// NODE TYPE
// =============================================================================

// Node is a directory entry for a device seen on the mesh.
type Node struct {
	// ID is the node number of the device.
	ID NodeID

	// LongName is the user-assigned display name, e.g. "Base Camp".
	LongName string

	// ShortName is the up-to-4-character call label, e.g. "BC".
	ShortName string

	// LastHeard is when a packet from this node was last received.
	LastHeard time.Time
}

// DisplayName returns the name to show for this node, preferring the
// long name, then the short name, then the fallback label.
func (n *Node) DisplayName() string {
	if n == nil {
		return FallbackName
	}
	if n.LongName != "" {
		return n.LongName
	}
	if n.ShortName != "" {
		return n.ShortName
	}
	return FallbackName
}

// =============================================================================
// SORTING
// =============================================================================

// SortNodes orders nodes most-recently-heard first, with never-heard
// nodes last, alphabetically by display name within each group.
func SortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		hi, hj := !nodes[i].LastHeard.IsZero(), !nodes[j].LastHeard.IsZero()
		if hi != hj {
			return hi
		}
		if hi && !nodes[i].LastHeard.Equal(nodes[j].LastHeard) {
			return nodes[i].LastHeard.After(nodes[j].LastHeard)
		}
		return nodes[i].DisplayName() < nodes[j].DisplayName()
	})
}
