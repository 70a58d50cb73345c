// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"long name wins", &Node{LongName: "Base Camp", ShortName: "BC"}, "Base Camp"},
		{"short name fallback", &Node{ShortName: "BC"}, "BC"},
		{"no names", &Node{}, FallbackName},
		{"nil node", nil, FallbackName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.DisplayName())
		})
	}
}

func TestSortNodes(t *testing.T) {
	now := time.Now()
	recent := &Node{ID: 1, LongName: "Team Alpha", LastHeard: now}
	older := &Node{ID: 2, LongName: "Team Bravo", LastHeard: now.Add(-time.Hour)}
	neverA := &Node{ID: 3, LongName: "Alpha silent"}
	neverB := &Node{ID: 4, LongName: "Bravo silent"}

	nodes := []*Node{neverB, older, neverA, recent}
	SortNodes(nodes)

	assert.Equal(t, []*Node{recent, older, neverA, neverB}, nodes)
}

func TestSortNodesTieBreaksAlphabetically(t *testing.T) {
	heard := time.Now()
	a := &Node{ID: 1, LongName: "Alpha", LastHeard: heard}
	b := &Node{ID: 2, LongName: "Bravo", LastHeard: heard}

	nodes := []*Node{b, a}
	SortNodes(nodes)
	assert.Equal(t, []*Node{a, b}, nodes)
}
