// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meshway/meshway-tui/internal/model"
)

// =============================================================================
// DELIVERY STATUS RESOLUTION TESTS
// =============================================================================

func TestAckText(t *testing.T) {
	tests := []struct {
		name     string
		ack      model.AckState
		ackErr   string
		wantText string
		wantErr  bool
	}{
		{"acknowledged", model.AckAcknowledged, "", "Acknowledged", false},
		{"pending", model.AckPending, "", "Transmitting...", false},
		{"failed", model.AckFailed, "Timed out waiting for ack", "Timed out waiting for ack", true},
		{"failed keeps error verbatim", model.AckFailed, "max retries (3) exceeded", "max retries (3) exceeded", true},
		{"failed with empty reason", model.AckFailed, "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := &model.Message{Ack: tc.ack, AckError: tc.ackErr}
			text, isErr := AckText(msg)
			assert.Equal(t, tc.wantText, text)
			assert.Equal(t, tc.wantErr, isErr)
		})
	}
}

// =============================================================================
// SENDER CLASSIFICATION TESTS
// =============================================================================

func TestFormatUsername(t *testing.T) {
	alice := &model.Node{ID: 0x01, LongName: "Base Camp", ShortName: "BC"}

	tests := []struct {
		name      string
		node      *model.Node
		viewerID  model.NodeID
		senderID  model.NodeID
		wantLabel string
		wantSelf  bool
	}{
		{"self with entry", alice, 0x01, 0x01, "Base Camp", true},
		{"other with entry", alice, 0x02, 0x01, "Base Camp", false},
		{"self without entry", nil, 0x05, 0x05, model.FallbackName, true},
		{"other without entry", nil, 0x02, 0x05, model.FallbackName, false},
		{"short name only", &model.Node{ID: 0x03, ShortName: "RLY"}, 0x02, 0x03, "RLY", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, isSelf := FormatUsername(tc.node, tc.viewerID, tc.senderID)
			assert.Equal(t, tc.wantLabel, label)
			assert.Equal(t, tc.wantSelf, isSelf)
		})
	}
}

// =============================================================================
// TIME AND COORDINATE FORMATTING TESTS
// =============================================================================

func TestFormatTime(t *testing.T) {
	today := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 15, 4, 0, 0, time.Local)
	assert.Equal(t, "3:04 PM", FormatTime(today))

	other := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "Jan 5, 9:30 AM", FormatTime(other))

	assert.Equal(t, "", FormatTime(time.Time{}))
}

func TestFormatCoords(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     string
	}{
		{40.0, -75.0, "40.0000N 75.0000W"},
		{-33.8688, 151.2093, "33.8688S 151.2093E"},
		{0, 0, "0.0000N 0.0000E"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCoords(tc.lat, tc.lon))
	}
}
