// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the meshway TUI.
package components

import (
	"strconv"
	"time"

	"github.com/meshway/meshway-tui/internal/model"
)

// =============================================================================
// DELIVERY STATUS RESOLUTION
// =============================================================================

// AckText resolves the delivery status of a message to its display text.
// The second return value reports whether the text is an error.
//
// Failed messages surface the radio's error string verbatim; it is not
// reworded or interpreted here.
func AckText(m *model.Message) (string, bool) {
	switch m.Ack {
	case model.AckAcknowledged:
		return "Acknowledged", false
	case model.AckFailed:
		return m.AckError, true
	default: // AckPending
		return "Transmitting...", false
	}
}

// =============================================================================
// SENDER CLASSIFICATION
// =============================================================================

// FormatUsername resolves the display label for a message sender and
// reports whether the sender is the viewer's own device. node may be nil
// when the sender has no directory entry; the label then falls back to
// model.FallbackName.
func FormatUsername(node *model.Node, viewerID, senderID model.NodeID) (string, bool) {
	return node.DisplayName(), senderID == viewerID
}

// =============================================================================
// TIME AND COORDINATE FORMATTING
// =============================================================================

// FormatTime formats a receive timestamp as "3:04 PM", prefixing the date
// ("Jan 5, 3:04 PM") when the message is not from today.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("3:04 PM")
	}
	return t.Format("Jan 2, 3:04 PM")
}

// FormatCoords formats a latitude/longitude pair in degrees with
// hemisphere suffixes, e.g. "40.0000N 75.0000W".
func FormatCoords(lat, lon float64) string {
	latHem, lonHem := "N", "E"
	if lat < 0 {
		lat, latHem = -lat, "S"
	}
	if lon < 0 {
		lon, lonHem = -lon, "W"
	}
	return strconv.FormatFloat(lat, 'f', 4, 64) + latHem + " " +
		strconv.FormatFloat(lon, 'f', 4, 64) + lonHem
}
