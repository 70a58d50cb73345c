// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for mesh nodes, channels and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// NODE IDENTITY
// =============================================================================

// NodeID is the numeric identifier of a node on the mesh.
// It matches the node number broadcast by the radio firmware.
type NodeID uint32

// FallbackName is the label shown for senders with no directory entry.
const FallbackName = "Unknown sender"

// =============================================================================
// ACKNOWLEDGEMENT STATE
// =============================================================================

// AckState is the delivery status of a self-sent message.
// It is only meaningful for messages sent from the connected device;
// the UI never shows delivery status for messages from other nodes.
type AckState int

const (
	// AckPending - the radio is still transmitting or waiting for an ack.
	AckPending AckState = iota
	// AckAcknowledged - the mesh confirmed delivery.
	AckAcknowledged
	// AckFailed - delivery failed; Message.AckError carries the reason.
	AckFailed
)

// String returns the string representation of the ack state.
func (s AckState) String() string {
	switch s {
	case AckPending:
		return "pending"
	case AckAcknowledged:
		return "acknowledged"
	case AckFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// PAYLOAD UNION
// =============================================================================

// Payload is the tagged content of a message: either plain text or a
// waypoint. The set of variants is closed; rendering code matches
// exhaustively on the concrete type.
type Payload interface {
	isPayload()

	// DisplayText returns the human-readable text for the payload.
	DisplayText() string
}

// TextPayload is a plain text message body.
type TextPayload struct {
	Body string
}

func (TextPayload) isPayload() {}

// DisplayText returns the message body verbatim.
func (p TextPayload) DisplayText() string {
	return p.Body
}

// WaypointPayload is a geographic point-of-interest attached to a message.
type WaypointPayload struct {
	// ID identifies the waypoint across the app (map markers, store dispatch).
	ID string

	// Name is the label given to the waypoint by its creator. May be empty.
	Name string

	// Latitude and Longitude are in decimal degrees.
	Latitude  float64
	Longitude float64
}

func (WaypointPayload) isPayload() {}

// DisplayText returns "Waypoint: <name>", degrading to a placeholder
// name when the waypoint was created without one.
func (p WaypointPayload) DisplayText() string {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	return "Waypoint: " + name
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat message on a channel.
type Message struct {
	// Identity
	ID       string
	Sender   NodeID
	Received time.Time

	// Content
	Payload Payload

	// Delivery status, meaningful for self-sent messages only.
	Ack      AckState
	AckError string
}

// NewTextMessage creates a text message with a generated ID.
func NewTextMessage(sender NodeID, body string) *Message {
	return &Message{
		ID:       uuid.NewString(),
		Sender:   sender,
		Received: time.Now(),
		Payload:  TextPayload{Body: body},
	}
}

// NewWaypointMessage creates a waypoint message with generated message
// and waypoint IDs.
func NewWaypointMessage(sender NodeID, name string, lat, lon float64) *Message {
	return &Message{
		ID:       uuid.NewString(),
		Sender:   sender,
		Received: time.Now(),
		Payload: WaypointPayload{
			ID:        uuid.NewString(),
			Name:      name,
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

// IsWaypoint reports whether the message carries a waypoint payload.
func (m *Message) IsWaypoint() bool {
	_, ok := m.Payload.(WaypointPayload)
	return ok
}

// Waypoint returns the waypoint payload, or false for text messages.
func (m *Message) Waypoint() (WaypointPayload, bool) {
	wp, ok := m.Payload.(WaypointPayload)
	return wp, ok
}

// DisplayText returns the display text for the message payload.
// Messages constructed without a payload degrade to an empty string.
func (m *Message) DisplayText() string {
	if m.Payload == nil {
		return ""
	}
	return m.Payload.DisplayText()
}
