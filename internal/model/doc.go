// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for mesh nodes, channels and messages.
//
// This package defines the core domain types used throughout the application
// for representing the mesh network as seen from the connected device.
//
// # Key Types
//
//   - NodeID: numeric node number of a device on the mesh
//   - Node: directory entry with display names and last-heard time
//   - Message: single chat message with sender, payload and delivery status
//   - Payload: tagged union of TextPayload and WaypointPayload
//   - AckState: delivery status enumeration (pending, acknowledged, failed)
//   - Channel: ordered message history of one mesh channel
//
// # Usage
//
// Create and deliver a message:
//
//	ch := model.NewChannel("Primary", 0)
//	msg := model.NewTextMessage(0x1a2b3c4d, "On my way")
//	ch.AddMessage(msg)
//
// Waypoint messages carry coordinates and a marker identifier:
//
//	wp := model.NewWaypointMessage(0x1a2b3c4d, "Rally point", 40.0, -75.0)
package model
