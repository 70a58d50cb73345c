// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mesh simulates the event stream of a connected mesh radio.
//
// There is no real transport: Feed plays a scripted scenario of node
// sightings and channel traffic, paced by a rate limiter, and answers
// sends with delayed delivery acknowledgements (including occasional
// failures). The UI consumes Events() exactly as it would a serial or
// BLE device link, so swapping in a real link later only replaces this
// package.
package mesh
