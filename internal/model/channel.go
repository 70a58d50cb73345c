// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for mesh nodes, channels and messages.
package model

import (
	"sort"
	"time"
)

// MaxMessages is the maximum number of messages kept per channel.
// Older messages are pruned to prevent unbounded memory growth.
const MaxMessages = 1000

// =============================================================================
// CHANNEL TYPE
// =============================================================================

// Channel holds the ordered message history of one mesh channel.
type Channel struct {
	// Name is the channel name as configured on the devices.
	Name string

	// Index is the channel slot on the radio (0 is the primary channel).
	Index int

	// Messages are ordered oldest first.
	Messages []*Message

	// UpdatedAt is the receive time of the most recent message.
	UpdatedAt time.Time
}

// NewChannel creates an empty channel.
func NewChannel(name string, index int) *Channel {
	return &Channel{
		Name:     name,
		Index:    index,
		Messages: make([]*Message, 0),
	}
}

// AddMessage appends a message and prunes history past MaxMessages.
func (c *Channel) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.Received
	if len(c.Messages) > MaxMessages {
		c.Messages = c.Messages[len(c.Messages)-MaxMessages:]
	}
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Channel) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// FindMessage returns the message with the given ID, or nil.
func (c *Channel) FindMessage(id string) *Message {
	for _, m := range c.Messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// SortMessages restores receive-time order after out-of-order delivery.
// The mesh gives no ordering guarantee, so late packets land out of place.
func (c *Channel) SortMessages() {
	sort.SliceStable(c.Messages, func(i, j int) bool {
		return c.Messages[i].Received.Before(c.Messages[j].Received)
	})
}
