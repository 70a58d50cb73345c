// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mesh simulates the event stream of a connected mesh radio.
package mesh

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/meshway/meshway-tui/internal/model"
)

// =============================================================================
// EVENTS
// =============================================================================

// Event is one update from the device link. The concrete types below are
// the only variants.
type Event interface{ isEvent() }

// NodeSeen reports a directory update for a node on the mesh.
type NodeSeen struct {
	Node *model.Node
}

// MessageReceived reports an incoming channel message.
type MessageReceived struct {
	Channel int
	Message *model.Message
}

// AckUpdated reports a delivery-status change for a previously sent message.
type AckUpdated struct {
	Channel   int
	MessageID string
	State     model.AckState
	Err       string
}

func (NodeSeen) isEvent()        {}
func (MessageReceived) isEvent() {}
func (AckUpdated) isEvent()      {}

// =============================================================================
// FEED
// =============================================================================

// ackDelay is how long the simulated radio takes to confirm delivery.
const ackDelay = 1200 * time.Millisecond

// Feed plays a scripted scenario of mesh traffic and answers sends with
// delayed delivery acks. It stands in for the device link; there is no
// real transport behind it.
type Feed struct {
	viewerID model.NodeID
	events   chan Event
	limiter  *rate.Limiter

	mu   sync.Mutex
	rng  *rand.Rand
	done chan struct{}
	once sync.Once
}

// NewFeed creates a feed for the given connected device id.
// eventsPerSec paces scripted traffic so a session unfolds over time
// instead of arriving in one burst.
func NewFeed(viewerID model.NodeID, eventsPerSec float64, seed int64) *Feed {
	return &Feed{
		viewerID: viewerID,
		events:   make(chan Event, 32),
		limiter:  rate.NewLimiter(rate.Limit(eventsPerSec), 1),
		rng:      rand.New(rand.NewSource(seed)),
		done:     make(chan struct{}),
	}
}

// Events returns the stream the UI consumes.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Start begins playing the scripted scenario. It returns immediately;
// events arrive on Events() until the scenario ends or ctx is cancelled.
func (f *Feed) Start(ctx context.Context) {
	go f.play(ctx, scenario(f.viewerID))
}

// Stop closes the feed. Safe to call more than once.
func (f *Feed) Stop() {
	f.once.Do(func() { close(f.done) })
}

func (f *Feed) play(ctx context.Context, script []Event) {
	for _, ev := range script {
		if err := f.limiter.Wait(ctx); err != nil {
			return
		}
		if !f.emit(ctx, ev) {
			return
		}
	}
}

func (f *Feed) emit(ctx context.Context, ev Event) bool {
	select {
	case f.events <- ev:
		return true
	case <-ctx.Done():
		return false
	case <-f.done:
		return false
	}
}

// =============================================================================
// SEND SIMULATION
// =============================================================================

// QueueAck schedules a delivery-status update for a just-sent message.
// Roughly one send in five fails with a timeout, so every ack variant
// shows up in a session.
func (f *Feed) QueueAck(ctx context.Context, channel int, messageID string) {
	f.mu.Lock()
	fail := f.rng.Intn(5) == 0
	f.mu.Unlock()

	go func() {
		select {
		case <-time.After(ackDelay):
		case <-ctx.Done():
			return
		case <-f.done:
			return
		}

		ev := AckUpdated{Channel: channel, MessageID: messageID, State: model.AckAcknowledged}
		if fail {
			ev = AckUpdated{
				Channel:   channel,
				MessageID: messageID,
				State:     model.AckFailed,
				Err:       "Timed out waiting for ack",
			}
		}
		f.emit(ctx, ev)
	}()
}
