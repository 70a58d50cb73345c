// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the meshway TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/meshway/meshway-tui/internal/model"
	"github.com/meshway/meshway-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders a single chat message: a self-sent message as a
// right-aligned blue bubble with a delivery status line, a peer message
// as a left-aligned violet bubble without one. Waypoint messages embed a
// map preview and a "show on map" affordance in both variants.
type MessageBubble struct {
	Message *model.Message

	// SenderNode is the directory entry for the sender, nil when unknown.
	SenderNode *model.Node

	// ViewerID is the node id of the locally-connected device.
	ViewerID model.NodeID

	// Map configuration for waypoint previews.
	MapStyle string
	MapZoom  int

	Width         int
	ShowTimestamp bool

	theme *styles.Theme
}

// NewMessageBubble creates a new MessageBubble.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		// Safe default so a nil message renders as empty, not a crash.
		msg = &model.Message{Payload: model.TextPayload{}}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// =============================================================================
// VARIANT TABLE
// =============================================================================

// bubbleVariant keys the four render cases on two independent booleans:
// whether the viewer sent the message, and whether it carries a waypoint.
type bubbleVariant struct {
	Self     bool
	Waypoint bool
}

// variantLayout holds what differs between the four cases.
type variantLayout struct {
	align       lipgloss.Position
	showAck     bool
	showPreview bool
}

// variantLayouts enumerates all four cases so a missing one is mechanical
// to spot. The delivery status line exists only on self-sent messages;
// the map preview only on waypoint messages. Alignment follows the sender.
var variantLayouts = map[bubbleVariant]variantLayout{
	{Self: true, Waypoint: false}:  {align: lipgloss.Right, showAck: true, showPreview: false},
	{Self: true, Waypoint: true}:   {align: lipgloss.Right, showAck: true, showPreview: true},
	{Self: false, Waypoint: false}: {align: lipgloss.Left, showAck: false, showPreview: false},
	{Self: false, Waypoint: true}:  {align: lipgloss.Left, showAck: false, showPreview: true},
}

// classify resolves the variant for a message as seen by a viewer.
func classify(msg *model.Message, viewerID model.NodeID) bubbleVariant {
	return bubbleVariant{
		Self:     msg.Sender == viewerID,
		Waypoint: msg.IsWaypoint(),
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// ShowOnMapHint is the affordance line under waypoint previews.
const ShowOnMapHint = "[C-w] show on map"

// View renders the message bubble.
func (b *MessageBubble) View() string {
	variant := classify(b.Message, b.ViewerID)
	layout := variantLayouts[variant]

	content := b.Message.DisplayText()
	if content == "" {
		content = "..."
	}

	// Word wrap the content; account for margins, border and padding.
	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubbleStyle := b.theme.PeerBubble
	if variant.Self {
		bubbleStyle = b.theme.SenderBubble
	}
	bubble := bubbleStyle.Width(contentWidth).Render(wrapped)

	lines := []string{b.renderHeader(), bubble}

	if layout.showAck {
		lines = append(lines, b.renderAckLine())
	}

	if layout.showPreview {
		wp, _ := b.Message.Waypoint()
		preview := NewMapPreview(b.theme, b.MapStyle, b.MapZoom, wp)
		preview.SetSize(minInt(b.Width-8, 40), previewHeight)
		lines = append(lines,
			preview.View(),
			b.theme.MapAffordance.Render(ShowOnMapHint),
		)
	}

	if layout.align == lipgloss.Right {
		// Push every line against the right edge of the column.
		leftMargin := b.Width - contentWidth - 4
		if leftMargin < 0 {
			leftMargin = 0
		}
		marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)
		for i := range lines {
			lines[i] = marginStyle.Render(lines[i])
		}
		return lipgloss.JoinVertical(lipgloss.Right, lines...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderHeader renders the "<sender> <time>" line above the bubble.
func (b *MessageBubble) renderHeader() string {
	label, _ := FormatUsername(b.SenderNode, b.ViewerID, b.Message.Sender)
	header := b.theme.BubbleHeader.Render(label)
	if b.ShowTimestamp {
		if ts := FormatTime(b.Message.Received); ts != "" {
			header += " " + b.theme.BubbleHeader.Render(ts)
		}
	}
	return header
}

// renderAckLine renders the delivery status line under a self-sent bubble.
func (b *MessageBubble) renderAckLine() string {
	text, isErr := AckText(b.Message)
	if isErr {
		return b.theme.AckLineError.Render(styles.StatusIndicators.Error + " " + text)
	}
	return b.theme.AckLine.Render(text)
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders a channel's messages as a column of bubbles.
type MessageList struct {
	Messages []*model.Message

	// NodeLookup resolves sender directory entries at render time.
	NodeLookup func(model.NodeID) *model.Node

	ViewerID model.NodeID
	MapStyle string
	MapZoom  int

	Width          int
	ShowTimestamps bool

	theme *styles.Theme
}

// NewMessageList creates a new MessageList.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Width:          80,
		ShowTimestamps: true,
		theme:          theme,
	}
}

// SetWidth sets the list width.
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// View renders all messages.
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(2, 0)
		return emptyStyle.Render("No traffic on this channel yet.")
	}

	bubbles := make([]string, 0, len(ml.Messages))
	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		if ml.NodeLookup != nil {
			bubble.SenderNode = ml.NodeLookup(msg.Sender)
		}
		bubble.ViewerID = ml.ViewerID
		bubble.MapStyle = ml.MapStyle
		bubble.MapZoom = ml.MapZoom
		bubble.ShowTimestamp = ml.ShowTimestamps
		bubble.SetWidth(ml.Width)
		bubbles = append(bubbles, bubble.View())
	}

	return joinWithBlankLine(bubbles)
}

func joinWithBlankLine(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n\n"
		}
		out += p
	}
	return out
}
