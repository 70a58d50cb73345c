// Copyright (c) 2025 Meshway Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the meshway TUI.
package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meshway/meshway-tui/internal/model"
	"github.com/meshway/meshway-tui/internal/ui/styles"
	"github.com/meshway/meshway-tui/internal/util"
)

// =============================================================================
// MAP VIEW COMPONENT - Schematic map box with waypoint markers
// =============================================================================

// There is no tile rendering here: the map is a schematic box with a
// graticule and projected markers, enough to show where waypoints sit
// relative to each other. Rendering is a pure function of the inputs.

// MapMarker is a waypoint overlay on the map.
type MapMarker struct {
	ID    string
	Label string
	Lat   float64
	Lon   float64
}

// MapView renders a map box centered on a coordinate.
type MapView struct {
	// Style is the named map style from the map configuration.
	Style string
	// Zoom sets the degree span of the box (higher = tighter).
	Zoom int

	CenterLat float64
	CenterLon float64

	// Width is the outer width; Height the inner grid height in rows.
	Width  int
	Height int

	// Markers are projected onto the grid; ones outside the span are dropped.
	Markers []MapMarker
	// ActiveID highlights one marker with the active glyph and colorway.
	ActiveID string

	// Interactive adds the marker legend under the box. Previews embedded
	// in message bubbles are non-interactive and skip it.
	Interactive bool

	theme *styles.Theme
}

const (
	previewHeight = 5
	minMapWidth   = 24

	markerGlyph = "*"
	activeGlyph = "@"
	gridGlyph   = "."
)

// NewMapPreview creates the small non-interactive preview embedded in
// waypoint message bubbles, centered on the waypoint itself.
func NewMapPreview(theme *styles.Theme, style string, zoom int, wp model.WaypointPayload) *MapView {
	return &MapView{
		Style:     style,
		Zoom:      zoom,
		CenterLat: wp.Latitude,
		CenterLon: wp.Longitude,
		Width:     minMapWidth,
		Height:    previewHeight,
		Markers: []MapMarker{
			{ID: wp.ID, Label: wp.Name, Lat: wp.Latitude, Lon: wp.Longitude},
		},
		ActiveID:    wp.ID,
		Interactive: false,
		theme:       theme,
	}
}

// NewMapView creates the full map screen view.
func NewMapView(theme *styles.Theme, style string, zoom int, centerLat, centerLon float64) *MapView {
	return &MapView{
		Style:       style,
		Zoom:        zoom,
		CenterLat:   centerLat,
		CenterLon:   centerLon,
		Width:       minMapWidth,
		Height:      previewHeight,
		Interactive: true,
		theme:       theme,
	}
}

// SetSize sets the outer width and inner grid height.
func (v *MapView) SetSize(width, height int) {
	v.Width = width
	v.Height = height
}

// View renders the map box.
func (v *MapView) View() string {
	width := v.Width
	if width < minMapWidth {
		width = minMapWidth
	}
	height := v.Height
	if height < 3 {
		height = 3
	}

	// Inner grid excludes the rounded border.
	innerW := width - 2
	innerH := height

	grid := v.renderGrid(innerW, innerH)
	box := v.theme.MapBox.Render(grid)

	badge := v.theme.MapStyleBadge.Render(v.Style + " z" + util.Itoa(v.Zoom))
	coords := v.theme.MapCoords.Render(FormatCoords(v.CenterLat, v.CenterLon))
	header := lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", coords)

	parts := []string{header, box}
	if v.Interactive {
		if legend := v.renderLegend(innerW); legend != "" {
			parts = append(parts, legend)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderGrid draws the graticule and projects the markers.
func (v *MapView) renderGrid(innerW, innerH int) string {
	// Degree span across the box halves with each zoom step. Rows count
	// double: terminal cells are roughly twice as tall as wide.
	lonSpan := 360.0 / math.Exp2(float64(v.Zoom))
	latSpan := lonSpan * 2.0 * float64(innerH) / float64(innerW)

	type cell struct {
		glyph string
		style lipgloss.Style
	}

	rows := make([][]cell, innerH)
	for y := range rows {
		rows[y] = make([]cell, innerW)
		for x := range rows[y] {
			if x%6 == 2 && y%2 == 1 {
				rows[y][x] = cell{gridGlyph, v.theme.MapGridDot}
			} else {
				rows[y][x] = cell{" ", lipgloss.NewStyle()}
			}
		}
	}

	for _, m := range v.Markers {
		dx := (m.Lon - v.CenterLon) / lonSpan
		dy := (m.Lat - v.CenterLat) / latSpan
		x := innerW/2 + int(math.Round(dx*float64(innerW)))
		y := innerH/2 - int(math.Round(dy*float64(innerH)))
		if x < 0 || x >= innerW || y < 0 || y >= innerH {
			continue
		}
		if m.ID == v.ActiveID {
			rows[y][x] = cell{activeGlyph, v.theme.MapMarkerActive}
		} else {
			rows[y][x] = cell{markerGlyph, v.theme.MapMarkerGlyph}
		}
	}

	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteString("\n")
		}
		for _, c := range row {
			b.WriteString(c.style.Render(c.glyph))
		}
	}
	return b.String()
}

// renderLegend lists the markers under the map, active one first glyph.
func (v *MapView) renderLegend(width int) string {
	if len(v.Markers) == 0 {
		return v.theme.MapCoords.Render("No waypoints reported yet.")
	}

	var lines []string
	for _, m := range v.Markers {
		glyph := v.theme.MapMarkerGlyph.Render(markerGlyph)
		if m.ID == v.ActiveID {
			glyph = v.theme.MapMarkerActive.Render(activeGlyph)
		}
		label := m.Label
		if label == "" {
			label = "(unnamed)"
		}
		entry := glyph + " " + util.TruncateWidth(label, width/2) + "  " +
			v.theme.MapCoords.Render(FormatCoords(m.Lat, m.Lon))
		lines = append(lines, entry)
	}
	return strings.Join(lines, "\n")
}
