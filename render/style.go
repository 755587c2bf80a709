// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/casteljau"
)

// Style holds the colors and sizes used by a Painter.
type Style struct {
	Background   gg.RGBA
	Curve        gg.RGBA
	LineWidth    float64
	Marker       gg.RGBA
	MarkerRadius float64
	Text         gg.RGBA
	TextSize     float64
}

// DefaultStyle returns the demo look: an orange curve on a dark teal
// background.
func DefaultStyle() Style {
	return Style{
		Background:   gg.RGB(0.2, 0.3, 0.3),
		Curve:        gg.RGB(1.0, 0.5, 0.2),
		LineWidth:    2,
		Marker:       gg.RGBA2(1, 1, 1, 0.8),
		MarkerRadius: 4,
		Text:         gg.RGBA2(1, 1, 1, 0.9),
		TextSize:     16,
	}
}

// NDCToPixel maps a point in normalized device coordinates to pixel
// coordinates of a width x height target (origin top-left, y down).
// It is the inverse of casteljau.Viewport.ToNDC.
func NDCToPixel(p casteljau.Point, width, height int) (x, y float64) {
	x = (p.X + 1) / 2 * float64(width)
	y = (1 - p.Y) / 2 * float64(height)
	return x, y
}
