// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/casteljau"
)

func newTestPainter(t *testing.T, opts ...PainterOption) *Painter {
	t.Helper()
	p, err := NewPainter(append([]PainterOption{WithStatus(false)}, opts...)...)
	if err != nil {
		t.Fatalf("NewPainter() error = %v", err)
	}
	return p
}

// rgb8 returns the 8-bit color of pixel (x, y).
func rgb8(dc *gg.Context, x, y int) (r, g, b uint8) {
	cr, cg, cb, _ := dc.Image().At(x, y).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

func near(a, b uint8) bool {
	return math.Abs(float64(a)-float64(b)) <= 3
}

func TestNDCToPixel(t *testing.T) {
	tests := []struct {
		p    casteljau.Point
		x, y float64
	}{
		{casteljau.Pt(-1, 1, 0), 0, 0},
		{casteljau.Pt(1, -1, 0), 200, 100},
		{casteljau.Pt(0, 0, 0), 100, 50},
		{casteljau.Pt(0.5, 0.5, 0), 150, 25},
	}
	for _, tt := range tests {
		x, y := NDCToPixel(tt.p, 200, 100)
		if x != tt.x || y != tt.y {
			t.Errorf("NDCToPixel(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestNDCToPixel_RoundTrip(t *testing.T) {
	vp := casteljau.Viewport{Width: 1600, Height: 1200}
	for _, px := range [][2]float64{{0, 0}, {123, 456}, {1600, 1200}, {800, 600}} {
		x, y := NDCToPixel(vp.ToNDC(px[0], px[1]), vp.Width, vp.Height)
		if math.Abs(x-px[0]) > 1e-9 || math.Abs(y-px[1]) > 1e-9 {
			t.Errorf("round trip of %v = (%v, %v)", px, x, y)
		}
	}
}

func TestPaint_NilContext(t *testing.T) {
	p := newTestPainter(t)
	if _, err := p.Paint(nil, Snapshot{}); !errors.Is(err, ErrNilContext) {
		t.Errorf("Paint(nil) error = %v, want ErrNilContext", err)
	}
}

func TestPaint_EmptyCurveIssuesNoStroke(t *testing.T) {
	dc := gg.NewContext(200, 100)
	p := newTestPainter(t)

	stats, err := p.Paint(dc, Snapshot{State: casteljau.Locked})
	if err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if stats.Strokes != 0 || stats.Samples != 0 {
		t.Errorf("Paint() stats = %+v, want no stroke", stats)
	}

	bg := DefaultStyle().Background.Color()
	wr, wg, wb, _ := bg.RGBA()
	r, g, b := rgb8(dc, 100, 50)
	if !near(r, uint8(wr>>8)) || !near(g, uint8(wg>>8)) || !near(b, uint8(wb>>8)) {
		t.Errorf("center pixel = (%d, %d, %d), want background", r, g, b)
	}
}

func TestPaint_CurveStroke(t *testing.T) {
	dc := gg.NewContext(200, 100)
	style := DefaultStyle()
	style.LineWidth = 6
	p := newTestPainter(t, WithStyle(style), WithMarkers(false))

	points := []casteljau.Point{casteljau.Pt(-0.8, 0, 0), casteljau.Pt(0.8, 0, 0)}
	snap := Snapshot{
		State:  casteljau.Locked,
		Points: points,
		Curve:  casteljau.EvaluateCurve(points),
	}
	stats, err := p.Paint(dc, snap)
	if err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if stats.Strokes != 1 {
		t.Errorf("Strokes = %d, want 1", stats.Strokes)
	}
	if stats.Samples != casteljau.DefaultSteps+1 {
		t.Errorf("Samples = %d, want %d", stats.Samples, casteljau.DefaultSteps+1)
	}
	if stats.Markers != 0 {
		t.Errorf("Markers = %d with markers disabled, want 0", stats.Markers)
	}

	r, g, b := rgb8(dc, 100, 50)
	if r < 200 || g < 100 || g > 160 || b > 90 {
		t.Errorf("pixel on curve = (%d, %d, %d), want curve orange", r, g, b)
	}
	r, g, b = rgb8(dc, 100, 10)
	if r > 80 {
		t.Errorf("pixel off curve = (%d, %d, %d), want background", r, g, b)
	}
}

func TestPaint_Markers(t *testing.T) {
	dc := gg.NewContext(200, 100)
	p := newTestPainter(t)

	snap := Snapshot{
		State:  casteljau.Collecting,
		Points: []casteljau.Point{casteljau.Pt(0, 0, 0), casteljau.Pt(0.5, 0.5, 0)},
	}
	stats, err := p.Paint(dc, snap)
	if err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if stats.Markers != 2 {
		t.Errorf("Markers = %d, want 2", stats.Markers)
	}
	if stats.Strokes != 0 {
		t.Errorf("Strokes = %d while collecting, want 0", stats.Strokes)
	}
	r, _, _ := rgb8(dc, 100, 50)
	if r < 150 {
		t.Errorf("marker pixel red = %d, want a light marker", r)
	}
}

func TestPaint_DegenerateCurve(t *testing.T) {
	tests := []struct {
		name  string
		curve casteljau.Polyline
	}{
		{"one control point", casteljau.EvaluateCurve([]casteljau.Point{casteljau.Pt(0, 0, 0)})},
		{"one sample", casteljau.Polyline{casteljau.Pt(0, 0, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := gg.NewContext(50, 50)
			style := DefaultStyle()
			style.LineWidth = 8
			p := newTestPainter(t, WithStyle(style), WithMarkers(false))

			stats, err := p.Paint(dc, Snapshot{State: casteljau.Locked, Curve: tt.curve})
			if err != nil {
				t.Fatalf("Paint() error = %v", err)
			}
			if stats.Strokes != 1 || stats.Samples != tt.curve.Len() {
				t.Errorf("Paint() stats = %+v, want one draw call of %d samples", stats, tt.curve.Len())
			}

			r, g, b := rgb8(dc, 25, 25)
			if r < 200 || g < 100 || g > 160 || b > 90 {
				t.Errorf("center pixel = (%d, %d, %d), want curve orange", r, g, b)
			}
			r, _, _ = rgb8(dc, 2, 2)
			if r > 80 {
				t.Errorf("corner pixel red = %d, want background", r)
			}
		})
	}
}

func TestPaint_WithStatus(t *testing.T) {
	p, err := NewPainter()
	if err != nil {
		t.Fatalf("NewPainter() error = %v", err)
	}
	dc := gg.NewContext(400, 100)
	if _, err := p.Paint(dc, Snapshot{State: casteljau.Collecting}); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
}

func TestStatusLine(t *testing.T) {
	p := newTestPainter(t, WithLanguage(language.English))

	collecting := p.StatusLine(Snapshot{
		State:  casteljau.Collecting,
		Points: make([]casteljau.Point, 3),
	})
	if !strings.HasPrefix(collecting, "Control points: 3 |") {
		t.Errorf("collecting status = %q", collecting)
	}

	curve := make(casteljau.Polyline, 1001)
	locked := p.StatusLine(Snapshot{
		State:  casteljau.Locked,
		Points: make([]casteljau.Point, 4),
		Curve:  curve,
	})
	if want := "Degree 3 curve | control points: 4 | samples: 1,001"; locked != want {
		t.Errorf("locked status = %q, want %q", locked, want)
	}

	empty := p.StatusLine(Snapshot{State: casteljau.Locked})
	if !strings.HasPrefix(empty, "Degree 0 curve | control points: 0 |") {
		t.Errorf("empty locked status = %q", empty)
	}
}

func TestSnapshotOf(t *testing.T) {
	s := casteljau.NewSession(casteljau.WithSteps(4))
	s.Append(casteljau.Pt(-0.5, 0, 0))
	s.Append(casteljau.Pt(0.5, 0, 0))

	snap := SnapshotOf(s)
	if snap.State != casteljau.Collecting || len(snap.Points) != 2 || snap.Curve != nil {
		t.Errorf("SnapshotOf(collecting) = %+v", snap)
	}

	s.Lock()
	snap = SnapshotOf(s)
	if snap.State != casteljau.Locked || snap.Curve.Len() != 5 {
		t.Errorf("SnapshotOf(locked) = %+v", snap)
	}
}
