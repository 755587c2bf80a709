// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/casteljau"
)

// ErrNilContext is returned by Paint when no drawing context is given.
var ErrNilContext = errors.New("render: nil drawing context")

// Stats describes what a Paint call drew.
type Stats struct {
	// Markers is the number of control-point markers filled.
	Markers int
	// Samples is the number of curve samples in the stroked line strip.
	Samples int
	// Strokes is the number of draw calls issued for the curve (0 or 1).
	// A curve whose samples all coincide is filled as a dot of the line
	// width instead of stroked.
	Strokes int
}

// PainterOption configures a Painter during creation.
type PainterOption func(*painterOptions)

type painterOptions struct {
	style   Style
	face    text.Face
	status  bool
	markers bool
	lang    language.Tag
}

func defaultPainterOptions() painterOptions {
	return painterOptions{
		style:   DefaultStyle(),
		status:  true,
		markers: true,
		lang:    language.English,
	}
}

// WithStyle sets the colors and sizes.
func WithStyle(s Style) PainterOption {
	return func(o *painterOptions) {
		o.style = s
	}
}

// WithFace sets the face used for the status line.
// Without it the painter loads Go Regular at Style.TextSize.
func WithFace(face text.Face) PainterOption {
	return func(o *painterOptions) {
		o.face = face
	}
}

// WithStatus enables or disables the status line.
func WithStatus(enabled bool) PainterOption {
	return func(o *painterOptions) {
		o.status = enabled
	}
}

// WithMarkers enables or disables control-point markers.
func WithMarkers(enabled bool) PainterOption {
	return func(o *painterOptions) {
		o.markers = enabled
	}
}

// WithLanguage sets the language used to format the status line.
func WithLanguage(tag language.Tag) PainterOption {
	return func(o *painterOptions) {
		o.lang = tag
	}
}

// Painter draws session snapshots onto a gg.Context.
type Painter struct {
	style   Style
	face    text.Face
	status  bool
	markers bool
	printer *message.Printer
}

// NewPainter creates a Painter. It fails only when the status line is
// enabled and the default font cannot be parsed.
func NewPainter(opts ...PainterOption) (*Painter, error) {
	o := defaultPainterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Painter{
		style:   o.style,
		face:    o.face,
		status:  o.status,
		markers: o.markers,
		printer: message.NewPrinter(o.lang),
	}
	if p.status && p.face == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: load default font: %w", err)
		}
		p.face = src.Face(o.style.TextSize)
	}
	return p, nil
}

// Style returns the painter's style.
func (p *Painter) Style() Style {
	return p.style
}

// Paint clears dc and draws s onto it.
//
// The curve is drawn as one open path through all samples, the equivalent
// of a line strip. An empty curve issues no stroke; a curve of zero length
// is drawn as a dot.
func (p *Painter) Paint(dc *gg.Context, s Snapshot) (Stats, error) {
	var stats Stats
	if dc == nil {
		return stats, ErrNilContext
	}
	w, h := dc.Width(), dc.Height()
	st := p.style

	dc.ClearWithColor(st.Background)

	if p.markers {
		setColor(dc, st.Marker)
		for _, pt := range s.Points {
			x, y := NDCToPixel(pt, w, h)
			dc.DrawCircle(x, y, st.MarkerRadius)
			if err := dc.Fill(); err != nil {
				return stats, fmt.Errorf("render: fill marker: %w", err)
			}
			stats.Markers++
		}
	}

	switch {
	case s.Curve.Empty():
	case s.Curve.Length() == 0:
		// All samples coincide; a stroke of zero length paints nothing.
		setColor(dc, st.Curve)
		x, y := NDCToPixel(s.Curve[0], w, h)
		dc.DrawCircle(x, y, st.LineWidth/2)
		if err := dc.Fill(); err != nil {
			return stats, fmt.Errorf("render: fill degenerate curve: %w", err)
		}
		stats.Strokes = 1
		stats.Samples = s.Curve.Len()
	default:
		setColor(dc, st.Curve)
		dc.SetLineWidth(st.LineWidth)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		for i, pt := range s.Curve {
			x, y := NDCToPixel(pt, w, h)
			if i == 0 {
				dc.MoveTo(x, y)
				continue
			}
			dc.LineTo(x, y)
		}
		if err := dc.Stroke(); err != nil {
			return stats, fmt.Errorf("render: stroke curve: %w", err)
		}
		stats.Strokes = 1
		stats.Samples = s.Curve.Len()
		casteljau.Logger().Debug("render: curve stroked", "samples", stats.Samples)
	}

	if p.status && p.face != nil {
		dc.SetFont(p.face)
		setColor(dc, st.Text)
		dc.DrawString(p.StatusLine(s), 10, 10+st.TextSize)
	}
	return stats, nil
}

// StatusLine returns the text shown at the top of the frame.
func (p *Painter) StatusLine(s Snapshot) string {
	if s.State == casteljau.Locked {
		return p.printer.Sprintf("Degree %d curve | control points: %d | samples: %d",
			max(len(s.Points)-1, 0), len(s.Points), s.Curve.Len())
	}
	return p.printer.Sprintf("Control points: %d | left click adds a point, right click draws the curve",
		len(s.Points))
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
