// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/casteljau"
	"github.com/gogpu/casteljau/render"
)

// ErrClosed is returned by Frame after Close.
var ErrClosed = errors.New("viewer: closed")

// surface is the part of ggcanvas.Canvas a Viewer uses.
type surface interface {
	Size() (width, height int)
	Resize(width, height int) error
	Draw(fn func(*gg.Context)) error
	RenderTo(dc gpucontext.TextureDrawer) error
	Close() error
}

// surfaceFactory creates a surface on the GPU device of provider.
type surfaceFactory func(provider gpucontext.DeviceProvider, width, height int) (surface, error)

func newCanvasSurface(provider gpucontext.DeviceProvider, width, height int) (surface, error) {
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Viewer owns the session of one window and draws it every frame.
//
// All methods must be called from the window's event loop.
type Viewer struct {
	session    *casteljau.Session
	painter    *render.Painter
	viewport   casteljau.Viewport
	newSurface surfaceFactory
	surface    surface
	frames     int
	closed     bool
}

// New creates a Viewer for a window of the given initial size.
func New(session *casteljau.Session, painter *render.Painter, vp casteljau.Viewport) *Viewer {
	return &Viewer{
		session:    session,
		painter:    painter,
		viewport:   vp,
		newSurface: newCanvasSurface,
	}
}

// Session returns the session driven by the viewer.
func (v *Viewer) Session() *casteljau.Session {
	return v.session
}

// Viewport returns the last known window size.
func (v *Viewer) Viewport() casteljau.Viewport {
	return v.viewport
}

// Frames returns the number of frames rendered so far.
func (v *Viewer) Frames() int {
	return v.frames
}

// HandlePress forwards a mouse press at window position (x, y).
func (v *Viewer) HandlePress(button gpucontext.MouseButton, x, y float64) bool {
	return v.session.HandleButton(mapButton(button), casteljau.Press, x, y, v.viewport)
}

// HandleRelease forwards a mouse release. Sessions ignore releases; the
// call exists so every pointer event takes the same path.
func (v *Viewer) HandleRelease(button gpucontext.MouseButton, x, y float64) bool {
	return v.session.HandleButton(mapButton(button), casteljau.Release, x, y, v.viewport)
}

// HandleResize records the new window size used for pointer conversion.
func (v *Viewer) HandleResize(width, height int) {
	vp := casteljau.Viewport{Width: width, Height: height}
	if vp == v.viewport {
		return
	}
	v.viewport = vp
	casteljau.Logger().Debug("viewer: resized", "width", width, "height", height)
}

// Frame paints the session and draws it to td. width and height are the
// window size of the current frame in the pointer's units; they also become
// the viewport for later presses. A zero size skips the frame.
//
// A failing canvas is reported but does not make the viewer unusable:
// the next Frame tries again.
func (v *Viewer) Frame(provider gpucontext.DeviceProvider, td gpucontext.TextureDrawer, width, height int) error {
	if v.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	v.HandleResize(width, height)

	if v.surface == nil {
		if provider == nil {
			return nil
		}
		s, err := v.newSurface(provider, width, height)
		if err != nil {
			return fmt.Errorf("viewer: create canvas %dx%d: %w", width, height, err)
		}
		v.surface = s
		casteljau.Logger().Info("viewer: canvas created", "width", width, "height", height)
	}

	if cw, ch := v.surface.Size(); cw != width || ch != height {
		if err := v.surface.Resize(width, height); err != nil {
			return fmt.Errorf("viewer: resize canvas to %dx%d: %w", width, height, err)
		}
		casteljau.Logger().Debug("viewer: canvas resized", "width", width, "height", height)
	}

	var paintErr error
	err := v.surface.Draw(func(dc *gg.Context) {
		_, paintErr = v.painter.Paint(dc, render.SnapshotOf(v.session))
	})
	if err != nil {
		return fmt.Errorf("viewer: draw: %w", err)
	}
	if paintErr != nil {
		return fmt.Errorf("viewer: paint: %w", paintErr)
	}

	if err := v.surface.RenderTo(td); err != nil {
		return fmt.Errorf("viewer: frame %d: render: %w", v.frames, err)
	}
	v.frames++
	return nil
}

// Close releases the canvas. It is safe to call more than once.
func (v *Viewer) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	if v.surface == nil {
		return nil
	}
	err := v.surface.Close()
	v.surface = nil
	return err
}

func mapButton(b gpucontext.MouseButton) casteljau.Button {
	switch b {
	case gpucontext.MouseButtonLeft:
		return casteljau.ButtonLeft
	case gpucontext.MouseButtonRight:
		return casteljau.ButtonRight
	default:
		return casteljau.ButtonOther
	}
}
