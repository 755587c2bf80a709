// Command casteljau is an interactive Bézier curve demo.
//
// Left click places control points, right click draws the curve they define,
// evaluated with de Casteljau's algorithm. Once drawn, the curve is final.
//
// Architecture:
//
//	gpucontext events -> casteljau.Session -> render.Painter -> ggcanvas -> window
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/casteljau"
	"github.com/gogpu/casteljau/internal/viewer"
	"github.com/gogpu/casteljau/render"
)

func main() {
	var (
		width  = flag.Int("width", 1600, "window width")
		height = flag.Int("height", 1200, "window height")
		title  = flag.String("title", "Bézier curve (de Casteljau)", "window title")
		steps  = flag.Int("steps", casteljau.DefaultSteps, "parameter steps per curve")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*debug)
	casteljau.SetLogger(logger)
	gg.SetLogger(logger)

	painter, err := render.NewPainter()
	if err != nil {
		logger.Error("create painter", "err", err)
		os.Exit(1)
	}

	session := casteljau.NewSession(casteljau.WithSteps(*steps))
	v := viewer.New(session, painter, casteljau.Viewport{Width: *width, Height: *height})

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(*title).
		WithSize(*width, *height))

	events := app.EventSource()
	events.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		v.HandlePress(button, x, y)
	})
	events.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
		v.HandleRelease(button, x, y)
	})

	// gogpu reports window resizes through the App, not the event source.
	app.OnResize(v.HandleResize)

	app.OnDraw(func(dc *gogpu.Context) {
		if v.Frames() == 0 {
			logger.Info("backend", "name", dc.Backend())
		}
		if err := v.Frame(app.GPUContextProvider(), dc.AsTextureDrawer(), dc.Width(), dc.Height()); err != nil {
			logger.Warn("frame skipped", "err", err)
		}
	})

	app.OnClose(func() {
		if err := v.Close(); err != nil {
			logger.Warn("close viewer", "err", err)
		}
		gg.CloseAccelerator()
	})

	logger.Info("started", "width", *width, "height", *height, "steps", session.Steps())
	if err := app.Run(); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
