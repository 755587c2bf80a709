// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewer binds a casteljau session to a gogpu window.
//
// Pointer and resize events from gpucontext are translated into session
// input; every frame the session is painted into a ggcanvas surface and
// drawn to the window.
//
//	gpucontext events -> Session -> render.Painter -> ggcanvas.Canvas -> window
package viewer
