// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws a casteljau session onto a gg drawing context.
//
// The data flow per frame is:
//
//	casteljau.Session -> Snapshot -> Painter.Paint -> gg.Context
//
// Control points and curve samples live in normalized device coordinates;
// the painter maps them to pixels of the target context, draws the control
// points as markers and the curve as a single stroked line strip.
//
// A Painter is NOT safe for concurrent use.
package render
