// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/casteljau"

// Snapshot is the part of a session a frame needs.
type Snapshot struct {
	State  casteljau.State
	Points []casteljau.Point
	Curve  casteljau.Polyline
}

// SnapshotOf captures the current state of s. The curve is only present
// once s is locked.
func SnapshotOf(s *casteljau.Session) Snapshot {
	return Snapshot{
		State:  s.State(),
		Points: s.Points(),
		Curve:  s.Curve(),
	}
}
