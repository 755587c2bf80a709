package casteljau

import "log/slog"

// State is the input state of a Session.
type State uint8

const (
	// Collecting accepts left clicks as new control points.
	Collecting State = iota
	// Locked freezes the control points and exposes the evaluated curve.
	Locked
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonOther is any button without a meaning in a Session.
	ButtonOther Button = iota
	// ButtonLeft appends a control point.
	ButtonLeft
	// ButtonRight locks the session.
	ButtonRight
)

// Action is what happened to a button.
type Action uint8

const (
	// Press is a button going down. Only presses are acted upon.
	Press Action = iota
	// Release is a button going up.
	Release
)

// Viewport is the current window size in the same pixel units as the
// pointer position.
type Viewport struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ToNDC converts a pixel position (origin top-left, y down) to normalized
// device coordinates (origin center, y up) with Z = 0.
// Positions outside the viewport are clamped to [-1, 1].
func (v Viewport) ToNDC(px, py float64) Point {
	p := Point{
		X: 2*px/float64(v.Width) - 1,
		Y: 1 - 2*py/float64(v.Height),
	}
	return p.Clamp()
}

// Session collects control points from pointer input and, once locked,
// holds the curve they define.
//
// A Session starts in the Collecting state. Left presses append points;
// the first right press locks the session and evaluates the curve once.
// Presses in the Locked state are ignored until Reset.
//
// A Session is owned by the event loop and is not safe for concurrent use.
type Session struct {
	state  State
	points []Point
	curve  Polyline
	steps  int
	eval   Evaluator
}

// NewSession creates an empty session in the Collecting state.
func NewSession(opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		state: Collecting,
		steps: o.steps,
	}
}

// HandleButton applies a pointer button event at pixel position (px, py)
// and reports whether the session changed.
func (s *Session) HandleButton(b Button, a Action, px, py float64, vp Viewport) bool {
	if a != Press || s.state != Collecting {
		return false
	}
	switch b {
	case ButtonLeft:
		if !vp.Valid() {
			Logger().Warn("casteljau: ignoring click with empty viewport",
				"width", vp.Width, "height", vp.Height)
			return false
		}
		s.Append(vp.ToNDC(px, py))
		return true
	case ButtonRight:
		s.Lock()
		return true
	default:
		return false
	}
}

// Append adds a control point while collecting and reports whether it was
// added. The point is clamped to [-1, 1] on every axis.
func (s *Session) Append(p Point) bool {
	if s.state != Collecting {
		return false
	}
	p = p.Clamp()
	s.points = append(s.points, p)
	Logger().Info("casteljau: added point",
		slog.Float64("x", p.X), slog.Float64("y", p.Y), slog.Float64("z", p.Z),
		slog.Int("count", len(s.points)))
	return true
}

// Lock freezes the control points and evaluates the curve.
// Locking a locked session does nothing.
func (s *Session) Lock() {
	if s.state == Locked {
		return
	}
	s.state = Locked
	s.curve = s.eval.Curve(s.points, s.steps)
	Logger().Info("casteljau: locked",
		slog.Int("points", len(s.points)),
		slog.Int("samples", len(s.curve)))
}

// Reset discards the control points and the curve and returns to Collecting.
func (s *Session) Reset() {
	s.state = Collecting
	s.points = nil
	s.curve = nil
	Logger().Info("casteljau: reset")
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Locked reports whether the session is in the Locked state.
func (s *Session) Locked() bool {
	return s.state == Locked
}

// Steps returns the step count used to evaluate the curve.
func (s *Session) Steps() int {
	return s.steps
}

// Points returns a copy of the control points in insertion order.
func (s *Session) Points() []Point {
	if len(s.points) == 0 {
		return nil
	}
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of control points.
func (s *Session) Len() int {
	return len(s.points)
}

// Curve returns the curve evaluated when the session was locked.
// It is nil while collecting and for a session locked without points.
// The returned polyline is shared; callers must not modify it.
func (s *Session) Curve() Polyline {
	return s.curve
}
