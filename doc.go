// Package casteljau evaluates Bézier curves with de Casteljau's algorithm
// and collects their control points from pointer input.
//
// # Overview
//
// A curve of degree n is defined by n+1 control points. Evaluating it at a
// parameter t repeatedly replaces the control polygon by the points
// (1-t)*P[i] + t*P[i+1] until a single point remains:
//
//	p, ok := casteljau.Evaluate([]casteljau.Point{
//	    casteljau.Pt(0, 0, 0),
//	    casteljau.Pt(1, 1, 0),
//	    casteljau.Pt(2, 0, 0),
//	}, 0.5)
//	// p == (1, 0.5, 0)
//
// EvaluateCurve samples the whole curve into a Polyline that can be drawn as
// a line strip.
//
// # Sessions
//
// Session is the input state machine of the demo in cmd/casteljau: left
// clicks append points converted to normalized device coordinates, a right
// click locks the session and evaluates its curve once.
//
//	s := casteljau.NewSession()
//	vp := casteljau.Viewport{Width: 800, Height: 600}
//	s.HandleButton(casteljau.ButtonLeft, casteljau.Press, 100, 500, vp)
//	s.HandleButton(casteljau.ButtonLeft, casteljau.Press, 400, 100, vp)
//	s.HandleButton(casteljau.ButtonLeft, casteljau.Press, 700, 500, vp)
//	s.HandleButton(casteljau.ButtonRight, casteljau.Press, 0, 0, vp)
//	curve := s.Curve() // 101 samples
//
// # Logging
//
// The package is silent by default. Use SetLogger to enable log/slog output.
package casteljau
