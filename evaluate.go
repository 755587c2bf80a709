package casteljau

// DefaultSteps is the number of parameter steps used by EvaluateCurve.
// A curve sampled with n steps has n+1 samples, t = 0, 1/n, ..., 1.
const DefaultSteps = 100

// Reduce performs one level of de Casteljau's algorithm: for n > 1 points it
// returns the n-1 points (1-t)*P[i] + t*P[i+1].
// Sequences of length 0 or 1 are returned unchanged.
func Reduce(points []Point, t float64) []Point {
	if len(points) <= 1 {
		return points
	}
	next := make([]Point, len(points)-1)
	for i := range next {
		next[i] = points[i].Lerp(points[i+1], t)
	}
	return next
}

// Evaluate returns the point at parameter t on the Bézier curve defined by
// points, reducing the control polygon until a single point remains.
// The curve degree is len(points)-1.
//
// A single control point is returned as is. With no control points there is
// no curve and ok is false.
func Evaluate(points []Point, t float64) (p Point, ok bool) {
	switch len(points) {
	case 0:
		return Point{}, false
	case 1:
		return points[0], true
	}
	return Evaluate(Reduce(points, t), t)
}

// EvaluateCurve samples the curve defined by points at DefaultSteps+1 evenly
// spaced parameters from t=0 to t=1 inclusive.
// It returns nil when points is empty.
func EvaluateCurve(points []Point) Polyline {
	return EvaluateCurveSteps(points, DefaultSteps)
}

// EvaluateCurveSteps is like EvaluateCurve with a caller-chosen step count.
// Values of steps below 1 are treated as 1, which yields only the endpoints.
func EvaluateCurveSteps(points []Point, steps int) Polyline {
	var e Evaluator
	return e.Curve(points, steps)
}

// Evaluator evaluates curves using a reusable scratch buffer, so repeated
// sampling does not allocate one slice per recursion level.
//
// The zero value is ready to use. An Evaluator is not safe for concurrent use.
type Evaluator struct {
	buf []Point
}

// At returns the point at parameter t, with the same results as Evaluate.
func (e *Evaluator) At(points []Point, t float64) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	if cap(e.buf) < len(points) {
		e.buf = make([]Point, len(points))
	}
	buf := e.buf[:len(points)]
	copy(buf, points)
	return reduceInPlace(buf, t), true
}

// Curve samples points with the given number of steps into a fresh polyline.
func (e *Evaluator) Curve(points []Point, steps int) Polyline {
	if len(points) == 0 {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	out := make(Polyline, 0, steps+1)
	for i := 0; i <= steps; i++ {
		// Integer-indexed t keeps the last sample exactly at t=1.
		t := float64(i) / float64(steps)
		p, _ := e.At(points, t)
		out = append(out, p)
	}
	return out
}

// reduceInPlace overwrites buf level by level. buf[i] only reads buf[i+1],
// which is still from the previous level when buf[i] is written.
func reduceInPlace(buf []Point, t float64) Point {
	if len(buf) == 1 {
		return buf[0]
	}
	for i := 0; i < len(buf)-1; i++ {
		buf[i] = buf[i].Lerp(buf[i+1], t)
	}
	return reduceInPlace(buf[:len(buf)-1], t)
}
