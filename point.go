package casteljau

import "math"

// Point represents a 3D point in normalized device coordinates.
// Control points and curve samples share this type.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Lerp performs linear interpolation between two points as (1-t)*p + t*q,
// applied to each component independently.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*p.X + t*q.X,
		Y: mt*p.Y + t*q.Y,
		Z: mt*p.Z + t*q.Z,
	}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Approx reports whether p and q are within epsilon on every component.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon
}

// Clamp returns p with every component limited to [-1, 1].
func (p Point) Clamp() Point {
	return Point{X: clampUnit(p.X), Y: clampUnit(p.Y), Z: clampUnit(p.Z)}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
