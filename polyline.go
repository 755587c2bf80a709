package casteljau

// Polyline is an ordered sequence of curve samples in increasing-t order.
// Consecutive samples are connected by straight segments (a line strip).
type Polyline []Point

// Len returns the number of samples.
func (pl Polyline) Len() int {
	return len(pl)
}

// Empty reports whether the polyline has no samples. An empty polyline has
// nothing to draw.
func (pl Polyline) Empty() bool {
	return len(pl) == 0
}

// Length returns the sum of the segment lengths. A curve of a single
// control point has length 0: every sample is the same point.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}
