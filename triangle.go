package tessdiff

import "math"

// Triangle is an ordered triple of vertices. Vertex order is significant
// for positional comparison but not for metrics: area and angles are the
// same under any rotation or reflection of the vertex list.
type Triangle [3]Point

// Metrics holds derived per-triangle measurements. It is recomputed on
// demand rather than cached on the triangle.
type Metrics struct {
	// Area is the triangle area, always non-negative. Zero for
	// collinear or otherwise degenerate vertices.
	Area float64

	// MinAngleDeg is the smallest internal angle in degrees. For a
	// valid triangle it lies in [0, 60]; a degenerate triangle with a
	// zero-length edge reports exactly 0.
	MinAngleDeg float64

	// EdgeLengths are the lengths of edges AB, BC, CA in that order.
	EdgeLengths [3]float64
}

// Metrics computes the area, minimum internal angle and edge lengths of
// the triangle.
func (t Triangle) Metrics() Metrics {
	a, b, c := t[0], t[1], t[2]
	ab := a.Distance(b)
	bc := b.Distance(c)
	ca := c.Distance(a)
	area := 0.5 * math.Abs(b.Sub(a).Cross(c.Sub(a)))
	return Metrics{
		Area:        area,
		MinAngleDeg: minInternalAngle(ab, bc, ca),
		EdgeLengths: [3]float64{ab, bc, ca},
	}
}

// internalAngles returns the three internal angles in radians, one per
// vertex, computed from the edge lengths via the law of cosines. The
// cosine argument is clamped to [-1, 1] to absorb rounding that would
// otherwise push it outside the acos domain. An angle whose adjacent
// edges include a zero-length edge is reported as 0 rather than
// dividing by zero.
func internalAngles(ab, bc, ca float64) [3]float64 {
	sides := [3]float64{ab, bc, ca}
	var angles [3]float64
	for i := range sides {
		opposite := sides[i]
		b := sides[(i+1)%3]
		c := sides[(i+2)%3]
		if b == 0 || c == 0 {
			angles[i] = 0
			continue
		}
		cos := (b*b + c*c - opposite*opposite) / (2 * b * c)
		cos = math.Max(-1, math.Min(1, cos))
		angles[i] = math.Acos(cos)
	}
	return angles
}

// minInternalAngle returns the smallest internal angle in degrees for a
// triangle with the given edge lengths.
func minInternalAngle(ab, bc, ca float64) float64 {
	angles := internalAngles(ab, bc, ca)
	min := angles[0]
	for _, a := range angles[1:] {
		if a < min {
			min = a
		}
	}
	return min * 180 / math.Pi
}
