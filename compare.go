package tessdiff

import "math"

// TriangleDiff records the deviation between the reference and
// candidate triangle at one shared index position. The raw vertex
// triples of both runs are retained for reporting.
type TriangleDiff struct {
	// TriangleIndex is the shared position in both triangle sequences.
	// It is positional, not taken from any index printed in the dumps.
	TriangleIndex int

	// MaxVertexDelta is the largest Euclidean distance among the three
	// positionally paired vertices.
	MaxVertexDelta float64

	// MaxCoordDelta is the largest single-axis absolute difference
	// across all vertex pairs and both axes.
	MaxCoordDelta float64

	ReferenceArea     float64
	CandidateArea     float64
	ReferenceMinAngle float64
	CandidateMinAngle float64

	Reference Triangle
	Candidate Triangle
}

// ComparePolylines compares one reference/candidate polyline pair and
// returns a diff for every triangle position whose maximum per-vertex
// delta exceeds tolerance, in index order.
//
// The comparison range is min(maxTriangles, len(reference.Triangles),
// len(candidate.Triangles)); maxTriangles <= 0 means no cap. Extra
// triangles in the longer sequence are ignored, never reported as
// missing.
//
// Vertex correspondence is strictly positional: vertex 0 against
// vertex 0 and so on, in declared order. A triangle whose vertices are
// listed rotated or reflected between the two runs reports as a full
// mismatch even if geometrically identical; this is an accepted
// limitation of the positional semantics, not something the comparator
// tries to repair.
func ComparePolylines(reference, candidate *PolylineRecord, tolerance float64, maxTriangles int) []TriangleDiff {
	limit := min(len(reference.Triangles), len(candidate.Triangles))
	if maxTriangles > 0 && maxTriangles < limit {
		limit = maxTriangles
	}

	var diffs []TriangleDiff
	for idx := 0; idx < limit; idx++ {
		refTri := reference.Triangles[idx]
		candTri := candidate.Triangles[idx]

		maxVertex, maxCoord := triangleDelta(refTri, candTri)
		if maxVertex <= tolerance {
			continue
		}

		refMetrics := refTri.Metrics()
		candMetrics := candTri.Metrics()
		diffs = append(diffs, TriangleDiff{
			TriangleIndex:     idx,
			MaxVertexDelta:    maxVertex,
			MaxCoordDelta:     maxCoord,
			ReferenceArea:     refMetrics.Area,
			CandidateArea:     candMetrics.Area,
			ReferenceMinAngle: refMetrics.MinAngleDeg,
			CandidateMinAngle: candMetrics.MinAngleDeg,
			Reference:         refTri,
			Candidate:         candTri,
		})
	}
	return diffs
}

// triangleDelta returns the maximum per-vertex Euclidean distance and
// the maximum single-axis coordinate difference between two triangles,
// pairing vertices positionally.
func triangleDelta(a, b Triangle) (maxVertex, maxCoord float64) {
	for i := range a {
		dx := math.Abs(a[i].X - b[i].X)
		dy := math.Abs(a[i].Y - b[i].Y)
		maxCoord = math.Max(maxCoord, math.Max(dx, dy))
		maxVertex = math.Max(maxVertex, math.Hypot(dx, dy))
	}
	return maxVertex, maxCoord
}
