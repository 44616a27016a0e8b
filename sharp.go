package tessdiff

// SharpTriangle flags a triangle whose minimum internal angle is at or
// below a configured threshold. Sharp triangles commonly reveal visual
// glitches in tessellated strokes, so they are worth surfacing even
// when both runs agree on the coordinates.
type SharpTriangle struct {
	PolylineIndex int
	TriangleIndex int
	Metrics       Metrics
}

// SharpTriangles scans a polyline sequence for triangles whose minimum
// internal angle is at or below maxAngleDeg. The scan runs over one
// dump independently, not pairwise; results follow polyline order,
// then triangle order within each polyline.
func SharpTriangles(polylines []*PolylineRecord, maxAngleDeg float64) []SharpTriangle {
	var results []SharpTriangle
	for _, poly := range polylines {
		for idx, tri := range poly.Triangles {
			metrics := tri.Metrics()
			if metrics.MinAngleDeg <= maxAngleDeg {
				results = append(results, SharpTriangle{
					PolylineIndex: poly.Index,
					TriangleIndex: idx,
					Metrics:       metrics,
				})
			}
		}
	}
	return results
}
