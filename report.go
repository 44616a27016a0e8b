package tessdiff

// CompareOptions configures a whole-dump comparison. The zero value
// compares every polyline with a zero tolerance and flags only
// fully degenerate (zero-angle) triangles as sharp.
type CompareOptions struct {
	// Tolerance is the maximum allowed per-vertex Euclidean distance
	// before a triangle is reported as mismatched.
	Tolerance float64

	// MaxTriangles caps how many triangles are compared per polyline.
	// Zero or negative means no cap.
	MaxTriangles int

	// SharpAngleDeg flags triangles whose minimum internal angle is at
	// or below this many degrees, in either run. Negative disables the
	// sharp scan.
	SharpAngleDeg float64

	// Limit keeps only the first N polylines of each dump after
	// offsets are applied. Zero or negative means all.
	Limit int

	// ReferenceOffset and CandidateOffset skip that many polylines at
	// the start of the respective dump, applied independently.
	ReferenceOffset int
	CandidateOffset int
}

// PolylineDiffs groups the triangle diffs of one compared polyline
// pair. Only pairs with at least one diff appear in a Report.
type PolylineDiffs struct {
	// PolylineIndex is the pair's position within the narrowed shared
	// range.
	PolylineIndex int

	Reference *PolylineRecord
	Candidate *PolylineRecord
	Diffs     []TriangleDiff
}

// Report is the outcome of a whole-dump comparison.
type Report struct {
	// Reference and Candidate are the narrowed polyline sequences the
	// comparison actually ran over (offsets and limit applied).
	Reference []*PolylineRecord
	Candidate []*PolylineRecord

	// SharedCount is the number of polyline pairs compared: the
	// shorter of the two narrowed sequences.
	SharedCount int

	// Polylines lists, in order, each compared pair that produced at
	// least one triangle diff.
	Polylines []PolylineDiffs

	// TotalMismatched is the total number of triangle diffs across all
	// pairs.
	TotalMismatched int

	// SharpReference and SharpCandidate list sharp triangles found in
	// each dump over the shared range. Nil when the sharp scan is
	// disabled.
	SharpReference []SharpTriangle
	SharpCandidate []SharpTriangle
}

// CompareDumps narrows both polyline sequences per opts, compares them
// pair by pair over the shared range, and runs the sharp-triangle scan
// on each side. A length mismatch between the narrowed sequences is
// not an error; comparison covers the shared prefix and the caller can
// inspect the narrowed lengths to warn about the difference.
func CompareDumps(reference, candidate []*PolylineRecord, opts CompareOptions) Report {
	ref := narrowPolylines(reference, opts.ReferenceOffset, opts.Limit)
	cand := narrowPolylines(candidate, opts.CandidateOffset, opts.Limit)

	shared := min(len(ref), len(cand))
	report := Report{
		Reference:   ref,
		Candidate:   cand,
		SharedCount: shared,
	}

	for idx := 0; idx < shared; idx++ {
		diffs := ComparePolylines(ref[idx], cand[idx], opts.Tolerance, opts.MaxTriangles)
		if len(diffs) == 0 {
			continue
		}
		report.TotalMismatched += len(diffs)
		report.Polylines = append(report.Polylines, PolylineDiffs{
			PolylineIndex: idx,
			Reference:     ref[idx],
			Candidate:     cand[idx],
			Diffs:         diffs,
		})
	}

	if opts.SharpAngleDeg >= 0 {
		report.SharpReference = SharpTriangles(ref[:shared], opts.SharpAngleDeg)
		report.SharpCandidate = SharpTriangles(cand[:shared], opts.SharpAngleDeg)
	}

	return report
}

// narrowPolylines applies an offset and a limit to one dump's polyline
// sequence. The result aliases the input; records are not copied.
func narrowPolylines(polylines []*PolylineRecord, offset, limit int) []*PolylineRecord {
	if offset > 0 {
		if offset > len(polylines) {
			offset = len(polylines)
		}
		polylines = polylines[offset:]
	}
	if limit > 0 && limit < len(polylines) {
		polylines = polylines[:limit]
	}
	return polylines
}
