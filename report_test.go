package tessdiff

import "testing"

func recordSeq(triangles ...[]Triangle) []*PolylineRecord {
	polys := make([]*PolylineRecord, len(triangles))
	for i, tris := range triangles {
		polys[i] = &PolylineRecord{Index: i, Triangles: tris}
	}
	return polys
}

func TestCompareDumps(t *testing.T) {
	match := Triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	moved := Triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1.5)}

	reference := recordSeq(
		[]Triangle{match, match},
		[]Triangle{match},
	)
	candidate := recordSeq(
		[]Triangle{match, moved},
		[]Triangle{match},
	)

	report := CompareDumps(reference, candidate, CompareOptions{
		Tolerance:     1e-3,
		SharpAngleDeg: -1,
	})

	if report.SharedCount != 2 {
		t.Errorf("SharedCount = %d, want 2", report.SharedCount)
	}
	if report.TotalMismatched != 1 {
		t.Errorf("TotalMismatched = %d, want 1", report.TotalMismatched)
	}
	if len(report.Polylines) != 1 {
		t.Fatalf("got %d polyline entries, want 1 (clean pairs omitted)", len(report.Polylines))
	}
	if report.Polylines[0].PolylineIndex != 0 {
		t.Errorf("PolylineIndex = %d, want 0", report.Polylines[0].PolylineIndex)
	}
	if report.SharpReference != nil || report.SharpCandidate != nil {
		t.Error("sharp lists populated although the scan was disabled")
	}
}

func TestCompareDumpsOffsetsAndLimit(t *testing.T) {
	tri := Triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	seq := func(n int) []*PolylineRecord {
		polys := make([][]Triangle, n)
		for i := range polys {
			polys[i] = []Triangle{tri}
		}
		return recordSeq(polys...)
	}

	tests := []struct {
		name       string
		opts       CompareOptions
		refLen     int
		candLen    int
		wantRef    int
		wantCand   int
		wantShared int
	}{
		{"no narrowing", CompareOptions{}, 3, 3, 3, 3, 3},
		{"reference offset", CompareOptions{ReferenceOffset: 2}, 5, 3, 3, 3, 3},
		{"candidate offset", CompareOptions{CandidateOffset: 1}, 3, 3, 3, 2, 2},
		{"limit", CompareOptions{Limit: 2}, 5, 4, 2, 2, 2},
		{"offset then limit", CompareOptions{ReferenceOffset: 1, Limit: 2}, 5, 5, 2, 2, 2},
		{"offset past end", CompareOptions{ReferenceOffset: 10}, 3, 3, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.SharpAngleDeg = -1
			report := CompareDumps(seq(tt.refLen), seq(tt.candLen), tt.opts)
			if len(report.Reference) != tt.wantRef {
				t.Errorf("narrowed reference length = %d, want %d", len(report.Reference), tt.wantRef)
			}
			if len(report.Candidate) != tt.wantCand {
				t.Errorf("narrowed candidate length = %d, want %d", len(report.Candidate), tt.wantCand)
			}
			if report.SharedCount != tt.wantShared {
				t.Errorf("SharedCount = %d, want %d", report.SharedCount, tt.wantShared)
			}
		})
	}
}

func TestCompareDumpsSharpOverSharedRange(t *testing.T) {
	sliver := Triangle{Pt(0, 0), Pt(10, 0), Pt(5, 0.1)}
	healthy := Triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1)}

	// The candidate is shorter; the reference's trailing sliver lies
	// outside the shared range and must not be scanned.
	reference := recordSeq(
		[]Triangle{healthy},
		[]Triangle{sliver},
	)
	candidate := recordSeq(
		[]Triangle{sliver},
	)

	report := CompareDumps(reference, candidate, CompareOptions{
		Tolerance:     1e9, // mismatches are not the point here
		SharpAngleDeg: 12,
	})

	if len(report.SharpReference) != 0 {
		t.Errorf("got %d sharp reference triangles, want 0 (outside shared range)", len(report.SharpReference))
	}
	if len(report.SharpCandidate) != 1 {
		t.Errorf("got %d sharp candidate triangles, want 1", len(report.SharpCandidate))
	}
}
