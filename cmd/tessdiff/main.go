// Command tessdiff compares two tessellation triangle dumps and reports
// triangles that deviate beyond a tolerance, plus sharp (low-angle)
// triangles that commonly reveal visual glitches.
//
// Usage:
//
//	tessdiff [flags] reference.txt candidate.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gogpu/tessdiff"
)

func main() {
	var (
		tolerance    = flag.Float64("tolerance", 1e-3, "maximum allowed per-vertex distance before reporting a mismatch")
		maxTriangles = flag.Int("max-triangles", 0, "compare at most this many triangles per polyline (0 = all)")
		sharpAngle   = flag.Float64("sharp-angle", 12, "highlight triangles with a minimum angle at or below this many degrees (negative disables)")
		limit        = flag.Int("limit", 0, "only compare the first N polylines (0 = all)")
		refOffset    = flag.Int("reference-offset", 0, "skip this many polylines at the start of the reference dump")
		candOffset   = flag.Int("candidate-offset", 0, "skip this many polylines at the start of the candidate dump")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] reference.txt candidate.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		tessdiff.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	reference := loadDump(flag.Arg(0))
	candidate := loadDump(flag.Arg(1))

	report := tessdiff.CompareDumps(reference, candidate, tessdiff.CompareOptions{
		Tolerance:       *tolerance,
		MaxTriangles:    *maxTriangles,
		SharpAngleDeg:   *sharpAngle,
		Limit:           *limit,
		ReferenceOffset: *refOffset,
		CandidateOffset: *candOffset,
	})

	if len(report.Reference) != len(report.Candidate) {
		color.New(color.FgYellow).Fprintf(os.Stderr,
			"Warning: polyline counts differ (reference=%d, candidate=%d).\n",
			len(report.Reference), len(report.Candidate))
	}

	render(report, *sharpAngle)
}

func loadDump(path string) []*tessdiff.PolylineRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	polylines, err := tessdiff.ParseDump(data, path)
	if err != nil {
		log.Fatalf("Failed to parse dump: %v", err)
	}
	return polylines
}

func render(report tessdiff.Report, sharpAngle float64) {
	mismatch := color.New(color.FgRed)

	for _, pl := range report.Polylines {
		ref := pl.Reference
		fmt.Printf("\nPolyline #%d (ref points=%d, width=%.3f, layer=%s)\n",
			pl.PolylineIndex, ref.PointCount, ref.Width, ref.Layer)
		for _, diff := range pl.Diffs {
			mismatch.Printf("  Triangle %d: max_vertex_delta=%.6f (max_coord_delta=%.6f), "+
				"area_ref=%.6f, area_cand=%.6f, min_angle_ref=%.3f°, min_angle_cand=%.3f°\n",
				diff.TriangleIndex, diff.MaxVertexDelta, diff.MaxCoordDelta,
				diff.ReferenceArea, diff.CandidateArea,
				diff.ReferenceMinAngle, diff.CandidateMinAngle)
			printVertices("ref", diff.Reference)
			printVertices("cand", diff.Candidate)
		}
	}

	fmt.Printf("\nTotal mismatched triangles: %d\n", report.TotalMismatched)

	if sharpAngle < 0 {
		return
	}
	if len(report.SharpReference) == 0 && len(report.SharpCandidate) == 0 {
		return
	}
	printSharp("reference", sharpAngle, report.SharpReference)
	printSharp("candidate", sharpAngle, report.SharpCandidate)
}

func printVertices(label string, tri tessdiff.Triangle) {
	fmt.Printf("    %s: (%.6f, %.6f) | (%.6f, %.6f) | (%.6f, %.6f)\n",
		label, tri[0].X, tri[0].Y, tri[1].X, tri[1].Y, tri[2].X, tri[2].Y)
}

func printSharp(label string, sharpAngle float64, sharp []tessdiff.SharpTriangle) {
	warn := color.New(color.FgYellow)
	fmt.Printf("\nTriangles with min angle <= %g° (%s): %d\n", sharpAngle, label, len(sharp))
	for _, s := range sharp {
		warn.Printf("  Polyline #%d triangle %d: min_angle=%.3f°, area=%.6f, edges=[%.6f, %.6f, %.6f]\n",
			s.PolylineIndex, s.TriangleIndex, s.Metrics.MinAngleDeg, s.Metrics.Area,
			s.Metrics.EdgeLengths[0], s.Metrics.EdgeLengths[1], s.Metrics.EdgeLengths[2])
	}
}
