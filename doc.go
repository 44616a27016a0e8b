// Package tessdiff compares tessellation triangle dumps between two runs.
//
// # Overview
//
// tessdiff consumes the textual triangle dumps emitted by a tessellation
// engine's debug layer, parses every polyline block, and aligns the two
// runs triangle by triangle to surface numerical or structural divergence.
// It is aimed at validating a tessellator reimplementation against a
// known-good reference: the two dumps are expected to describe the same
// input, so any per-vertex deviation above a tolerance is worth a look.
//
// # Quick Start
//
//	import "github.com/gogpu/tessdiff"
//
//	refPolys, err := tessdiff.ParseDump(refBytes, "reference.txt")
//	candPolys, err := tessdiff.ParseDump(candBytes, "candidate.txt")
//
//	report := tessdiff.CompareDumps(refPolys, candPolys, tessdiff.CompareOptions{
//	    Tolerance:     1e-3,
//	    SharpAngleDeg: 12,
//	})
//
// # Dump Format
//
// A dump is a line-oriented text file. Two line shapes matter:
//
//	Polyline: <point_count> points, width: <float>, layer: <text>
//	Triangle <n>: [x0, y0], [x1, y1], [x2, y2]
//
// Triangle entries accumulate under the most recently opened header.
// All other non-blank lines (banners, totals) are ignored. Dumps may be
// UTF-8, UTF-8 with BOM, or UTF-16 (PowerShell redirection produces the
// latter); decoding tries those encodings in order and fails loudly if
// none fit.
//
// # Alignment Semantics
//
// Triangle correspondence is strictly positional: triangle i of the
// reference polyline is compared against triangle i of the candidate,
// vertex 0 against vertex 0, and so on. No geometric re-alignment is
// attempted, so two runs that emit identical triangles in a different
// order, or with rotated vertex lists, report as mismatched. That is
// deliberate: reordering is itself a divergence worth surfacing.
package tessdiff

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
