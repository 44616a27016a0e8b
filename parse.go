package tessdiff

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	polylinePrefix = "Polyline:"
	trianglePrefix = "Triangle"
)

// PolylineRecord is one parsed polyline block: the header metadata plus
// the triangles dumped for it, in appearance order. Index is the
// zero-based position among successfully parsed polylines in one dump;
// it is assigned at parse time, never read from the text.
type PolylineRecord struct {
	Index      int
	PointCount int
	Width      float64
	Layer      string
	Triangles  []Triangle
}

// ParseError reports a dump line that does not match the expected
// shape. It is fatal for that dump: the parser never skips a bad line
// and continues.
type ParseError struct {
	// Source identifies the dump, usually a file path.
	Source string

	// Line is the offending line text. Empty when the failure is not
	// tied to a single line.
	Line string

	// Message describes what was expected.
	Message string
}

func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("tessdiff: %s: '%s' in %s", e.Message, e.Line, e.Source)
	}
	return fmt.Sprintf("tessdiff: %s in %s", e.Message, e.Source)
}

// ParseDump decodes and parses a raw dump buffer into its polyline
// records. The source identifier appears in any *DecodeError or
// *ParseError.
func ParseDump(data []byte, source string) ([]*PolylineRecord, error) {
	lines, err := DecodeLines(data, source)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, source)
}

// ParseLines parses decoded dump lines into polyline records.
//
// The parser is a two-state machine: either no polyline is open, or
// triangle lines accumulate under the most recently seen header. A
// header always opens a fresh record, closing any open one. Blank
// lines and anything that is neither header nor triangle entry
// (banners, totals) are ignored. A triangle line before the first
// header is a *ParseError, as is any malformed header or triangle
// line. An open record is closed at end of input so the final block is
// never dropped.
func ParseLines(lines []string, source string) ([]*PolylineRecord, error) {
	var polylines []*PolylineRecord
	var current *PolylineRecord

	finish := func() {
		if current != nil {
			polylines = append(polylines, current)
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, polylinePrefix):
			finish()
			rec, err := parsePolylineHeader(line, len(polylines), source)
			if err != nil {
				return nil, err
			}
			current = rec

		case strings.HasPrefix(line, trianglePrefix):
			if current == nil {
				return nil, &ParseError{
					Source:  source,
					Message: "triangle line encountered before any polyline header",
				}
			}
			tri, err := parseTriangleLine(line, source)
			if err != nil {
				return nil, err
			}
			current.Triangles = append(current.Triangles, tri)

		default:
			// Banner or summary line (===, Total, ...): ignored.
		}
	}

	finish()
	Logger().Debug("parsed dump", "source", source, "polylines", len(polylines))
	return polylines, nil
}

// parsePolylineHeader parses a line such as
//
//	Polyline: 10 points, width: 0.400, layer: LAYER:User.1
//
// The payload is a comma-separated triple: point count (leading integer
// token), a width field after its colon, and a layer field taken
// verbatim after its first colon (it may itself contain colons).
func parsePolylineHeader(line string, index int, source string) (*PolylineRecord, error) {
	fail := func() (*PolylineRecord, error) {
		return nil, &ParseError{Source: source, Line: line, Message: "unable to parse polyline header"}
	}

	head := strings.TrimSpace(line[len(polylinePrefix):])
	parts := strings.Split(head, ",")
	if len(parts) != 3 {
		return fail()
	}

	pointTokens := strings.Fields(parts[0])
	if len(pointTokens) == 0 {
		return fail()
	}
	pointCount, err := strconv.Atoi(pointTokens[0])
	if err != nil {
		return fail()
	}

	_, widthText, ok := strings.Cut(parts[1], ":")
	if !ok {
		return fail()
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(widthText), 64)
	if err != nil {
		return fail()
	}

	_, layerText, ok := strings.Cut(parts[2], ":")
	if !ok {
		return fail()
	}

	return &PolylineRecord{
		Index:      index,
		PointCount: pointCount,
		Width:      width,
		Layer:      strings.TrimSpace(layerText),
	}, nil
}

// parseTriangleLine parses a line such as
//
//	Triangle 0: [x0, y0], [x1, y1], [x2, y2]
//
// The payload after the first colon splits on "]," into exactly three
// vertex chunks; anything else is a *ParseError.
func parseTriangleLine(line, source string) (Triangle, error) {
	fail := func() (Triangle, error) {
		return Triangle{}, &ParseError{Source: source, Line: line, Message: "unable to parse triangle line"}
	}

	_, payload, ok := strings.Cut(line, ":")
	if !ok {
		return fail()
	}

	chunks := strings.Split(strings.TrimSpace(payload), "],")
	if len(chunks) != 3 {
		return fail()
	}

	var tri Triangle
	for i, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		chunk = strings.TrimSuffix(chunk, "]")
		chunk = strings.TrimPrefix(chunk, "[")

		xText, yText, ok := strings.Cut(chunk, ",")
		if !ok {
			return fail()
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xText), 64)
		if err != nil {
			return fail()
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(yText), 64)
		if err != nil {
			return fail()
		}
		tri[i] = Point{X: x, Y: y}
	}
	return tri, nil
}
