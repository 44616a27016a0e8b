package tessdiff

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeError reports that no candidate text encoding could decode a
// dump. It is fatal for that dump; there is no partial decode.
type DecodeError struct {
	// Source identifies the byte source, usually a file path.
	Source string

	// Hint is a best-guess charset name from statistical detection,
	// included for diagnosis only. Empty when detection has no guess.
	Hint string
}

func (e *DecodeError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("tessdiff: unable to decode %s as UTF-8/UTF-16 (charset hint: %s)", e.Source, e.Hint)
	}
	return fmt.Sprintf("tessdiff: unable to decode %s as UTF-8/UTF-16", e.Source)
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// DecodeLines decodes a raw dump buffer into lines with terminators
// stripped. Candidate encodings are tried in a fixed order: UTF-8,
// UTF-8 with BOM, UTF-16 (BOM-sensing, little-endian fallback), and
// UTF-16 little-endian. The first candidate that decodes the entire
// buffer wins; the order guarantees a BOM-bearing or UTF-16 buffer is
// never misread as garbled-but-valid UTF-8. If no candidate fits,
// DecodeLines returns a *DecodeError carrying the source identifier.
func DecodeLines(data []byte, source string) ([]string, error) {
	for _, c := range decodeCandidates {
		text, ok := c.decode(data)
		if !ok {
			continue
		}
		lines := splitLines(text)
		Logger().Debug("decoded dump", "source", source, "encoding", c.name, "lines", len(lines))
		return lines, nil
	}
	return nil, &DecodeError{Source: source, Hint: detectHint(data)}
}

type decodeCandidate struct {
	name   string
	decode func([]byte) (string, bool)
}

var decodeCandidates = []decodeCandidate{
	{"utf-8", decodeUTF8},
	{"utf-8-bom", decodeUTF8BOM},
	{"utf-16", decodeUTF16BOM},
	{"utf-16-le", decodeUTF16LE},
}

// decodeUTF8 accepts strictly valid UTF-8 without a leading BOM. A
// BOM-bearing buffer is byte-valid UTF-8 but would leave U+FEFF glued
// to the first line, so it is left for the BOM-stripping candidate.
func decodeUTF8(data []byte) (string, bool) {
	if bytes.HasPrefix(data, utf8BOM) || !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeUTF8BOM(data []byte) (string, bool) {
	rest, found := bytes.CutPrefix(data, utf8BOM)
	if !found || !utf8.Valid(rest) {
		return "", false
	}
	return string(rest), true
}

func decodeUTF16BOM(data []byte) (string, bool) {
	return decodeUTF16(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
}

func decodeUTF16LE(data []byte) (string, bool) {
	return decodeUTF16(data, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())
}

// decodeUTF16 decodes with the given UTF-16 scheme, failing loudly
// instead of substituting replacement characters. The x/text decoder
// emits U+FFFD for invalid units rather than erroring, so any U+FFFD
// in the output marks the candidate as failed; these dumps are
// ASCII-shaped diagnostics and never legitimately contain it.
func decodeUTF16(data []byte, dec transform.Transformer) (string, bool) {
	if len(data)%2 != 0 {
		return "", false
	}
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", false
	}
	text := string(out)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

// detectHint runs statistical charset detection over an undecodable
// buffer to flavor the error message. The result never selects an
// encoding; the fixed candidate list above is the contract.
func detectHint(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return ""
	}
	return result.Charset
}

// splitLines splits decoded text on \n, \r\n or \r line terminators,
// with no trailing empty line for terminator-final text.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
