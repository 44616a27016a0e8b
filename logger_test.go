package tessdiff

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return a nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Logger().Debug("probe", "key", "val")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("log output %q does not contain the probe message", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil), want silent logger")
	}
	before := buf.Len()
	Logger().Debug("discarded")
	if buf.Len() != before {
		t.Error("silent logger wrote output")
	}
}

func TestDebugLoggingDuringParse(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := ParseDump([]byte(sampleDump), "sample.txt"); err != nil {
		t.Fatalf("ParseDump: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "decoded dump") || !strings.Contains(out, "parsed dump") {
		t.Errorf("debug output missing decode/parse events:\n%s", out)
	}
}
