package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestJoinHandlersCollapses(t *testing.T) {
	if joinHandlers() != slog.DiscardHandler {
		t.Fatal("expected the discard handler for no sinks")
	}
	if joinHandlers(nil, nil) != slog.DiscardHandler {
		t.Fatal("expected the discard handler when every sink is nil")
	}
	lvl := new(slog.LevelVar)
	single := newJSONHandler(&bytes.Buffer{}, lvl, false)
	if got := joinHandlers(nil, single); got != single {
		t.Fatal("expected a lone sink to be returned unwrapped")
	}
}

func TestMultiHandlerRespectsPerSinkLevel(t *testing.T) {
	var console, file bytes.Buffer
	warn := new(slog.LevelVar)
	warn.Set(slog.LevelWarn)
	debug := new(slog.LevelVar)
	debug.Set(slog.LevelDebug)

	logger := slog.New(joinHandlers(
		newPrettyHandler(&console, warn, false),
		newJSONHandler(&file, debug, false),
	)).With("component", "assembler").WithGroup("ffmpeg")

	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("handler should be enabled when any sink is")
	}
	logger.Info("encoding", "crf", 23)

	if console.Len() != 0 {
		t.Fatalf("console should drop info, got %q", console.String())
	}
	if !strings.Contains(file.String(), `"component":"assembler"`) || !strings.Contains(file.String(), `"ffmpeg"`) {
		t.Fatalf("file sink missing attrs or group: %q", file.String())
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandlerJoinsSinkErrors(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	ok := newJSONHandler(&buf, lvl, false)
	h := joinHandlers(failingHandler{ok}, ok)

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "frame rendered", 0))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected sink error, got %v", err)
	}
	if !strings.Contains(buf.String(), "frame rendered") {
		t.Fatal("healthy sink should still receive the record")
	}
}
