package logs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carousel/internal/logs"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carousel.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestTailLastLines(t *testing.T) {
	path := writeLog(t, "a", "b", "c", "d", "e")

	lines, err := logs.Tail(path, logs.Query{Limit: 2})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if strings.Join(lines, ",") != "d,e" {
		t.Fatalf("unexpected lines: %#v", lines)
	}

	lines, err = logs.Tail(path, logs.Query{})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 5 {
		t.Fatalf("expected all lines, got %#v", lines)
	}
}

func TestTailFiltersByRun(t *testing.T) {
	path := writeLog(t,
		`{"msg":"batch started","run_id":"r1"}`,
		`{"msg":"caption extracted","run_id":"r1"}`,
		`not json`,
		`{"msg":"batch started","run_id":"r2"}`,
		`{"msg":"caption extracted","run_id":"r2"}`,
		`{"msg":"video created","run_id":"r2"}`,
	)

	lines, err := logs.Tail(path, logs.Query{RunID: "r1"})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || !strings.Contains(lines[1], "caption extracted") {
		t.Fatalf("unexpected r1 lines: %#v", lines)
	}

	lines, err = logs.Tail(path, logs.Query{RunID: "r2", Limit: 2})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || !strings.Contains(lines[0], "caption extracted") || !strings.Contains(lines[1], "video created") {
		t.Fatalf("unexpected r2 lines: %#v", lines)
	}

	last, err := logs.LastRunID(path)
	if err != nil {
		t.Fatalf("LastRunID returned error: %v", err)
	}
	if last != "r2" {
		t.Fatalf("expected r2, got %q", last)
	}
}

func TestTailMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.log")
	lines, err := logs.Tail(path, logs.Query{Limit: 10})
	if err != nil || len(lines) != 0 {
		t.Fatalf("expected empty result, got %#v err=%v", lines, err)
	}
	if id, err := logs.LastRunID(path); err != nil || id != "" {
		t.Fatalf("expected no run id, got %q err=%v", id, err)
	}
}

func TestTailRejectsDirectory(t *testing.T) {
	if _, err := logs.Tail(t.TempDir(), logs.Query{}); err == nil {
		t.Fatal("expected error for directory path")
	}
}
