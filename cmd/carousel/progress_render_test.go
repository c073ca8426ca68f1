package main

import (
	"bytes"
	"strings"
	"testing"

	"carousel/internal/render"
)

func TestFrameProgressSamplesWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := newFrameProgress(&buf)

	for done := 1; done <= 20; done++ {
		p.update(render.Progress{GroupID: 1, FrameIndex: done - 1, Done: done, Total: 20, Failed: done == 5})
	}
	for done := 1; done <= 2; done++ {
		p.update(render.Progress{GroupID: 2, FrameIndex: done - 1, Done: done, Total: 2})
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Group 1: first frame plus ten 10% buckets. Group 2: first frame and 100%.
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d:\n%s", len(lines), buf.String())
	}
	if strings.Contains(buf.String(), ansiClearLine) {
		t.Fatal("non-terminal output must not rewrite lines")
	}
	requireContains(t, lines[10], "[WARN] frame 20/20 (1 failed)")
	requireContains(t, lines[12], "Video 2:")
	requireContains(t, lines[12], "[OK] frame 2/2")
}
