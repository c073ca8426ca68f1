package deps

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeStub(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	writeStub(t, present, 0o755)
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", results[2].Detail)
	}
}

func TestResolvePrefersPath(t *testing.T) {
	fallback := filepath.Join(t.TempDir(), "ffmpeg")
	writeStub(t, fallback, 0o755)
	r := &Resolver{
		LookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		Stat:     os.Stat,
	}

	tool, err := r.Resolve("encoder", "ffmpeg", fallback)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tool.Path != "/usr/bin/ffmpeg" || tool.Fallback {
		t.Fatalf("expected PATH hit, got %#v", tool)
	}
}

func TestResolveFallbackOrder(t *testing.T) {
	dir := t.TempDir()
	notExec := filepath.Join(dir, "plain")
	writeStub(t, notExec, 0o644)
	first := filepath.Join(dir, "first")
	writeStub(t, first, 0o755)
	second := filepath.Join(dir, "second")
	writeStub(t, second, 0o755)

	r := &Resolver{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
		Stat:     os.Stat,
	}
	tool, err := r.Resolve("encoder", "ffmpeg", filepath.Join(dir, "missing"), notExec, dir, first, second)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tool.Path != first || !tool.Fallback {
		t.Fatalf("expected first executable fallback, got %#v", tool)
	}
}

func TestResolveUnavailable(t *testing.T) {
	r := &Resolver{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
		Stat:     func(string) (os.FileInfo, error) { return nil, fs.ErrNotExist },
	}
	_, err := r.Resolve("encoder", "ffmpeg", "/opt/homebrew/bin/ffmpeg")
	if !errors.Is(err, ErrToolUnavailable) {
		t.Fatalf("expected ErrToolUnavailable, got %v", err)
	}
}

func TestCheckReportsFallback(t *testing.T) {
	r := &Resolver{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
		Stat: func(string) (os.FileInfo, error) {
			return fakeInfo{mode: 0o755}, nil
		},
	}
	results := r.Check([]Requirement{{Name: "FFmpeg", Command: "ffmpeg", FallbackPaths: []string{"/usr/local/bin/ffmpeg"}}})
	if !results[0].Available || results[0].Command != "/usr/local/bin/ffmpeg" {
		t.Fatalf("expected fallback resolution, got %#v", results[0])
	}
}

type fakeInfo struct {
	mode os.FileMode
}

func (f fakeInfo) Name() string       { return "ffmpeg" }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() os.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return false }
func (f fakeInfo) Sys() any           { return nil }
