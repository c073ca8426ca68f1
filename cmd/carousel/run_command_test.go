package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carousel/internal/pipeline"
	"carousel/internal/testsupport"
)

func TestRunWithoutImagesFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, nil, env.configPath)
	if !errors.Is(err, pipeline.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if _, err := os.Stat(env.cfg.Paths.ResultsFile); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("results file should not be written, stat err=%v", err)
	}
}

func TestRunRendersVideos(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries(), testsupport.WithImagesPerVideo(2))
	images := testsupport.WriteImages(t, filepath.Join(env.baseDir, "picked"), 3)

	out, stderr, err := runCLI(t, images, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "2 of 2")
	requireContains(t, stderr, "Video 1:")
	requireContains(t, stderr, "frame 4/4")
	requireContains(t, stderr, "frame 2/2")
	requireContains(t, out, env.cfg.Paths.ResultsFile)
	for _, name := range []string{"video1.mp4", "video2.mp4"} {
		if _, err := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRunSkipsVideosWithoutEncoder(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithStubbedBinaries(),
		testsupport.WithEncoderBinary("carousel-missing-ffmpeg"),
	)
	testsupport.WriteImages(t, env.cfg.Paths.DefaultInputDir, 2)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("partial run should still succeed: %v", err)
	}
	requireContains(t, out, "0 of 1")
	requireContains(t, out, "encoder unavailable")
}

func TestExtractDoesNotRender(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.cfg.Paths.DefaultInputDir, 2)

	out, _, err := runCLI(t, []string{"extract"}, env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "Captions")
	requireContains(t, out, "Document")
	requireContains(t, out, "2 images, 0 prompts")
	if _, err := os.Stat(env.cfg.Paths.ResultsFile); err != nil {
		t.Fatalf("expected results file: %v", err)
	}
	entries, err := os.ReadDir(env.cfg.Paths.OutputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".mp4" {
			t.Fatalf("extract must not produce videos, found %s", entry.Name())
		}
	}
}

func TestCheckReportsMissingTools(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithEncoderBinary("carousel-missing-ffmpeg"))
	testsupport.WriteStub(t, env.baseDir, "npx", "exit 0\n")
	testsupport.PrependPath(t, testsupport.BinDir(env.baseDir))

	out, _, err := runCLI(t, []string{"check", "--table"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail without an encoder")
	}
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "Cloud Vision")

	env = setupCLITestEnv(t, testsupport.WithStubbedBinaries())
	out, _, err = runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check with stubs: %v\n%s", err, out)
	}
	requireContains(t, out, "Ready (command:")
}

func TestLogsShowsLastRun(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteImages(t, env.cfg.Paths.DefaultInputDir, 1)
	out, _, err := runCLI(t, []string{"logs", "--last-run"}, env.configPath)
	if err != nil {
		t.Fatalf("logs before any run: %v", err)
	}
	requireContains(t, out, "No runs recorded")

	for range 2 {
		if _, _, err := runCLI(t, []string{"--log-level", "info", "extract"}, env.configPath); err != nil {
			t.Fatalf("extract: %v", err)
		}
	}

	out, _, err = runCLI(t, []string{"logs", "--last-run", "--lines", "0"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "results saved")
	if got := strings.Count(out, `"msg":"batch started"`); got != 1 {
		t.Fatalf("expected records of one run only, found %d run starts:\n%s", got, out)
	}
}
