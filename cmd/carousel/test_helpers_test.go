package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carousel/internal/config"
	"carousel/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("GOOGLE_VISION_API_KEY", "")
	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	configPath := filepath.Join(base, "carousel.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
project_dir = %q
images_dir = %q
results_file = %q
output_dir = %q
default_input_dir = %q
log_dir = %q

[ocr]
providers = ["vision"]

[render]
images_per_video = %d
frames_per_slide = %d
frame_timeout_seconds = %d

[encoder]
binary = %q
fallback_paths = []

[logging]
level = "error"
`,
		cfg.Paths.ProjectDir,
		cfg.Paths.ImagesDir,
		cfg.Paths.ResultsFile,
		cfg.Paths.OutputDir,
		cfg.Paths.DefaultInputDir,
		cfg.Paths.LogDir,
		cfg.Render.ImagesPerVideo,
		cfg.Render.FramesPerSlide,
		cfg.Render.FrameTimeoutSeconds,
		cfg.Encoder.Binary,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
