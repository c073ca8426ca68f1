package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"carousel/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp project directory. OCR
// is limited to the vision provider with no key, so no engine runs unless a
// test opts in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	project := filepath.Join(base, "project")
	cfgVal := config.Default()
	cfgVal.Paths.ProjectDir = project
	cfgVal.Paths.ImagesDir = filepath.Join(project, "public", "batch-images")
	cfgVal.Paths.ResultsFile = filepath.Join(project, "public", "batch-prompts.json")
	cfgVal.Paths.OutputDir = filepath.Join(project, "output", "batch-videos")
	cfgVal.Paths.DefaultInputDir = filepath.Join(base, "inbox")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.OCR.Providers = []string{config.ProviderVision}
	cfgVal.OCR.VisionAPIKey = ""
	cfgVal.Render.FramesPerSlide = 2
	cfgVal.Render.FrameTimeoutSeconds = 5
	cfgVal.Encoder.FallbackPaths = nil

	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatalf("mkdir project: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithFramesPerSlide overrides the slide length in frames.
func WithFramesPerSlide(frames int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.FramesPerSlide = frames
	}
}

// WithImagesPerVideo overrides the group size.
func WithImagesPerVideo(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.ImagesPerVideo = n
	}
}

// WithEncoderBinary points the encoder at binary with no fallback locations.
func WithEncoderBinary(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Encoder.Binary = binary
		b.cfg.Encoder.FallbackPaths = nil
	}
}

// WithStubbedBinaries writes succeeding stub executables for the provided
// names and prepends them to PATH. If names is empty, the renderer (npx) and
// encoder (ffmpeg) are stubbed so that each writes its output file.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			WriteStub(b.t, b.baseDir, "npx", RendererStub)
			WriteStub(b.t, b.baseDir, "ffmpeg", EncoderStub)
		}
		for _, name := range names {
			WriteStub(b.t, b.baseDir, name, "exit 0\n")
		}
		PrependPath(b.t, BinDir(b.baseDir))
	}
}

// RendererStub writes the frame file named by the fourth argument
// (remotion still <composition> <output> ...).
const RendererStub = "mkdir -p \"$(dirname \"$4\")\"\n: > \"$4\"\n"

// EncoderStub writes the file named by its last argument.
const EncoderStub = "for a in \"$@\"; do out=$a; done\n: > \"$out\"\n"

// BinDir returns the stub directory under base.
func BinDir(base string) string {
	return filepath.Join(base, "bin")
}

// WriteStub writes an executable shell script named name into base/bin.
func WriteStub(t testing.TB, base, name, body string) string {
	t.Helper()
	binDir := BinDir(base)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// PrependPath puts dir first on PATH for the duration of the test.
func PrependPath(t testing.TB, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ProjectDir)
}
