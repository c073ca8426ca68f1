package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the project layout and input/output locations.
type Paths struct {
	ProjectDir      string `toml:"project_dir"`
	ImagesDir       string `toml:"images_dir"`
	ResultsFile     string `toml:"results_file"`
	OutputDir       string `toml:"output_dir"`
	DefaultInputDir string `toml:"default_input_dir"`
	LogDir          string `toml:"log_dir"`
	PublicPrefix    string `toml:"public_prefix"`
}

// OCR contains configuration for caption extraction providers.
type OCR struct {
	Providers            []string `toml:"providers"`
	VisionAPIKey         string   `toml:"vision_api_key"`
	VisionEndpoint       string   `toml:"vision_endpoint"`
	VisionTimeoutSeconds int      `toml:"vision_timeout_seconds"`
	VisionLanguageHints  []string `toml:"vision_language_hints"`
	TesseractLanguages   []string `toml:"tesseract_languages"`
}

// Render contains configuration for the per-frame still renderer.
type Render struct {
	Command             string   `toml:"command"`
	Args                []string `toml:"args"`
	CompositionPrefix   string   `toml:"composition_prefix"`
	ImagesPerVideo      int      `toml:"images_per_video"`
	FramesPerSlide      int      `toml:"frames_per_slide"`
	FrameTimeoutSeconds int      `toml:"frame_timeout_seconds"`
	FrameFormat         string   `toml:"frame_format"`
}

// Encoder contains configuration for locating the video encoder.
type Encoder struct {
	Binary        string   `toml:"binary"`
	FallbackPaths []string `toml:"fallback_paths"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for carousel.
//
// Configuration sections by subsystem:
//   - Paths: project layout, serving locations, and default input folder
//   - OCR: caption extraction provider order and credentials
//   - Render: still-frame renderer invocation and slide timing
//   - Encoder: ffmpeg lookup
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	OCR     OCR     `toml:"ocr"`
	Render  Render  `toml:"render"`
	Encoder Encoder `toml:"encoder"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/carousel/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("carousel.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run writes into. The default
// input folder is never created; its absence is a reportable condition.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.ImagesDir,
		c.Paths.OutputDir,
		c.Paths.LogDir,
		filepath.Dir(c.Paths.ResultsFile),
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// CompositionID returns the renderer composition identifier for a 1-based video group.
func (c *Config) CompositionID(groupID int) string {
	return fmt.Sprintf("%s%d", c.Render.CompositionPrefix, groupID)
}
