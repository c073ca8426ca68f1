package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOCR()
	c.normalizeRender()
	c.normalizeEncoder()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ProjectDir) == "" {
		c.Paths.ProjectDir = defaultProjectDir
	}
	if c.Paths.ProjectDir, err = expandPath(c.Paths.ProjectDir); err != nil {
		return fmt.Errorf("paths.project_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ImagesDir) == "" {
		c.Paths.ImagesDir = filepath.Join(c.Paths.ProjectDir, "public", "batch-images")
	}
	if c.Paths.ImagesDir, err = expandPath(c.Paths.ImagesDir); err != nil {
		return fmt.Errorf("paths.images_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ResultsFile) == "" {
		c.Paths.ResultsFile = filepath.Join(c.Paths.ProjectDir, "public", "batch-prompts.json")
	}
	if c.Paths.ResultsFile, err = expandPath(c.Paths.ResultsFile); err != nil {
		return fmt.Errorf("paths.results_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = filepath.Join(c.Paths.ProjectDir, "output", "batch-videos")
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DefaultInputDir) == "" {
		c.Paths.DefaultInputDir = defaultInputDir
	}
	if c.Paths.DefaultInputDir, err = expandPath(c.Paths.DefaultInputDir); err != nil {
		return fmt.Errorf("paths.default_input_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	prefix := strings.TrimSpace(c.Paths.PublicPrefix)
	if prefix == "" {
		prefix = defaultPublicPrefix
	}
	c.Paths.PublicPrefix = "/" + strings.Trim(prefix, "/")
	return nil
}

func (c *Config) normalizeOCR() {
	providers := make([]string, 0, len(c.OCR.Providers))
	seen := make(map[string]struct{}, len(c.OCR.Providers))
	for _, name := range c.OCR.Providers {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		providers = append(providers, name)
	}
	c.OCR.Providers = providers

	c.OCR.VisionAPIKey = strings.TrimSpace(c.OCR.VisionAPIKey)
	if c.OCR.VisionAPIKey == sampleVisionAPIKey {
		c.OCR.VisionAPIKey = ""
	}
	if value, ok := os.LookupEnv("GOOGLE_VISION_API_KEY"); ok && strings.TrimSpace(value) != "" {
		c.OCR.VisionAPIKey = strings.TrimSpace(value)
	}
	c.OCR.VisionEndpoint = strings.TrimSpace(c.OCR.VisionEndpoint)
	if c.OCR.VisionEndpoint == "" {
		c.OCR.VisionEndpoint = defaultVisionEndpoint
	}
	c.OCR.VisionLanguageHints = compactList(c.OCR.VisionLanguageHints)
	c.OCR.TesseractLanguages = compactList(c.OCR.TesseractLanguages)
}

// compactList trims entries and drops empty ones, in place.
func compactList(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c *Config) normalizeRender() {
	c.Render.Command = strings.TrimSpace(c.Render.Command)
	if c.Render.Command == "" {
		c.Render.Command = defaultRenderCommand
	}
	c.Render.CompositionPrefix = strings.TrimSpace(c.Render.CompositionPrefix)
	if c.Render.CompositionPrefix == "" {
		c.Render.CompositionPrefix = defaultCompositionPrefix
	}
	format := strings.ToLower(strings.TrimSpace(c.Render.FrameFormat))
	switch format {
	case "":
		format = defaultFrameFormat
	case "jpg":
		format = "jpeg"
	}
	c.Render.FrameFormat = format
}

func (c *Config) normalizeEncoder() {
	c.Encoder.Binary = strings.TrimSpace(c.Encoder.Binary)
	if c.Encoder.Binary == "" {
		c.Encoder.Binary = defaultEncoderBinary
	}
	c.Encoder.FallbackPaths = compactList(c.Encoder.FallbackPaths)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
