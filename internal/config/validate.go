package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOCR(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateEncoder(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ImagesDir) == "" {
		return errors.New("paths.images_dir must be set")
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ResultsFile) == "" {
		return errors.New("paths.results_file must be set")
	}
	return nil
}

func (c *Config) validateOCR() error {
	if len(c.OCR.Providers) == 0 {
		return errors.New("ocr.providers must list at least one provider")
	}
	for _, name := range c.OCR.Providers {
		switch name {
		case ProviderVision, ProviderTesseract:
		default:
			return fmt.Errorf("ocr.providers: unsupported provider %q (expected %q or %q)", name, ProviderVision, ProviderTesseract)
		}
	}
	if c.OCR.VisionTimeoutSeconds <= 0 {
		return errors.New("ocr.vision_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateRender() error {
	if err := ensurePositiveMap(map[string]int{
		"render.images_per_video":      c.Render.ImagesPerVideo,
		"render.frames_per_slide":      c.Render.FramesPerSlide,
		"render.frame_timeout_seconds": c.Render.FrameTimeoutSeconds,
	}); err != nil {
		return err
	}
	switch c.Render.FrameFormat {
	case "png", "jpeg":
	default:
		return fmt.Errorf("render.frame_format: unsupported value %q (expected png or jpeg)", c.Render.FrameFormat)
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if strings.TrimSpace(c.Encoder.Binary) == "" {
		return errors.New("encoder.binary must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
