package preflight

import (
	"context"
	"slices"

	"carousel/internal/config"
	"carousel/internal/ocr/tesseract"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes the filesystem, credential and OCR library checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Project directory", cfg.Paths.ProjectDir),
		CheckWritableTarget("Images directory", cfg.Paths.ImagesDir),
		CheckWritableTarget("Output directory", cfg.Paths.OutputDir),
		CheckInputFolder(cfg.Paths.DefaultInputDir),
	}
	if slices.Contains(cfg.OCR.Providers, config.ProviderVision) {
		results = append(results, CheckVisionKey(cfg.OCR.VisionAPIKey))
	}
	if slices.Contains(cfg.OCR.Providers, config.ProviderTesseract) {
		results = append(results, CheckTesseract(tesseract.NewEngine(cfg.OCR.TesseractLanguages)))
	}
	return results
}
