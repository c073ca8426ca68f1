package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"carousel/internal/batch"
	"carousel/internal/config"
	"carousel/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWritableTarget verifies a directory a run will create: it passes when
// the directory is accessible, or when its nearest existing ancestor is.
func CheckWritableTarget(name, path string) Result {
	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path)
	}
	parent := filepath.Dir(path)
	for parent != filepath.Dir(parent) {
		if _, err := os.Stat(parent); err == nil {
			break
		}
		parent = filepath.Dir(parent)
	}
	if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, parent, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first run)", path)}
}

// CheckInputFolder reports whether the default input folder exists and how
// many images it holds. It is optional: explicit paths bypass it.
func CheckInputFolder(path string) Result {
	const name = "Default input folder"
	images, err := batch.ScanDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (not found; pass image paths explicitly)", path)}
		}
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if len(images) == 0 {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (no png/jpg images)", path)}
	}
	return Result{Name: name, Passed: true, Optional: true, Detail: fmt.Sprintf("%s (%d images)", path, len(images))}
}

// CheckVisionKey reports whether a Cloud Vision API key is configured. The key
// is not exercised; a rejected key surfaces as a fallback to the next provider.
func CheckVisionKey(apiKey string) Result {
	const name = "Cloud Vision"
	if apiKey == "" {
		return Result{Name: name, Optional: true, Detail: "API key missing (set GOOGLE_VISION_API_KEY)"}
	}
	return Result{Name: name, Passed: true, Optional: true, Detail: "API key configured"}
}

// EngineStatus is implemented by OCR engines linked into the binary.
type EngineStatus interface {
	Status() (string, error)
}

// CheckTesseract asks the linked OCR library for its version and installed
// language data. It is optional: OCR falls back to the other providers.
func CheckTesseract(engine EngineStatus) Result {
	const name = "Tesseract library"
	detail, err := engine.Status()
	if err != nil {
		return Result{Name: name, Optional: true, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Optional: true, Detail: detail}
}

// SystemRequirements lists the external executables for the given config.
func SystemRequirements(cfg *config.Config) []deps.Requirement {
	requirements := []deps.Requirement{
		{
			Name:        "Renderer",
			Command:     cfg.Render.Command,
			Description: "Required for rendering still frames",
		},
		{
			Name:          "FFmpeg",
			Command:       cfg.Encoder.Binary,
			Description:   "Required for assembling videos",
			FallbackPaths: cfg.Encoder.FallbackPaths,
		},
	}
	return requirements
}

// CheckSystemDeps evaluates all system-level dependencies for the given config.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(SystemRequirements(cfg))
}
