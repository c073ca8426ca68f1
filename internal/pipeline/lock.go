package pipeline

import (
	"path/filepath"

	"github.com/gofrs/flock"

	"carousel/internal/config"
)

const lockFileName = ".carousel.lock"

// NewRunLock returns the lock guarding the output directory of cfg.
func NewRunLock(cfg *config.Config) *flock.Flock {
	return flock.New(filepath.Join(cfg.Paths.OutputDir, lockFileName))
}
