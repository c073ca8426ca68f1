package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"carousel/internal/batch"
	"carousel/internal/fileutil"
	"carousel/internal/logging"
	"carousel/internal/services"
)

// IngestedImage pairs an input with its copy in the project images directory.
type IngestedImage struct {
	SourcePath string
	Path       string
}

// ResolveInputs returns the images to process. Explicit args are kept in the
// order given when they name existing png/jpg/jpeg files; without args the
// default input folder is scanned and sorted by name.
func (d *Driver) ResolveInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		paths := make([]string, 0, len(args))
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil || !info.Mode().IsRegular() || !batch.IsSupportedImage(arg) {
				d.logger.Debug("skipping input", logging.String("path", arg))
				continue
			}
			abs, err := filepath.Abs(arg)
			if err != nil {
				abs = arg
			}
			paths = append(paths, abs)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: none of %d paths is a png/jpg/jpeg file", ErrNoInput, len(args))
		}
		return paths, nil
	}

	dir := d.cfg.Paths.DefaultInputDir
	paths, err := batch.ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: default folder %s: %w", ErrNoInput, dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: default folder %s has no png/jpg/jpeg files", ErrNoInput, dir)
	}
	return paths, nil
}

// Ingest copies inputs into the images directory, overwriting same-named
// files. Inputs that cannot be copied are logged and dropped.
func (d *Driver) Ingest(ctx context.Context, inputs []string) []IngestedImage {
	ctx = services.WithStage(ctx, "ingest")
	logger := logging.WithContext(ctx, d.logger)

	copied := make([]IngestedImage, 0, len(inputs))
	seen := make(map[string]string, len(inputs))
	for _, src := range inputs {
		name := filepath.Base(src)
		dst := filepath.Join(d.cfg.Paths.ImagesDir, name)
		if prev, ok := seen[name]; ok {
			logging.WarnWithContext(logger, "duplicate image name", "ingest_duplicate",
				logging.String("image", name),
				logging.String("first", prev),
				logging.String("second", src),
				logging.String(logging.FieldImpact, "the later file replaces the earlier copy"),
				logging.String(logging.FieldErrorHint, "rename one of the inputs"),
			)
		}
		seen[name] = src

		if !samePath(src, dst) {
			if err := fileutil.CopyFileVerified(src, dst); err != nil {
				logging.WarnWithContext(logger, "image copy failed", "ingest_copy_failed",
					logging.String("image", src),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check the source file and images_dir permissions"),
					logging.String(logging.FieldImpact, "image skipped"),
				)
				continue
			}
		}
		copied = append(copied, IngestedImage{SourcePath: src, Path: dst})
	}
	logger.Info("images copied",
		logging.Int("copied", len(copied)),
		logging.String("images_dir", d.cfg.Paths.ImagesDir),
	)
	return copied
}

func samePath(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
