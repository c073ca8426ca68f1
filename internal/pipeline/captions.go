package pipeline

import (
	"context"
	"path"
	"path/filepath"

	"carousel/internal/batch"
	"carousel/internal/caption"
	"carousel/internal/logging"
	"carousel/internal/services"
)

// ExtractCaptions captions each image in order and persists the result
// document. Images without text still produce a record.
func (d *Driver) ExtractCaptions(ctx context.Context, images []IngestedImage) ([]batch.ImageRecord, error) {
	ctx = services.WithStage(ctx, "extract")
	logger := logging.WithContext(ctx, d.logger)

	records := make([]batch.ImageRecord, 0, len(images))
	for idx, img := range images {
		imgCtx := services.WithImageIndex(ctx, idx)
		raw := d.extractor.Extract(imgCtx, img.Path)
		text := caption.Normalize(raw)
		name := filepath.Base(img.Path)
		rec := batch.ImageRecord{
			SourcePath: img.SourcePath,
			Filename:   name,
			PublicPath: path.Join(d.cfg.Paths.PublicPrefix, name),
			Index:      idx,
			Caption:    text,
			HasCaption: caption.HasCaption(text),
		}
		records = append(records, rec)
		logging.WithContext(imgCtx, d.logger).Info("caption extracted",
			logging.String("image", name),
			logging.Int("chars", len([]rune(text))),
			logging.Bool("has_caption", rec.HasCaption),
		)
	}

	result := batch.NewResult(records, d.cfg.Paths.ImagesDir)
	if err := batch.SaveResult(d.cfg.Paths.ResultsFile, result); err != nil {
		logging.ErrorWithContext(logger, "results not saved", "results_persist_failed",
			logging.String("path", d.cfg.Paths.ResultsFile),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that paths.results_file is writable"),
		)
		return records, services.Wrap(services.ErrConfiguration, "extract", "persist results", d.cfg.Paths.ResultsFile, err)
	}
	logger.Info("results saved",
		logging.String("path", d.cfg.Paths.ResultsFile),
		logging.Int("images", result.Metadata.TotalImages),
		logging.Int("with_caption", result.Metadata.ImagesWithPrompts),
	)
	return records, nil
}
