package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"carousel/internal/batch"
	"carousel/internal/logging"
	"carousel/internal/render"
	"carousel/internal/services"
)

// VideoReport is the outcome of one video group.
type VideoReport struct {
	ID           int
	Images       int
	FrameCount   int
	FailedFrames []int
	FramesDir    string
	OutputPath   string
	Created      bool
	Reason       string
}

// VideoFileName is the output file name of a video group.
func VideoFileName(groupID int) string {
	return fmt.Sprintf("video%d.mp4", groupID)
}

// RenderVideos partitions records and renders then assembles each group.
// Every group is attempted regardless of earlier failures.
func (d *Driver) RenderVideos(ctx context.Context, records []batch.ImageRecord) []VideoReport {
	ctx = services.WithStage(ctx, "render")
	groups := batch.Partition(records, d.cfg.Render.ImagesPerVideo)
	logging.WithContext(ctx, d.logger).Info("video groups planned",
		logging.Int("groups", len(groups)),
		logging.Int("images_per_video", d.cfg.Render.ImagesPerVideo),
	)

	reports := make([]VideoReport, 0, len(groups))
	for _, group := range groups {
		groupCtx := services.WithVideoID(ctx, group.ID)
		outcome := d.renderer.RenderGroup(groupCtx, group)

		output := filepath.Join(d.cfg.Paths.OutputDir, VideoFileName(group.ID))
		assembled := d.assembler.Assemble(services.WithStage(groupCtx, "assemble"), outcome.FramesDir, render.FramePattern(d.cfg.Render.FrameFormat), output)

		reports = append(reports, VideoReport{
			ID:           group.ID,
			Images:       len(group.Images),
			FrameCount:   outcome.FrameCount,
			FailedFrames: outcome.FailedFrames,
			FramesDir:    outcome.FramesDir,
			OutputPath:   output,
			Created:      assembled.Success,
			Reason:       assembled.Reason,
		})
	}
	return reports
}
