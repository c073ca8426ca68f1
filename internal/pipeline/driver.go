package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"carousel/internal/assembly"
	"carousel/internal/batch"
	"carousel/internal/config"
	"carousel/internal/logging"
	"carousel/internal/ocr"
	"carousel/internal/render"
	"carousel/internal/services"
)

// ErrNoInput reports that no usable images were found.
var ErrNoInput = errors.New("no input images")

// ErrLocked reports that another run holds the output directory lock.
var ErrLocked = errors.New("another carousel run is in progress")

// TextExtractor returns raw caption text for an image; "" when none is found.
type TextExtractor interface {
	Extract(ctx context.Context, path string) string
}

// GroupRenderer renders all frames of a video group.
type GroupRenderer interface {
	RenderGroup(ctx context.Context, group batch.VideoGroup) render.Outcome
}

// VideoAssembler encodes a frame directory into a video.
type VideoAssembler interface {
	Assemble(ctx context.Context, framesDir, pattern, outputPath string) assembly.Outcome
}

// Option configures a Driver.
type Option func(*Driver)

// WithExtractor overrides the OCR chain.
func WithExtractor(e TextExtractor) Option {
	return func(d *Driver) {
		if e != nil {
			d.extractor = e
		}
	}
}

// WithRenderer overrides the frame renderer.
func WithRenderer(r GroupRenderer) Option {
	return func(d *Driver) {
		if r != nil {
			d.renderer = r
		}
	}
}

// WithAssembler overrides the video assembler.
func WithAssembler(a VideoAssembler) Option {
	return func(d *Driver) {
		if a != nil {
			d.assembler = a
		}
	}
}

// WithFrameProgress receives one callback per frame attempt when the default
// renderer is used.
func WithFrameProgress(fn func(render.Progress)) Option {
	return func(d *Driver) {
		d.onProgress = fn
	}
}

// Driver runs the batch pipeline for one configuration.
type Driver struct {
	cfg        *config.Config
	logger     *slog.Logger
	extractor  TextExtractor
	renderer   GroupRenderer
	assembler  VideoAssembler
	onProgress func(render.Progress)
}

// NewDriver wires the default collaborators from cfg.
func NewDriver(cfg *config.Config, logger *slog.Logger, opts ...Option) *Driver {
	d := &Driver{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.extractor == nil {
		d.extractor = ocr.NewCoordinator(logger, NewProviders(cfg, logger)...)
	}
	if d.renderer == nil {
		renderOpts := render.OptionsFromConfig(cfg)
		renderOpts.Logger = logger
		renderOpts.OnProgress = d.onProgress
		d.renderer = render.NewOrchestrator(renderOpts)
	}
	if d.assembler == nil {
		d.assembler = assembly.New(cfg.Encoder, logger)
	}
	return d
}

// Extract runs the caption stage only: inputs are copied, captioned and the
// result document is written.
func (d *Driver) Extract(ctx context.Context, args []string) (Summary, error) {
	return d.run(ctx, args, false)
}

// Run executes the full pipeline.
func (d *Driver) Run(ctx context.Context, args []string) (Summary, error) {
	return d.run(ctx, args, true)
}

func (d *Driver) run(ctx context.Context, args []string, renderVideos bool) (Summary, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, d.logger)
	summary := Summary{
		RunID:       runID,
		ResultsPath: d.cfg.Paths.ResultsFile,
		OutputDir:   d.cfg.Paths.OutputDir,
	}
	start := time.Now()

	inputs, err := d.ResolveInputs(args)
	if err != nil {
		return summary, err
	}
	if err := d.cfg.EnsureDirectories(); err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "setup", "ensure directories", "", err)
	}

	lock := NewRunLock(d.cfg)
	locked, err := lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return summary, ErrLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.WarnWithContext(logger, "failed to release run lock", "run_lock_release_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "remove the lock file in output_dir if no run is active"),
			)
		}
	}()

	logger.Info("batch started",
		logging.Int("images", len(inputs)),
		logging.Bool("render", renderVideos),
	)

	copied := d.Ingest(ctx, inputs)
	if len(copied) == 0 {
		return summary, fmt.Errorf("%w: none of %d inputs could be copied", ErrNoInput, len(inputs))
	}

	records, err := d.ExtractCaptions(ctx, copied)
	summary.addRecords(records)
	if err != nil {
		return summary, err
	}

	if renderVideos {
		summary.addVideos(d.RenderVideos(ctx, records))
	}

	logger.Info("batch finished",
		logging.Int("images", summary.TotalImages),
		logging.Int("with_caption", summary.WithCaption),
		logging.Int("videos_created", summary.GroupsRendered),
		logging.Int("videos_skipped", summary.GroupsSkipped),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return summary, nil
}
