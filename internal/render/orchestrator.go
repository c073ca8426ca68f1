package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"carousel/internal/batch"
	"carousel/internal/config"
	"carousel/internal/deps"
	"carousel/internal/logging"
	"carousel/internal/services"
)

const (
	defaultFrameTimeout = 30 * time.Second
	diagnosticLength    = 100
)

// Outcome summarizes one group's render pass.
type Outcome struct {
	FramesDir    string
	FrameCount   int
	FailedFrames []int
	Completed    int
}

// Failed reports how many frames failed.
func (o Outcome) Failed() int { return len(o.FailedFrames) }

// Progress is reported once per frame attempt.
type Progress struct {
	GroupID    int
	FrameIndex int
	Done       int
	Total      int
	Failed     bool
}

// Options configures an Orchestrator.
type Options struct {
	Command        string
	Args           []string
	ProjectDir     string
	OutputDir      string
	FramesPerSlide int
	FrameTimeout   time.Duration
	FrameFormat    string
	CompositionID  func(groupID int) string
	Executor       deps.Executor
	Logger         *slog.Logger
	OnProgress     func(Progress)
}

// OptionsFromConfig maps configuration onto orchestrator options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Command:        cfg.Render.Command,
		Args:           append([]string(nil), cfg.Render.Args...),
		ProjectDir:     cfg.Paths.ProjectDir,
		OutputDir:      cfg.Paths.OutputDir,
		FramesPerSlide: cfg.Render.FramesPerSlide,
		FrameTimeout:   time.Duration(cfg.Render.FrameTimeoutSeconds) * time.Second,
		FrameFormat:    cfg.Render.FrameFormat,
		CompositionID:  cfg.CompositionID,
	}
}

// Orchestrator renders video groups frame by frame.
type Orchestrator struct {
	opts    Options
	exec    deps.Executor
	logger  *slog.Logger
	sampler *logging.ProgressSampler
}

// NewOrchestrator constructs an orchestrator, filling defaults for unset options.
func NewOrchestrator(opts Options) *Orchestrator {
	if opts.FramesPerSlide <= 0 {
		opts.FramesPerSlide = DefaultFramesPerSlide
	}
	if opts.FrameTimeout <= 0 {
		opts.FrameTimeout = defaultFrameTimeout
	}
	if opts.CompositionID == nil {
		opts.CompositionID = func(id int) string { return "BatchCarousel-Video" + strconv.Itoa(id) }
	}
	executor := opts.Executor
	if executor == nil {
		executor = deps.CommandExecutor{}
	}
	return &Orchestrator{
		opts:    opts,
		exec:    executor,
		logger:  logging.NewComponentLogger(opts.Logger, "renderer"),
		sampler: logging.NewProgressSampler(5),
	}
}

// RenderGroup renders every frame of group into its frame directory.
func (o *Orchestrator) RenderGroup(ctx context.Context, group batch.VideoGroup) Outcome {
	ctx = services.WithStage(services.WithVideoID(ctx, group.ID), "render")
	logger := logging.WithContext(ctx, o.logger)

	jobs := PlanFrames(group, o.opts.FramesPerSlide)
	outcome := Outcome{
		FramesDir:  filepath.Join(o.opts.OutputDir, FramesDirName(group.ID)),
		FrameCount: len(jobs),
	}
	if err := os.MkdirAll(outcome.FramesDir, 0o755); err != nil {
		// Frames are still attempted.
		logging.WarnWithContext(logger, "frame directory not created", "frames_dir_failed",
			logging.String("dir", outcome.FramesDir),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check output_dir permissions"),
			logging.String(logging.FieldImpact, "frames may fail to render"),
		)
	}

	composition := o.opts.CompositionID(group.ID)
	logger.Info("rendering frames",
		logging.String("composition", composition),
		logging.Int("images", len(group.Images)),
		logging.Int("frames", len(jobs)),
	)

	stage := fmt.Sprintf("Video %d", group.ID)
	o.sampler.Reset()
	start := time.Now()
	for i, job := range jobs {
		output := filepath.Join(outcome.FramesDir, FrameFileName(job.FrameIndex, o.opts.FrameFormat))
		err := o.renderFrame(ctx, composition, job.FrameIndex, output)
		if err != nil {
			outcome.FailedFrames = append(outcome.FailedFrames, job.FrameIndex)
			logging.WarnWithContext(logger, "frame render failed", "frame_render_failed",
				logging.Int("frame", job.FrameIndex),
				logging.Int(logging.FieldImageIndex, job.Image.Index),
				logging.String("reason", err.Error()),
				logging.String(logging.FieldErrorHint, "run the renderer command manually to inspect the failure"),
				logging.String(logging.FieldImpact, "the video will be missing this frame"),
			)
		} else {
			outcome.Completed++
		}

		done := i + 1
		if o.opts.OnProgress != nil {
			o.opts.OnProgress(Progress{
				GroupID:    group.ID,
				FrameIndex: job.FrameIndex,
				Done:       done,
				Total:      len(jobs),
				Failed:     err != nil,
			})
		}
		if percent := logging.FramePercent(done, len(jobs)); o.sampler.ShouldLog(percent, stage) {
			logger.Info("render progress",
				logging.String("progress", fmt.Sprintf("Frame %d/%d", done, len(jobs))),
				logging.Int("done", done),
				logging.Int("total", len(jobs)),
				logging.Int("failed", outcome.Failed()),
				logging.Float64("percent", percent),
			)
		}
	}

	attrs := []logging.Attr{
		logging.String("frames_dir", outcome.FramesDir),
		logging.Int("completed", outcome.Completed),
		logging.Int("failed", outcome.Failed()),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	}
	if outcome.Failed() > 0 {
		logging.WarnWithContext(logger, "frames rendered with failures", "render_partial",
			append(attrs, logging.String(logging.FieldImpact, "the video will have gaps or may fail to encode"))...)
	} else {
		logger.Info("frames rendered", logging.Args(attrs...)...)
	}
	return outcome
}

func (o *Orchestrator) renderFrame(ctx context.Context, composition string, frame int, output string) error {
	frameCtx, cancel := context.WithTimeout(ctx, o.opts.FrameTimeout)
	defer cancel()

	args := make([]string, 0, len(o.opts.Args)+5)
	args = append(args, o.opts.Args...)
	args = append(args, composition, output, "--sequence", strconv.Itoa(frame), "--overwrite")

	tail := deps.NewOutputTail(20)
	err := o.exec.Run(frameCtx, deps.Command{Binary: o.opts.Command, Args: args, Dir: o.opts.ProjectDir}, tail.Add)
	if err == nil {
		return nil
	}
	if frameCtx.Err() != nil && ctx.Err() == nil {
		return services.Wrap(services.ErrTimeout, "render", "frame",
			fmt.Sprintf("frame %d exceeded %s", frame, o.opts.FrameTimeout), err)
	}
	if diag := tail.Head(diagnosticLength); diag != "" {
		return services.Wrap(services.ErrExternalTool, "render", "frame", diag, err)
	}
	return services.Wrap(services.ErrExternalTool, "render", "frame", fmt.Sprintf("frame %d failed", frame), err)
}
