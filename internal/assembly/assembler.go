package assembly

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"carousel/internal/config"
	"carousel/internal/deps"
	"carousel/internal/logging"
)

// ReasonEncoderUnavailable is reported when no encoder binary can be found.
const ReasonEncoderUnavailable = "encoder unavailable"

// FrameRate is the input and output frame rate of assembled videos.
const FrameRate = "30"

// Outcome reports the result of one encode.
type Outcome struct {
	Success    bool
	Reason     string
	OutputPath string
}

// Assembler wraps ffmpeg invocations.
type Assembler struct {
	binary    string
	fallbacks []string
	resolver  *deps.Resolver
	exec      deps.Executor
	logger    *slog.Logger
}

// Option configures the assembler.
type Option func(*Assembler)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec deps.Executor) Option {
	return func(a *Assembler) {
		if exec != nil {
			a.exec = exec
		}
	}
}

// WithResolver overrides how the encoder binary is located.
func WithResolver(r *deps.Resolver) Option {
	return func(a *Assembler) {
		if r != nil {
			a.resolver = r
		}
	}
}

// New constructs an assembler for the configured encoder.
func New(cfg config.Encoder, logger *slog.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		binary:    cfg.Binary,
		fallbacks: append([]string(nil), cfg.FallbackPaths...),
		resolver:  deps.NewResolver(),
		exec:      deps.CommandExecutor{},
		logger:    logging.NewComponentLogger(logger, "assembler"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Args returns the encoder arguments for the given frame input and output.
func Args(input, outputPath string) []string {
	return []string{
		"-y",
		"-framerate", FrameRate,
		"-i", input,
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outputPath,
	}
}

// Assemble encodes framesDir/pattern into outputPath.
func (a *Assembler) Assemble(ctx context.Context, framesDir, pattern, outputPath string) Outcome {
	logger := logging.WithContext(ctx, a.logger)
	outcome := Outcome{OutputPath: outputPath}

	tool, err := a.resolver.Resolve("ffmpeg", a.binary, a.fallbacks...)
	if err != nil {
		outcome.Reason = ReasonEncoderUnavailable
		logging.WarnWithContext(logger, "encoder not found, skipping video", "encoder_unavailable",
			logging.String("binary", a.binary),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "install ffmpeg or set encoder.binary"),
			logging.String(logging.FieldImpact, "frames are kept but no video is produced"),
		)
		return outcome
	}

	tail := deps.NewOutputTail(12)
	cmd := deps.Command{Binary: tool.Path, Args: Args(filepath.Join(framesDir, pattern), outputPath)}
	logger.Info("encoding video",
		logging.String("encoder", tool.Path),
		logging.String("output", outputPath),
	)
	logger.Debug("encoder command", logging.String("command", cmd.String()))

	start := time.Now()
	if err := a.exec.Run(ctx, cmd, tail.Add); err != nil {
		outcome.Reason = failureReason(err, tail)
		logging.WarnWithContext(logger, "encoding failed", "encode_failed",
			logging.String("output", outputPath),
			logging.String("reason", outcome.Reason),
			logging.String(logging.FieldErrorHint, "check that the frames directory contains frames"),
			logging.String(logging.FieldImpact, "this video is skipped"),
		)
		return outcome
	}

	outcome.Success = true
	logger.Info("video created",
		logging.String("output", outputPath),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return outcome
}

func failureReason(err error, tail *deps.OutputTail) string {
	diag := strings.TrimSpace(tail.String())
	if diag == "" {
		return err.Error()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err.Error()
	}
	lines := strings.Split(diag, "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return strings.Join(lines, " | ")
}
