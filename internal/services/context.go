package services

import "context"

type contextKey string

const (
	runIDKey      contextKey = "run_id"
	stageKey      contextKey = "stage"
	videoIDKey    contextKey = "video_id"
	imageIndexKey contextKey = "image_index"
)

// WithRunID annotates context with the pipeline run correlation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(stageKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithVideoID annotates context with the 1-based video group identifier.
func WithVideoID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, videoIDKey, id)
}

// VideoIDFromContext extracts the video group identifier if present.
func VideoIDFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(videoIDKey).(int)
	return v, ok
}

// WithImageIndex annotates context with the 0-based batch position of an image.
func WithImageIndex(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, imageIndexKey, index)
}

// ImageIndexFromContext extracts the image index if present.
func ImageIndexFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(imageIndexKey).(int)
	return v, ok
}
