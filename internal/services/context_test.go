package services_test

import (
	"context"
	"testing"

	"carousel/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithStage(ctx, "render")
	ctx = services.WithVideoID(ctx, 2)
	ctx = services.WithImageIndex(ctx, 0)

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "render" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if id, ok := services.VideoIDFromContext(ctx); !ok || id != 2 {
		t.Fatalf("unexpected video id: %v %v", id, ok)
	}
	if idx, ok := services.ImageIndexFromContext(ctx); !ok || idx != 0 {
		t.Fatalf("unexpected image index: %v %v", idx, ok)
	}
}

func TestStageBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
	if _, ok := services.VideoIDFromContext(ctx); ok {
		t.Fatal("expected no video id")
	}
}
