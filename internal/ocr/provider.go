package ocr

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable marks a provider that cannot run at all (missing
	// credentials, engine not installed).
	ErrUnavailable = errors.New("ocr provider unavailable")
	// ErrRuntime marks a provider that ran and failed.
	ErrRuntime = errors.New("ocr provider failed")
)

// Provider extracts raw text from an image file.
type Provider interface {
	Name() string
	Extract(ctx context.Context, path string) (string, error)
}

// ErrorClass returns the error class of a provider failure for logging.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "runtime"
	}
}
