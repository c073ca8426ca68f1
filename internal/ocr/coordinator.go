package ocr

import (
	"context"
	"log/slog"
	"strings"

	"carousel/internal/logging"
)

// Coordinator runs providers in priority order.
type Coordinator struct {
	providers []Provider
	logger    *slog.Logger
}

// NewCoordinator constructs a coordinator over providers, tried in the order
// given. Nil providers are skipped.
func NewCoordinator(logger *slog.Logger, providers ...Provider) *Coordinator {
	filtered := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			filtered = append(filtered, p)
		}
	}
	return &Coordinator{
		providers: filtered,
		logger:    logging.NewComponentLogger(logger, "ocr"),
	}
}

// Providers returns the provider names in priority order.
func (c *Coordinator) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Extract returns the first non-empty text produced by a provider, or "" when
// every provider fails or finds nothing. Results are not cached.
func (c *Coordinator) Extract(ctx context.Context, path string) string {
	logger := logging.WithContext(ctx, c.logger)
	for _, provider := range c.providers {
		text, err := provider.Extract(ctx, path)
		if err != nil {
			class := ErrorClass(err)
			if class == "unavailable" {
				logger.Debug("ocr provider unavailable",
					logging.String("provider", provider.Name()),
					logging.Error(err),
				)
				continue
			}
			logging.WarnWithContext(logger, "ocr provider failed", "ocr_provider_failed",
				logging.String("provider", provider.Name()),
				logging.String("error_class", class),
				logging.String("image", path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check provider credentials and the image file"),
				logging.String(logging.FieldImpact, "falling back to the next provider"),
			)
			continue
		}
		if strings.TrimSpace(text) == "" {
			logger.Debug("ocr provider returned no text", logging.String("provider", provider.Name()))
			continue
		}
		logger.Debug("ocr text extracted",
			logging.String("provider", provider.Name()),
			logging.Int("chars", len([]rune(text))),
		)
		return text
	}
	return ""
}
