package pipeline

import (
	"log/slog"

	"carousel/internal/config"
	"carousel/internal/logging"
	"carousel/internal/ocr"
	"carousel/internal/ocr/tesseract"
	"carousel/internal/ocr/vision"
)

// NewProviders builds the OCR providers named in cfg, in configured order.
func NewProviders(cfg *config.Config, logger *slog.Logger) []ocr.Provider {
	providers := make([]ocr.Provider, 0, len(cfg.OCR.Providers))
	for _, name := range cfg.OCR.Providers {
		switch name {
		case config.ProviderVision:
			client := vision.NewClient(vision.Config{
				APIKey:         cfg.OCR.VisionAPIKey,
				Endpoint:       cfg.OCR.VisionEndpoint,
				TimeoutSeconds: cfg.OCR.VisionTimeoutSeconds,
				LanguageHints:  cfg.OCR.VisionLanguageHints,
			})
			if !client.Available() {
				logging.NewComponentLogger(logger, "ocr").Info("cloud vision disabled: no api key")
			}
			providers = append(providers, client)
		case config.ProviderTesseract:
			providers = append(providers, tesseract.NewEngine(cfg.OCR.TesseractLanguages))
		}
	}
	return providers
}
