package config

const (
	defaultProjectDir          = "."
	defaultInputDir            = "~/Downloads/SSK"
	defaultLogDir              = "~/.local/share/carousel/logs"
	defaultPublicPrefix        = "/batch-images"
	defaultVisionEndpoint      = "https://vision.googleapis.com/v1/images:annotate"
	sampleVisionAPIKey         = "your_vision_api_key_here"
	defaultVisionTimeout       = 30
	defaultRenderCommand       = "npx"
	defaultCompositionPrefix   = "BatchCarousel-Video"
	defaultImagesPerVideo      = 4
	defaultFramesPerSlide      = 120
	defaultFrameTimeoutSeconds = 30
	defaultFrameFormat         = "png"
	defaultEncoderBinary       = "ffmpeg"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"

	// ProviderVision names the Google Cloud Vision OCR provider.
	ProviderVision = "vision"
	// ProviderTesseract names the local Tesseract OCR provider.
	ProviderTesseract = "tesseract"
)

// Default returns a Config populated with repository defaults. Directory
// fields left empty are derived from the project directory during Load.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectDir:      defaultProjectDir,
			DefaultInputDir: defaultInputDir,
			LogDir:          defaultLogDir,
			PublicPrefix:    defaultPublicPrefix,
		},
		OCR: OCR{
			Providers:            []string{ProviderVision, ProviderTesseract},
			VisionEndpoint:       defaultVisionEndpoint,
			VisionTimeoutSeconds: defaultVisionTimeout,
			TesseractLanguages:   []string{"eng"},
		},
		Render: Render{
			Command:             defaultRenderCommand,
			Args:                []string{"remotion", "still"},
			CompositionPrefix:   defaultCompositionPrefix,
			ImagesPerVideo:      defaultImagesPerVideo,
			FramesPerSlide:      defaultFramesPerSlide,
			FrameTimeoutSeconds: defaultFrameTimeoutSeconds,
			FrameFormat:         defaultFrameFormat,
		},
		Encoder: Encoder{
			Binary: defaultEncoderBinary,
			FallbackPaths: []string{
				"/opt/miniconda3/bin/ffmpeg",
				"/opt/homebrew/bin/ffmpeg",
				"/usr/local/bin/ffmpeg",
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
