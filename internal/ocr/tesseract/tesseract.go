package tesseract

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"carousel/internal/ocr"
)

// client is the subset of *gosseract.Client the engine drives.
type client interface {
	SetImageFromBytes(data []byte) error
	SetLanguage(langs ...string) error
	Text() (string, error)
	Close() error
}

// Engine extracts text with a fresh gosseract client per image.
type Engine struct {
	languages     []string
	clientFactory func() (client, error)
	version       func() (string, error)
	installed     func() ([]string, error)
}

// NewEngine constructs a Tesseract-backed provider for the given languages.
func NewEngine(languages []string) *Engine {
	return &Engine{
		languages:     append([]string(nil), languages...),
		clientFactory: newClient,
		version:       libraryVersion,
		installed:     installedLanguages,
	}
}

// Name identifies the provider in logs.
func (e *Engine) Name() string { return "tesseract" }

// Extract runs OCR on the image at path.
func (e *Engine) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("tesseract: read image: %w: %w", ocr.ErrRuntime, err)
	}

	c, err := e.clientFactory()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %w", ocr.ErrUnavailable, err)
	}
	defer c.Close()

	if len(e.languages) > 0 {
		if err := c.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("tesseract: set languages: %w: %w", ocr.ErrUnavailable, err)
		}
	}
	if err := c.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("tesseract: set image: %w: %w", ocr.ErrRuntime, err)
	}
	text, err := c.Text()
	if err != nil {
		if isInitFailure(err) {
			return "", fmt.Errorf("tesseract: %w: %w", ocr.ErrUnavailable, err)
		}
		return "", fmt.Errorf("tesseract: recognize text: %w: %w", ocr.ErrRuntime, err)
	}
	return strings.TrimSpace(text), nil
}

// Status reports the linked libtesseract version and confirms traineddata is
// installed for every configured language.
func (e *Engine) Status() (string, error) {
	version, err := e.version()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %w", ocr.ErrUnavailable, err)
	}
	installed, err := e.installed()
	if err != nil {
		return "", fmt.Errorf("tesseract: list traineddata: %w: %w", ocr.ErrUnavailable, err)
	}
	var missing []string
	for _, lang := range e.languages {
		if !slices.Contains(installed, lang) {
			missing = append(missing, lang)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("tesseract %s: %w: no traineddata for %s", version, ocr.ErrUnavailable, strings.Join(missing, ", "))
	}
	if len(e.languages) == 0 {
		return fmt.Sprintf("libtesseract %s", version), nil
	}
	return fmt.Sprintf("libtesseract %s (%s)", version, strings.Join(e.languages, ", ")), nil
}

// isInitFailure matches the errors gosseract reports when libtesseract cannot
// load its language data.
func isInitFailure(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "initialize") || strings.Contains(msg, "tessdata")
}
