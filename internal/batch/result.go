package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"carousel/internal/fileutil"
)

// NoTextPlaceholder is written as the prompt of images without a caption.
const NoTextPlaceholder = "No text detected"

// ImageEntry is one image in the persisted result document.
type ImageEntry struct {
	Filename   string `json:"filename"`
	PublicPath string `json:"publicPath"`
	Prompt     string `json:"prompt"`
	HasPrompt  bool   `json:"hasPrompt"`
	Index      int    `json:"index"`
}

// Metadata summarizes the batch.
type Metadata struct {
	TotalImages       int    `json:"totalImages"`
	ImagesWithPrompts int    `json:"imagesWithPrompts"`
	SourceDirectory   string `json:"sourceDirectory"`
}

// BatchResult is the document consumed by the rendering front-end.
type BatchResult struct {
	Images   []ImageEntry `json:"images"`
	Metadata Metadata     `json:"metadata"`
}

// NewResult builds the result document for records, in order.
func NewResult(records []ImageRecord, sourceDir string) BatchResult {
	result := BatchResult{
		Images:   make([]ImageEntry, 0, len(records)),
		Metadata: Metadata{TotalImages: len(records), SourceDirectory: sourceDir},
	}
	for _, rec := range records {
		prompt := rec.Caption
		if prompt == "" {
			prompt = NoTextPlaceholder
		}
		if rec.HasCaption {
			result.Metadata.ImagesWithPrompts++
		}
		result.Images = append(result.Images, ImageEntry{
			Filename:   rec.Filename,
			PublicPath: rec.PublicPath,
			Prompt:     prompt,
			HasPrompt:  rec.HasCaption,
			Index:      rec.Index,
		})
	}
	return result
}

// SaveResult writes the result document as 2-space indented JSON, replacing
// any previous run's document.
func SaveResult(path string, result BatchResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("persist result: %w", err)
	}
	return nil
}

// LoadResult reads a previously persisted result document. A missing file
// returns fs.ErrNotExist.
func LoadResult(path string) (BatchResult, error) {
	var result BatchResult
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, err
		}
		return result, fmt.Errorf("read result file: %w", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("parse result file: %w", err)
	}
	return result, nil
}
