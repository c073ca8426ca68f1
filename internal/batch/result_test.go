package batch

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewResult(t *testing.T) {
	recs := []ImageRecord{
		{Filename: "a.png", PublicPath: "/batch-images/a.png", Index: 0, Caption: "a castle at dusk in fog", HasCaption: true},
		{Filename: "b.png", PublicPath: "/batch-images/b.png", Index: 1, Caption: "", HasCaption: false},
		{Filename: "c.png", PublicPath: "/batch-images/c.png", Index: 2, Caption: "short", HasCaption: false},
	}

	result := NewResult(recs, "/proj/public/batch-images")

	if result.Metadata.TotalImages != 3 || result.Metadata.ImagesWithPrompts != 1 {
		t.Fatalf("unexpected metadata %#v", result.Metadata)
	}
	if result.Images[1].Prompt != NoTextPlaceholder || result.Images[1].HasPrompt {
		t.Fatalf("empty caption should use placeholder, got %#v", result.Images[1])
	}
	if result.Images[2].Prompt != "short" {
		t.Fatalf("short caption should be kept verbatim, got %q", result.Images[2].Prompt)
	}
	for i, entry := range result.Images {
		if entry.Index != i {
			t.Fatalf("entry %d has index %d", i, entry.Index)
		}
	}
}

func TestSaveResultWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "batch-prompts.json")
	result := NewResult([]ImageRecord{
		{Filename: "a.png", PublicPath: "/batch-images/a.png", Caption: "a castle at dusk in fog", HasCaption: true},
	}, "/src")

	if err := SaveResult(path, result); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"images\": [") {
		t.Fatalf("expected 2-space indentation, got:\n%s", data)
	}

	var doc struct {
		Images   []map[string]any `json:"images"`
		Metadata map[string]any   `json:"metadata"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"filename", "publicPath", "prompt", "hasPrompt", "index"} {
		if _, ok := doc.Images[0][key]; !ok {
			t.Fatalf("image entry missing %q: %v", key, doc.Images[0])
		}
	}
	for _, key := range []string{"totalImages", "imagesWithPrompts", "sourceDirectory"} {
		if _, ok := doc.Metadata[key]; !ok {
			t.Fatalf("metadata missing %q: %v", key, doc.Metadata)
		}
	}

	loaded, err := LoadResult(path)
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	if loaded.Metadata.SourceDirectory != "/src" || loaded.Images[0].Prompt != "a castle at dusk in fog" {
		t.Fatalf("unexpected loaded result %#v", loaded)
	}
}

func TestSaveResultEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch-prompts.json")
	if err := SaveResult(path, NewResult(nil, "/src")); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"images": []`) {
		t.Fatalf("empty batch should serialize an empty array, got:\n%s", data)
	}
}

func TestLoadResultMissing(t *testing.T) {
	_, err := LoadResult(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
