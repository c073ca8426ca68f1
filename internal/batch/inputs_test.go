package batch

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestIsSupportedImage(t *testing.T) {
	cases := map[string]bool{
		"a.png":       true,
		"b.JPG":       true,
		"c.Jpeg":      true,
		"d.gif":       false,
		"e.png.txt":   false,
		"noextension": false,
	}
	for name, want := range cases {
		if got := IsSupportedImage(name); got != want {
			t.Fatalf("IsSupportedImage(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.PNG", "notes.txt", "c.jpeg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	want := []string{filepath.Join(dir, "a.PNG"), filepath.Join(dir, "b.jpg"), filepath.Join(dir, "c.jpeg")}
	if !slices.Equal(got, want) {
		t.Fatalf("ScanDir = %v, want %v", got, want)
	}

	if _, err := ScanDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
