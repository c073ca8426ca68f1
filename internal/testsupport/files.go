package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x42
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteImages creates n placeholder images named img-00.png, img-01.png, ...
// in dir and returns their paths in name order.
func WriteImages(t testing.TB, dir string, n int) []string {
	t.Helper()
	paths := make([]string, 0, n)
	for i := range n {
		path := filepath.Join(dir, fmt.Sprintf("img-%02d.png", i))
		WriteFile(t, path, 64)
		paths = append(paths, path)
	}
	return paths
}
