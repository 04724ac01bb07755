package mdpress

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	testTop     = "<article>\n"
	testBottom  = "</article>\n"
	testWrapper = "<h2 data-n='{h2_count}'>{h2_text}</h2>"
)

// writeTemplateDir creates a complete template set in a temp directory.
func writeTemplateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"top.html":      testTop,
		"bottom.html":   testBottom,
		"h2.html":       testWrapper,
		"boldcolor.txt": "#123456\n",
	})
	return dir
}

// writeFiles writes name -> content pairs under dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
