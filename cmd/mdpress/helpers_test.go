package main

// Notes:
// - Shared fixtures for command tests: an isolated Environment with captured
//   output and a per-test state file, plus template and markdown writers.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testEnv returns an Environment writing to buffers, with state kept in a
// temporary directory.
func testEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	statePath := filepath.Join(t.TempDir(), "state", "state.yaml")
	return &Environment{
		Now:       func() time.Time { return fixedNow },
		Stdout:    &stdout,
		Stderr:    &stderr,
		StatePath: func() string { return statePath },
	}, &stdout, &stderr
}

// writeTemplates writes a complete template set into dir.
func writeTemplates(t *testing.T, dir string) {
	t.Helper()
	writeFiles(t, dir, map[string]string{
		"top.html":      "<section>\n",
		"bottom.html":   "</section>\n",
		"h2.html":       "<h2 id='s{h2_count}'>{h2_text}</h2>",
		"boldcolor.txt": "#af2618\n",
	})
}

// writeFiles writes name -> content pairs into dir, creating it if needed.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// convertDirs creates input, output and template directories under one
// temporary root, with templates written and the given markdown files.
func convertDirs(t *testing.T, docs map[string]string) (in, out, tpl string) {
	t.Helper()
	root := t.TempDir()
	in = filepath.Join(root, "in")
	out = filepath.Join(root, "out")
	tpl = filepath.Join(root, "templates")
	writeFiles(t, in, docs)
	writeTemplates(t, tpl)
	return in, out, tpl
}
