package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed starter/*
var starter embed.FS

// starterFiles lists the embedded starter templates in write order.
var starterFiles = []string{TopFile, BottomFile, HeadingFile, BoldColorFile}

// WriteStarter writes the embedded starter template set into dir, creating
// it when needed. Existing files are left untouched and reported with
// ErrStarterExists unless force is set. Returns the paths written.
func WriteStarter(dir string, force bool) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidTemplateDir)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplateDir, err)
	}

	if !force {
		for _, name := range starterFiles {
			target := filepath.Join(dir, name)
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrStarterExists, target)
			}
		}
	}

	written := make([]string, 0, len(starterFiles))
	for _, name := range starterFiles {
		content, err := starter.ReadFile("starter/" + name)
		if err != nil {
			return written, fmt.Errorf("%w: embedded %s: %v", ErrTemplateRead, name, err)
		}
		target := filepath.Join(dir, name)
		// #nosec G306 -- templates are meant to be readable
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}
