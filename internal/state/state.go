// Package state persists the directories used by the last conversion so the
// next run can omit them.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/alnah/go-mdpress/internal/yamlutil"
)

// DefaultPath returns the state file location.
// Can be overridden for testing.
var DefaultPath = func() string {
	return filepath.Join(xdg.StateHome, "mdpress", "state.yaml")
}

// State holds the last-used directories.
type State struct {
	InputDir    string    `yaml:"inputDir,omitempty"`
	OutputDir   string    `yaml:"outputDir,omitempty"`
	TemplateDir string    `yaml:"templateDir,omitempty"`
	UpdatedAt   time.Time `yaml:"updatedAt,omitempty"`
}

// Load reads state from path. A missing file yields an empty state.
func Load(path string) (*State, error) {
	var s State
	if err := yamlutil.ReadFile(path, &s, false); err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return &s, nil
}

// Remember records the directories of a run, ignoring empty values.
func (s *State) Remember(inputDir, outputDir, templateDir string, now time.Time) {
	if inputDir != "" {
		s.InputDir = inputDir
	}
	if outputDir != "" {
		s.OutputDir = outputDir
	}
	if templateDir != "" {
		s.TemplateDir = templateDir
	}
	s.UpdatedAt = now.UTC()
}

// Save writes state to path, creating its directory.
func (s *State) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := yamlutil.WriteFile(path, s, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
