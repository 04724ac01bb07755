// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForMissingTemplates returns hints for a template directory lacking required files.
// Suggests the init command and, when not already enabled, subdirectory search.
func ForMissingTemplates(dir string, searchSubdirs bool) string {
	hints := []string{"run 'mdpress init " + dir + "' to write a starter template set"}
	if !searchSubdirs {
		hints = append(hints, "use --search-subdirs if the templates are one level down")
	}
	return formatHints(hints)
}

// ForNoTemplateDir returns a hint for a run with no template directory at all.
func ForNoTemplateDir() string {
	return format("run 'mdpress init' to create a starter template set")
}

// ForStarterExists returns a hint for init refusing to overwrite templates.
func ForStarterExists() string {
	return format("use --force to overwrite the existing files")
}

// ForInvalidBoldColor returns a hint for an unusable boldcolor.txt.
func ForInvalidBoldColor() string {
	return format("use a CSS color such as #af2618, rgb(175, 38, 24) or darkred")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (inside an mdpress directory) to suggest
	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == "mdpress" {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputDirectory returns hints for an unreadable input directory.
func ForInputDirectory() string {
	return format("pass an existing directory containing .md files with --input")
}

// ForHighlightStyle returns hints listing available highlight styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFailedDocuments returns the hint printed when a batch had failures.
func ForFailedDocuments(failed int) string {
	if failed == 0 {
		return ""
	}
	return format("check the errors above and retry")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
