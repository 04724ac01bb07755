package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdpress"
	"github.com/alnah/go-mdpress/internal/assets"
	"github.com/alnah/go-mdpress/internal/config"
)

// Process exit codes. 0-2 keep their usual Unix meaning; the rest stay
// below 126, which shells reserve.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or templates
	ExitIO      = 3 // File not found, permission denied
	ExitPartial = 4 // Batch finished but some documents failed
)

// exitCodeFor maps an error returned by a command to an exit code.
// Errors are matched with errors.Is, so wrapping must use %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Per-document failures (exit 4)
	if errors.Is(err, ErrDocumentsFailed) {
		return ExitPartial
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrNoTemplates) ||
		errors.Is(err, ErrEnvFile) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, mdpress.ErrMissingTemplates) ||
		errors.Is(err, mdpress.ErrInvalidTemplateDir) ||
		errors.Is(err, mdpress.ErrInvalidBoldColor) ||
		errors.Is(err, mdpress.ErrUnknownHighlightStyle) ||
		errors.Is(err, mdpress.ErrInvalidImageBaseURL) ||
		errors.Is(err, mdpress.ErrInvalidWorkers) ||
		errors.Is(err, mdpress.ErrInvalidExtension) ||
		errors.Is(err, assets.ErrStarterExists) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdpress.ErrInvalidInputDir) ||
		errors.Is(err, mdpress.ErrOutputDir) ||
		errors.Is(err, mdpress.ErrTemplateRead) {
		return ExitIO
	}

	return ExitGeneral
}
