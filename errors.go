package mdpress

import (
	"errors"

	"github.com/alnah/go-mdpress/internal/assets"
	"github.com/alnah/go-mdpress/internal/pipeline"
)

// Sentinel errors for per-document failures.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrRender       = pipeline.ErrRender
)

// Sentinel errors for setup failures.
var (
	ErrInvalidInputDir  = errors.New("invalid input directory")
	ErrOutputDir        = errors.New("failed to create output directory")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrInvalidExtension = errors.New("invalid output extension")

	// Template errors, re-exported from the loader.
	ErrMissingTemplates   = assets.ErrMissingTemplates
	ErrInvalidTemplateDir = assets.ErrInvalidTemplateDir
	ErrTemplateRead       = assets.ErrTemplateRead
	ErrInvalidBoldColor   = assets.ErrInvalidBoldColor

	// Rendering option errors, re-exported from the engine.
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle
	ErrInvalidImageBaseURL   = pipeline.ErrInvalidImageBaseURL
)

// MissingTemplatesError names every required template file absent from a
// directory. It matches ErrMissingTemplates with errors.Is.
type MissingTemplatesError = assets.MissingTemplatesError
