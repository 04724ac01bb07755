package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for template operations.
var (
	// ErrMissingTemplates indicates required template files are absent.
	ErrMissingTemplates = errors.New("missing required template files")

	// ErrInvalidTemplateDir indicates the template path is not a readable directory.
	ErrInvalidTemplateDir = errors.New("invalid template directory")

	// ErrTemplateRead indicates an I/O error occurred while reading a template file.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrInvalidBoldColor indicates boldcolor.txt holds a value that is not a CSS color.
	ErrInvalidBoldColor = errors.New("invalid bold color")

	// ErrEmptyHeadingTemplate indicates h2.html is empty or whitespace only.
	ErrEmptyHeadingTemplate = errors.New("heading template is empty")

	// ErrHeadingPlaceholder indicates h2.html lacks the {h2_text} placeholder.
	ErrHeadingPlaceholder = errors.New("heading template missing placeholder")

	// ErrStarterExists indicates WriteStarter would overwrite an existing file.
	ErrStarterExists = errors.New("template file already exists")
)

// MissingTemplatesError lists the required files absent from a template directory.
// It matches ErrMissingTemplates with errors.Is.
type MissingTemplatesError struct {
	Dir     string
	Missing []string
}

func (e *MissingTemplatesError) Error() string {
	return fmt.Sprintf("%s in %s: %s", ErrMissingTemplates, e.Dir, strings.Join(e.Missing, ", "))
}

func (e *MissingTemplatesError) Unwrap() error {
	return ErrMissingTemplates
}
