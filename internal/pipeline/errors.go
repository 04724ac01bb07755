package pipeline

import "errors"

// Sentinel errors for rendering.
var (
	// ErrRender indicates goldmark failed or a rule panicked while rendering.
	ErrRender = errors.New("markdown rendering failed")

	// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")

	// ErrInvalidImageBaseURL indicates the image base URL is not an absolute URL.
	ErrInvalidImageBaseURL = errors.New("invalid image base URL")
)
