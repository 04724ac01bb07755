package mdpress

import (
	"github.com/alnah/go-mdpress/internal/logger"
)

// converterConfig holds settings applied by Option functions.
type converterConfig struct {
	searchSubdirs  bool
	workers        int
	boldColor      string // overrides boldcolor.txt when set
	highlightStyle string
	imageBaseURL   string
	hardWraps      bool
	extension      string
}

// Option configures a Converter.
type Option func(*Converter)

// WithTemplateDiscovery makes NewConverter look one level down for a complete
// template set when the given directory lacks one. Subdirectories are tried in
// name order.
func WithTemplateDiscovery(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.searchSubdirs = enabled
	}
}

// WithWorkers sets how many documents ConvertDirectory converts at once.
// Default 1 (sequential). Zero means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.cfg.workers = n
	}
}

// WithLogger sets the logger for template fallbacks and batch events.
// Default: warnings to stderr.
func WithLogger(l *logger.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBoldColor overrides the template set's bold color.
func WithBoldColor(color string) Option {
	return func(c *Converter) {
		c.cfg.boldColor = color
	}
}

// WithHighlightStyle sets the chroma style for fenced code blocks.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}

// WithImageBaseURL resolves relative image sources against an absolute
// http(s) URL.
func WithImageBaseURL(raw string) Option {
	return func(c *Converter) {
		c.cfg.imageBaseURL = raw
	}
}

// WithHardWraps renders newlines inside paragraphs as line breaks.
func WithHardWraps(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.hardWraps = enabled
	}
}

// WithOutputExtension sets the extension of written files (default ".txt").
func WithOutputExtension(ext string) Option {
	return func(c *Converter) {
		c.cfg.extension = ext
	}
}
