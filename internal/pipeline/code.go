package pipeline

import (
	"fmt"
	"sort"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// CodeRule highlights fenced code blocks with chroma. Styles are written
// inline because the fragment is pasted into pages without a stylesheet.
type CodeRule struct {
	style string
}

// NewCodeRule creates a CodeRule for a registered chroma style.
func NewCodeRule(style string) *CodeRule {
	return &CodeRule{style: style}
}

// Name implements Rule.
func (r *CodeRule) Name() string { return "code" }

// Extend implements goldmark.Extender.
func (r *CodeRule) Extend(m goldmark.Markdown) {
	highlighting.NewHighlighting(
		highlighting.WithStyle(r.style),
		highlighting.WithGuessLanguage(false),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(false),
		),
	).Extend(m)
}

// ValidateHighlightStyle checks that name is a registered chroma style.
func ValidateHighlightStyle(name string) error {
	if _, ok := styles.Registry[name]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
}

// HighlightStyles returns the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
