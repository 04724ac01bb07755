package pipeline

import (
	"github.com/yuin/goldmark"

	"github.com/alnah/go-mdpress/internal/assets"
)

// Rule is one rendering override. Extend registers its parser and renderer
// hooks on the goldmark instance.
type Rule interface {
	goldmark.Extender
	Name() string
}

// SourceRewriter is implemented by rules that rewrite Markdown before parsing.
type SourceRewriter interface {
	RewriteSource(src string) string
}

// OutputRewriter is implemented by rules that rewrite HTML after rendering.
type OutputRewriter interface {
	RewriteOutput(html string) string
}

// DefaultRules returns the rule list for a template set, in application order.
// Source and output rewriters run in this order too.
func DefaultRules(ts *assets.TemplateSet, highlightStyle string) []Rule {
	color := ts.BoldColor
	if color == "" {
		color = assets.DefaultBoldColor
	}
	return []Rule{
		NewBoldRule(color),
		NewImageRule(),
		NewHeadingRule(ts.Heading),
		NewHighlightRule(),
		NewCodeRule(highlightStyle),
	}
}
