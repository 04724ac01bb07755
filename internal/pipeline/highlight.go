package pipeline

import (
	"regexp"

	"github.com/yuin/goldmark"
)

// highlightPattern matches ==text== on one line, content trimmed of '='.
var highlightPattern = regexp.MustCompile(
	protectedAlternatives + `|==([^=\s](?:[^\n]*?[^=\s])??)==`,
)

// HighlightRule renders ==text== as <mark>text</mark>.
type HighlightRule struct {
	markup map[rune]string
}

// NewHighlightRule creates a HighlightRule.
func NewHighlightRule() *HighlightRule {
	return &HighlightRule{
		markup: map[rune]string{
			placeholderRune(MarkStartPlaceholder): "<mark>",
			placeholderRune(MarkEndPlaceholder):   "</mark>",
		},
	}
}

// Name implements Rule.
func (r *HighlightRule) Name() string { return "highlight" }

// RewriteSource implements SourceRewriter.
func (r *HighlightRule) RewriteSource(src string) string {
	return rewriteProse(src, func(line string) string {
		return rewriteInline(line, highlightPattern, func(inner string) string {
			return MarkStartPlaceholder + inner + MarkEndPlaceholder
		})
	})
}

// RewriteOutput implements OutputRewriter.
func (r *HighlightRule) RewriteOutput(out string) string {
	if !containsAny(out, r.markup) {
		return out
	}
	return expandPlaceholders(out, r.markup)
}

// Extend implements goldmark.Extender. The rule needs no parser hooks.
func (r *HighlightRule) Extend(goldmark.Markdown) {}
