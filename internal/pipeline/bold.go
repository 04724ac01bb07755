package pipeline

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Fixed parts of the bold span style. Only the color comes from the template set.
const (
	BoldBackgroundColor = "#fff5f4"
	BoldFontFamily      = "'PingFang SC', 'Microsoft YaHei', 'Helvetica Neue', sans-serif"
)

// boldPattern matches **text** on one line. The content is non-greedy, must
// start and end with a non-space rune and may contain single asterisks.
// Blanks right inside the delimiters are consumed so "** text **" still
// matches, with "text" captured.
var boldPattern = regexp.MustCompile(
	protectedAlternatives + `|\*\*[ \t]*([^*\s](?:[^\n]*?[^\s])??)[ \t]*\*\*`,
)

// BoldRule renders **text** as an inline span colored with the template
// set's bold color instead of <strong>.
//
// The source pass turns each pair into placeholders so the content still goes
// through inline Markdown; the output pass expands them. Strong emphasis that
// goldmark parses on its own (__text__, or ** spanning lines) is rendered
// with the same span by a node renderer.
type BoldRule struct {
	open   string
	markup map[rune]string
}

// NewBoldRule creates a BoldRule for a validated CSS color.
func NewBoldRule(color string) *BoldRule {
	open := BoldSpanOpen(color)
	return &BoldRule{
		open: open,
		markup: map[rune]string{
			placeholderRune(BoldStartPlaceholder): open,
			placeholderRune(BoldEndPlaceholder):   "</span>",
		},
	}
}

// BoldSpanOpen returns the opening span tag for a bold color.
func BoldSpanOpen(color string) string {
	return `<span style="font-weight: bold; color: ` + color +
		`; background-color: ` + BoldBackgroundColor +
		`; font-family: ` + BoldFontFamily + `">`
}

// Name implements Rule.
func (r *BoldRule) Name() string { return "bold" }

// RewriteSource implements SourceRewriter.
func (r *BoldRule) RewriteSource(src string) string {
	return rewriteProse(src, func(line string) string {
		return rewriteInline(line, boldPattern, func(inner string) string {
			return BoldStartPlaceholder + inner + BoldEndPlaceholder
		})
	})
}

// RewriteOutput implements OutputRewriter.
func (r *BoldRule) RewriteOutput(out string) string {
	if !containsAny(out, r.markup) {
		return out
	}
	return expandPlaceholders(out, r.markup)
}

// Extend implements goldmark.Extender.
func (r *BoldRule) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&emphasisRenderer{open: r.open}, 100),
	))
}

// emphasisRenderer renders level-2 emphasis as the bold span and level-1
// emphasis as goldmark does.
type emphasisRenderer struct {
	open string
}

func (r *emphasisRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
}

func (r *emphasisRenderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	if n.Level == 2 {
		if entering {
			_, _ = w.WriteString(r.open)
		} else {
			_, _ = w.WriteString("</span>")
		}
		return ast.WalkContinue, nil
	}

	if entering {
		_, _ = w.WriteString("<em")
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.EmphasisAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</em>")
	}
	return ast.WalkContinue, nil
}
