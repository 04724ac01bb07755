package pipeline

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdpress/internal/assets"
)

// Spacer is inserted before a heading wrapper when the preceding output does
// not already end with a blank line, a break or a closed paragraph.
const Spacer = "<p></p><br />"

// KindHeadingSlot is the node kind of HeadingSlot.
var KindHeadingSlot = ast.NewNodeKind("HeadingSlot")

// HeadingSlot stands in for a level-2 ATX heading. It renders as the heading
// wrapper template with the heading text and ordinal substituted.
type HeadingSlot struct {
	ast.BaseBlock
	Literal []byte // heading text, not yet escaped
	Ordinal int    // 1-based position among the document's level-2 headings
}

// NewHeadingSlot creates a HeadingSlot.
func NewHeadingSlot(text []byte, ordinal int) *HeadingSlot {
	return &HeadingSlot{Literal: text, Ordinal: ordinal}
}

// Kind implements ast.Node.
func (n *HeadingSlot) Kind() ast.NodeKind { return KindHeadingSlot }

// Dump implements ast.Node.
func (n *HeadingSlot) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Literal": string(n.Literal),
		"Ordinal": strconv.Itoa(n.Ordinal),
	}, nil)
}

// HeadingRule replaces every level-2 ATX heading that is a direct child of
// the document with the heading wrapper template.
//
// Matching is structural: "## Title" lines inside lists or block quotes,
// setext headings, and lines inside code blocks are left to goldmark. The
// heading text is the literal source after the "## " marker (closing hashes
// removed), HTML-escaped before substitution.
type HeadingRule struct {
	wrapper *assets.HeadingTemplate
}

// NewHeadingRule creates a HeadingRule for a validated wrapper template.
func NewHeadingRule(wrapper *assets.HeadingTemplate) *HeadingRule {
	return &HeadingRule{wrapper: wrapper}
}

// Name implements Rule.
func (r *HeadingRule) Name() string { return "heading" }

// Extend implements goldmark.Extender.
func (r *HeadingRule) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(headingTransformer{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&headingSlotRenderer{wrapper: r.wrapper}, 100),
	))
}

// RewriteOutput implements OutputRewriter by resolving spacer markers.
func (r *HeadingRule) RewriteOutput(out string) string {
	return resolveSpacers(out)
}

// headingTransformer swaps level-2 ATX headings for HeadingSlot nodes,
// numbering them through the document's DocContext.
type headingTransformer struct{}

func (headingTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	dc := DocContextFrom(pc)
	source := reader.Source()

	for c := doc.FirstChild(); c != nil; {
		next := c.NextSibling()
		if h, ok := c.(*ast.Heading); ok && h.Level == 2 && isATX(h, source) {
			slot := NewHeadingSlot(headingText(h, source), dc.NextHeading())
			doc.ReplaceChild(doc, h, slot)
		}
		c = next
	}
}

// isATX reports whether h was written with a leading "##" marker rather than
// a setext underline. An empty heading can only be ATX.
func isATX(h *ast.Heading, source []byte) bool {
	lines := h.Lines()
	if lines.Len() == 0 {
		return true
	}
	start := lines.At(0).Start
	lineStart := start
	for lineStart > 0 && source[lineStart-1] != '\n' {
		lineStart--
	}
	prefix := bytes.TrimLeft(source[lineStart:start], " \t")
	return bytes.HasPrefix(prefix, []byte("#"))
}

// headingText returns the raw source text of h.
func headingText(h *ast.Heading, source []byte) []byte {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return bytes.TrimSpace(buf.Bytes())
}

type headingSlotRenderer struct {
	wrapper *assets.HeadingTemplate
}

func (r *headingSlotRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindHeadingSlot, r.renderSlot)
}

func (r *headingSlotRenderer) renderSlot(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*HeadingSlot)
	_, _ = w.WriteString(SpacerPlaceholder)
	_, _ = w.WriteString(r.wrapper.Execute(string(util.EscapeHTML(n.Literal)), n.Ordinal))
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}

// resolveSpacers replaces each spacer marker, left to right, with Spacer or
// nothing depending on the output already emitted before it.
func resolveSpacers(s string) string {
	if !strings.Contains(s, SpacerPlaceholder) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(Spacer)*2)
	for {
		i := strings.Index(s, SpacerPlaceholder)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		if needsSpacer(b.String()) {
			b.WriteString(Spacer)
		}
		s = s[i+len(SpacerPlaceholder):]
	}
}

// separatorSuffixes end output that already separates a following heading.
var separatorSuffixes = []string{"<br>", "<br/>", "<br />", "</p>"}

// needsSpacer reports whether a heading emitted after prev needs a spacer.
// Empty output needs one; output ending in a blank line, a <br> or </p>
// does not.
func needsSpacer(prev string) bool {
	tail := strings.TrimRight(prev, " \t\n")
	if tail == "" {
		return true
	}
	if strings.HasSuffix(prev, "\n\n") {
		return false
	}
	tail = strings.ToLower(tail)
	for _, suffix := range separatorSuffixes {
		if strings.HasSuffix(tail, suffix) {
			return false
		}
	}
	return true
}
