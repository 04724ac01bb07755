package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ImageRule wraps every image in a block container followed by a forced
// line break, so each image sits on its own line:
//
//	<div><img src="a.png" alt="A" /></div><br />
type ImageRule struct{}

// NewImageRule creates an ImageRule.
func NewImageRule() *ImageRule { return &ImageRule{} }

// Name implements Rule.
func (r *ImageRule) Name() string { return "image" }

// Extend implements goldmark.Extender.
func (r *ImageRule) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newImageRenderer(), 100),
	))
}

// imageRenderer receives the html renderer options (XHTML, Unsafe) through
// SetOption so its output matches the rest of the document.
type imageRenderer struct {
	html.Config
}

func newImageRenderer() *imageRenderer {
	return &imageRenderer{Config: html.NewConfig()}
}

// SetOption implements renderer.SetOptioner.
func (r *imageRenderer) SetOption(name renderer.OptionName, value any) {
	r.Config.SetOption(name, value)
}

func (r *imageRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *imageRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	_, _ = w.WriteString(`<div><img src="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(plainText(n, source)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	if n.Attributes() != nil {
		html.RenderAttributes(w, n, html.ImageAttributeFilter)
	}
	if r.XHTML {
		_, _ = w.WriteString(" /></div><br />")
	} else {
		_, _ = w.WriteString("></div><br>")
	}
	return ast.WalkSkipChildren, nil
}

// plainText concatenates the text content of n's descendants, as used for
// an image alt attribute.
func plainText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.Write(plainText(c, source))
		}
	}
	return buf.Bytes()
}
