package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-mdpress/internal/assets"
)

// Fragment is the result of rendering one document.
type Fragment struct {
	HTML     string
	Headings int // level-2 headings replaced by the wrapper template
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	highlightStyle string
	imageBaseURL   string
	hardWraps      bool
	rules          []Rule
}

// WithHighlightStyle sets the chroma style for fenced code blocks.
func WithHighlightStyle(name string) EngineOption {
	return func(c *engineConfig) {
		c.highlightStyle = name
	}
}

// WithImageBaseURL resolves relative image sources against raw.
// Empty disables rewriting.
func WithImageBaseURL(raw string) EngineOption {
	return func(c *engineConfig) {
		c.imageBaseURL = raw
	}
}

// WithHardWraps renders soft line breaks inside paragraphs as <br />.
func WithHardWraps(enabled bool) EngineOption {
	return func(c *engineConfig) {
		c.hardWraps = enabled
	}
}

// WithRules replaces the default rule list.
func WithRules(rules ...Rule) EngineOption {
	return func(c *engineConfig) {
		c.rules = rules
	}
}

// Engine renders Markdown documents into HTML fragments for one template set.
// It is safe for concurrent use: all per-document state lives in a DocContext
// created for each render.
type Engine struct {
	md        goldmark.Markdown
	sources   []SourceRewriter
	outputs   []OutputRewriter
	imageBase *url.URL
}

// NewEngine builds an Engine for ts. A nil template set is a programming
// error and panics. Returns an error for an unknown highlight style or an
// invalid image base URL.
func NewEngine(ts *assets.TemplateSet, opts ...EngineOption) (*Engine, error) {
	if ts == nil || ts.Heading == nil {
		panic("pipeline: NewEngine called with nil template set")
	}

	cfg := engineConfig{highlightStyle: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := ValidateHighlightStyle(cfg.highlightStyle); err != nil {
		return nil, err
	}

	var imageBase *url.URL
	if cfg.imageBaseURL != "" {
		u, err := ParseImageBaseURL(cfg.imageBaseURL)
		if err != nil {
			return nil, err
		}
		imageBase = u
	}

	rules := cfg.rules
	if rules == nil {
		rules = DefaultRules(ts, cfg.highlightStyle)
	}

	htmlOpts := []renderer.Option{
		html.WithXHTML(), // Self-closing tags
		// Note: WithUnsafe() intentionally NOT used. Raw HTML in documents is
		// omitted; rules emit their markup through placeholders instead.
	}
	if cfg.hardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}

	extenders := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	e := &Engine{imageBase: imageBase}
	for _, r := range rules {
		extenders = append(extenders, r)
		if s, ok := r.(SourceRewriter); ok {
			e.sources = append(e.sources, s)
		}
		if o, ok := r.(OutputRewriter); ok {
			e.outputs = append(e.outputs, o)
		}
	}

	e.md = goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithRendererOptions(htmlOpts...),
	)
	return e, nil
}

// Render converts one Markdown document into an HTML fragment.
// goldmark takes no context, so the conversion runs in a goroutine and Render
// returns ctx.Err() as soon as ctx is done.
func (e *Engine) Render(ctx context.Context, markdown string) (string, error) {
	frag, err := e.RenderFragment(ctx, markdown)
	if err != nil {
		return "", err
	}
	return frag.HTML, nil
}

// RenderFragment is Render with per-document statistics.
func (e *Engine) RenderFragment(ctx context.Context, markdown string) (Fragment, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}

	type result struct {
		frag Fragment
		err  error
	}

	done := make(chan result, 1)

	go func() {
		frag, err := e.render(markdown)
		done <- result{frag: frag, err: err}
	}()

	select {
	case <-ctx.Done():
		return Fragment{}, ctx.Err()
	case r := <-done:
		return r.frag, r.err
	}
}

// render runs the source rewriters, goldmark and the output rewriters with a
// fresh DocContext. Panics from rules are returned as ErrRender.
func (e *Engine) render(markdown string) (frag Fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			frag = Fragment{}
			err = fmt.Errorf("%w: panic: %v", ErrRender, r)
		}
	}()

	src := normalizeSource(markdown)
	for _, s := range e.sources {
		src = s.RewriteSource(src)
	}

	dc := NewDocContext()
	pc := parser.NewContext()
	WithDocContext(pc, dc)

	var buf bytes.Buffer
	if err := e.md.Convert([]byte(src), &buf, parser.WithContext(pc)); err != nil {
		return Fragment{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	out := buf.String()
	for _, o := range e.outputs {
		out = o.RewriteOutput(out)
	}

	out, err = RewriteImageSources(out, e.imageBase)
	if err != nil {
		return Fragment{}, fmt.Errorf("%w: rewriting image sources: %v", ErrRender, err)
	}

	return Fragment{HTML: out, Headings: dc.Headings()}, nil
}
