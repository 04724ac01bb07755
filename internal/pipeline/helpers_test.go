package pipeline

import (
	"context"
	"testing"

	"github.com/alnah/go-mdpress/internal/assets"
)

const testWrapper = "<h2 data-n='{h2_count}'>{h2_text}</h2>"

// newTestTemplateSet builds a template set without touching the filesystem.
func newTestTemplateSet(t *testing.T, wrapper, color string) *assets.TemplateSet {
	t.Helper()
	heading, err := assets.ParseHeadingTemplate(wrapper)
	if err != nil {
		t.Fatalf("ParseHeadingTemplate(%q) error = %v", wrapper, err)
	}
	return &assets.TemplateSet{
		Top:       "<section>",
		Bottom:    "</section>",
		Heading:   heading,
		BoldColor: color,
	}
}

// newTestEngine returns an Engine with the test wrapper and bold color #123456.
func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(newTestTemplateSet(t, testWrapper, "#123456"), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

// render renders md with a background context and fails the test on error.
func render(t *testing.T, e *Engine, md string) string {
	t.Helper()
	out, err := e.Render(context.Background(), md)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}
