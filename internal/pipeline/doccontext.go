package pipeline

import "github.com/yuin/goldmark/parser"

// DocContext carries the state of one document's conversion. A fresh
// DocContext is created for every render and never shared across documents.
type DocContext struct {
	headings int
}

// NewDocContext returns an empty context with the heading counter at zero.
func NewDocContext() *DocContext {
	return &DocContext{}
}

// NextHeading increments the heading counter and returns the new ordinal.
func (d *DocContext) NextHeading() int {
	d.headings++
	return d.headings
}

// Headings returns the number of level-2 headings numbered so far.
func (d *DocContext) Headings() int {
	return d.headings
}

var docContextKey = parser.NewContextKey()

// WithDocContext stores dc in a goldmark parser context.
func WithDocContext(pc parser.Context, dc *DocContext) {
	pc.Set(docContextKey, dc)
}

// DocContextFrom returns the DocContext stored in pc, creating and storing a
// new one when absent.
func DocContextFrom(pc parser.Context) *DocContext {
	if dc, ok := pc.Get(docContextKey).(*DocContext); ok {
		return dc
	}
	dc := NewDocContext()
	pc.Set(docContextKey, dc)
	return dc
}
