package assets

import (
	"fmt"
	"strconv"
	"strings"
)

// Heading template placeholders.
const (
	PlaceholderText  = "{h2_text}"
	PlaceholderCount = "{h2_count}"
)

// DefaultHeadingWrapper is the minimal structure used when h2.html is unusable.
const DefaultHeadingWrapper = "<h2>" + PlaceholderText + "</h2>"

// HeadingTemplate is a validated level-2 heading wrapper.
type HeadingTemplate struct {
	raw string // flattened wrapper
}

// ParseHeadingTemplate flattens newlines in raw and validates its placeholders.
// Returns ErrEmptyHeadingTemplate for blank input and ErrHeadingPlaceholder
// when {h2_text} is absent. {h2_count} is optional.
func ParseHeadingTemplate(raw string) (*HeadingTemplate, error) {
	flat := flattenLines(raw)
	if flat == "" {
		return nil, ErrEmptyHeadingTemplate
	}
	if !strings.Contains(flat, PlaceholderText) {
		return nil, fmt.Errorf("%w: %s", ErrHeadingPlaceholder, PlaceholderText)
	}
	return &HeadingTemplate{raw: flat}, nil
}

// DefaultHeadingTemplate returns the minimal fallback wrapper.
func DefaultHeadingTemplate() *HeadingTemplate {
	return &HeadingTemplate{raw: DefaultHeadingWrapper}
}

// Execute substitutes the heading text and ordinal. text is inserted as-is;
// callers escape it. Substitution is single-pass, so placeholder-like
// sequences inside text are not expanded again.
func (h *HeadingTemplate) Execute(text string, ordinal int) string {
	r := strings.NewReplacer(
		PlaceholderText, text,
		PlaceholderCount, strconv.Itoa(ordinal),
	)
	return r.Replace(h.raw)
}

// String returns the flattened wrapper.
func (h *HeadingTemplate) String() string {
	return h.raw
}

// flattenLines joins the trimmed lines of s. A single space is kept between
// two lines only when neither side is a tag boundary, so text split across
// lines stays readable while markup indentation disappears.
func flattenLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			prev := b.String()
			if !strings.HasSuffix(prev, ">") && !strings.HasPrefix(line, "<") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(line)
	}
	return b.String()
}
