package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Placeholders use Unicode Private Use Area characters. They pass through
// goldmark unchanged (no WithUnsafe needed) and are expanded after rendering.
const (
	MarkStartPlaceholder = "\uE000" // U+E000
	MarkEndPlaceholder   = "\uE001"
	BoldStartPlaceholder = "\uE002"
	BoldEndPlaceholder   = "\uE003"
	SpacerPlaceholder    = "\uE004"
)

// protectedAlternatives match inline regions rewriters must leave alone:
// code spans, inline link destinations and angle-bracket autolinks or tags.
// They are listed first in every inline pattern so a leftmost match on them
// wins and is copied through unchanged.
const protectedAlternatives = "`[^`\n]*`|\\]\\([^)\n]*\\)|<[^>\n]*>"

var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// fenceOpen matches the opening or closing line of a fenced code block.
	fenceOpen = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")

	indentedCode  = regexp.MustCompile(`^(?: {4}| {0,3}\t)`)
	listItem      = regexp.MustCompile(`^ {0,3}(?:[-+*]|\d{1,9}[.)])(?:[ \t]|$)`)
	atxHeading    = regexp.MustCompile(`^ {0,3}#{1,6}(?:[ \t]|$)`)
	refDefinition = regexp.MustCompile(`^ {0,3}\[[^\]]+\]:`)

	// placeholderStripper removes placeholder runes the author typed, so
	// only rewriters can introduce them.
	placeholderStripper = strings.NewReplacer(
		MarkStartPlaceholder, "",
		MarkEndPlaceholder, "",
		BoldStartPlaceholder, "",
		BoldEndPlaceholder, "",
		SpacerPlaceholder, "",
	)
)

// normalizeSource strips a UTF-8 BOM and any placeholder runes, and converts
// \r\n and \r to \n.
func normalizeSource(content string) string {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = placeholderStripper.Replace(content)
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// rewriteProse applies fn to every prose line. Fenced and indented code
// blocks and link reference definitions are left as they are.
// A fence closes on a line of the same character at least as long.
// An indented line is code unless it continues a paragraph or belongs to a
// list item.
func rewriteProse(src string, fn func(line string) string) string {
	lines := strings.Split(src, "\n")
	var fence string
	var inParagraph, inList bool
	for i, line := range lines {
		if m := fenceOpen.FindStringSubmatch(line); m != nil {
			switch {
			case fence == "":
				fence = m[1]
			case closesFence(line, m[1], fence):
				fence = ""
			}
			inParagraph = false
			continue
		}
		if fence != "" {
			continue
		}

		switch {
		case strings.TrimSpace(line) == "":
			inParagraph = false
			continue
		case indentedCode.MatchString(line):
			if !inParagraph && !inList {
				continue
			}
		case refDefinition.MatchString(line) && !inParagraph:
			continue
		case listItem.MatchString(line):
			inList = true
		case !inParagraph:
			inList = false
		}

		inParagraph = !atxHeading.MatchString(line)
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

// closesFence reports whether line, starting with marker, ends the block
// opened by fence. Closing lines carry no info string.
func closesFence(line, marker, fence string) bool {
	if marker[0] != fence[0] || len(marker) < len(fence) {
		return false
	}
	return strings.Trim(line, " \t"+marker[:1]) == ""
}

// rewriteInline replaces every match of pattern whose first capture group
// participated with wrap(group). Matches of the protected alternatives are
// kept as-is.
func rewriteInline(line string, pattern *regexp.Regexp, wrap func(inner string) string) string {
	matches := pattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + len(matches)*6)
	last := 0
	for _, m := range matches {
		b.WriteString(line[last:m[0]])
		if m[2] < 0 {
			b.WriteString(line[m[0]:m[1]])
		} else {
			b.WriteString(wrap(line[m[2]:m[3]]))
		}
		last = m[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// expandPlaceholders replaces placeholder runes with their markup in text
// content. Inside a tag the runes are dropped, since markup there would break
// attribute values such as an image alt.
func expandPlaceholders(s string, markup map[rune]string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	inTag := false
	for _, r := range s {
		switch r {
		case '<':
			inTag = true
		case '>':
			inTag = false
		}
		if m, ok := markup[r]; ok {
			if !inTag {
				b.WriteString(m)
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// placeholderRune returns the single rune of a placeholder constant.
func placeholderRune(p string) rune {
	r, _ := utf8.DecodeRuneInString(p)
	return r
}

// containsAny reports whether s holds any key of markup.
func containsAny(s string, markup map[rune]string) bool {
	for r := range markup {
		if strings.ContainsRune(s, r) {
			return true
		}
	}
	return false
}
