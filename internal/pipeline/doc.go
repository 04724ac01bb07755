// Package pipeline renders one Markdown document into an HTML fragment.
//
// The Engine wraps goldmark with an ordered list of rules. Each rule is a
// goldmark extension and may also rewrite the source before parsing or the
// HTML after rendering:
//   - bold: **text** becomes a colored inline span instead of <strong>
//   - image: every image is wrapped in a block container followed by a break
//   - heading: level-2 ATX headings are replaced by the h2 template, numbered
//     per document, with a spacer block inserted where needed
//   - highlight: ==text== becomes <mark>text</mark>
//   - code: fenced code blocks are highlighted with inline chroma styles
//
// Per-document state (the heading counter) lives in a DocContext stored in
// the goldmark parser context of that conversion, so concurrent renders on
// one Engine never share it.
//
// Framing the fragment with top.html and bottom.html, and all file I/O, is
// handled by the root mdpress package.
package pipeline
