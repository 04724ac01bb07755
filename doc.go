// Package mdpress converts directories of Markdown documents into HTML
// fragments wrapped in a swappable set of templates, ready to paste into a
// CMS.
//
// # Quick Start
//
// Load a template directory, then convert a directory of documents:
//
//	conv, err := mdpress.NewConverter("templates")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := conv.ConvertDirectory(ctx, "posts", "out",
//	    func(current, total int, name string) {
//	        fmt.Printf("[%d/%d] %s\n", current, total, name)
//	    })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.Succeeded, "succeeded,", summary.Failed, "failed")
//
// Each output file holds top.html, the rendered fragment, then bottom.html.
//
// # Template Directory
//
// A template directory contains:
//
//   - top.html and bottom.html, written verbatim around every fragment
//   - h2.html, the wrapper for level-2 headings, with a required {h2_text}
//     placeholder and an optional {h2_count} placeholder (1-based ordinal
//     within the document)
//   - boldcolor.txt (optional), the CSS color of bold spans (default #af2618)
//
// Missing required files fail NewConverter with ErrMissingTemplates. An
// h2.html without {h2_text} falls back to <h2>{h2_text}</h2> with a logged
// warning. WithTemplateDiscovery looks one level down for a complete set.
//
// # Rendering
//
// Markdown is rendered with GFM extensions and footnotes, except that:
//
//   - **text** becomes an inline span in the bold color
//   - images are wrapped as <div><img ... /></div><br />
//   - each top-level "## " heading is replaced by the h2.html wrapper,
//     preceded by <p></p><br /> unless the output before it already ends a
//     paragraph or line
//   - ==text== becomes <mark>text</mark>
//   - fenced code blocks are highlighted with inline styles
//
// Raw HTML in documents is omitted.
//
// # Errors
//
// Setup failures are returned by NewConverter and ConvertDirectory. Failures
// of individual documents are logged and counted in the Summary; use
// ConvertFile to get the error of a single document.
package mdpress
