// Package assets loads the HTML template set that frames every converted
// document.
//
// # Template Directory
//
// A template directory holds three required files and one optional file:
//
//	{templateDir}/
//	├── top.html        # written before every rendered fragment
//	├── bottom.html     # written after every rendered fragment
//	├── h2.html         # wrapper substituted for each level-2 heading
//	└── boldcolor.txt   # optional CSS color for bold text
//
// The heading wrapper understands two placeholders: {h2_text} (required) and
// {h2_count} (optional, the 1-based ordinal of the heading in its document).
// Newlines inside the wrapper are flattened when it is loaded.
//
// # Discovery
//
// ResolveDir optionally looks one level down: when the given directory does
// not contain the required files, the first subdirectory (sorted by name)
// that does is used instead. This lets users point at a folder of themes.
//
// # Starter Templates
//
// A minimal template set is embedded in the binary and can be written to disk
// with WriteStarter, giving users a working directory to customize.
package assets
