package assets

// Template file names inside a template directory.
const (
	TopFile       = "top.html"
	BottomFile    = "bottom.html"
	HeadingFile   = "h2.html"
	BoldColorFile = "boldcolor.txt"
)

// DefaultBoldColor is used when boldcolor.txt is absent or empty.
const DefaultBoldColor = "#af2618"

// RequiredFiles lists the files every template directory must contain.
var RequiredFiles = []string{TopFile, BottomFile, HeadingFile}

// TemplateSet holds the templates for one conversion run.
// It is immutable once loaded and safe for concurrent reads.
type TemplateSet struct {
	Dir       string           // Directory the set was loaded from
	Top       string           // Written before each fragment
	Bottom    string           // Written after each fragment
	Heading   *HeadingTemplate // Level-2 heading wrapper
	BoldColor string           // CSS color for bold spans

	// HeadingFallback is non-empty when h2.html was unusable and the default
	// wrapper was substituted. It holds the reason.
	HeadingFallback string
	// BoldColorFallback is non-empty when boldcolor.txt was absent, blank or
	// invalid and DefaultBoldColor was applied. It holds the reason.
	BoldColorFallback string
}
