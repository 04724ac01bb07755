package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// cssColorPattern accepts hex colors, functional notations and named colors.
// Quotes, semicolons and angle brackets are rejected since the value lands
// inside a style attribute.
var cssColorPattern = regexp.MustCompile(
	`^(#[0-9a-fA-F]{3,4}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|` +
		`(rgb|rgba|hsl|hsla)\(\s*[0-9.%,\s/deg]+\)|` +
		`[a-zA-Z]+)$`,
)

// MaxBoldColorLength bounds boldcolor.txt content.
const MaxBoldColorLength = 64

// ValidateBoldColor checks that color is a CSS color value safe to embed in
// an inline style.
func ValidateBoldColor(color string) error {
	if color == "" {
		return fmt.Errorf("%w: empty value", ErrInvalidBoldColor)
	}
	if len(color) > MaxBoldColorLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidBoldColor, len(color), MaxBoldColorLength)
	}
	if !cssColorPattern.MatchString(strings.TrimSpace(color)) {
		return fmt.Errorf("%w: %q", ErrInvalidBoldColor, color)
	}
	return nil
}
