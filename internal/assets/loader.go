package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the template set from dir.
//
// Missing required files produce a *MissingTemplatesError naming every absent
// file. A missing, blank or invalid boldcolor.txt falls back to
// DefaultBoldColor; an empty or placeholder-less h2.html falls back to
// DefaultHeadingWrapper. Both
// fallbacks are recorded on the returned set so callers can report them.
func Load(dir string) (*TemplateSet, error) {
	absDir, err := validateDir(dir)
	if err != nil {
		return nil, err
	}

	if missing := MissingFiles(absDir); len(missing) > 0 {
		return nil, &MissingTemplatesError{Dir: absDir, Missing: missing}
	}

	top, err := readTemplate(absDir, TopFile)
	if err != nil {
		return nil, err
	}
	bottom, err := readTemplate(absDir, BottomFile)
	if err != nil {
		return nil, err
	}
	rawHeading, err := readTemplate(absDir, HeadingFile)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		Dir:    absDir,
		Top:    top,
		Bottom: bottom,
	}

	heading, err := ParseHeadingTemplate(rawHeading)
	if err != nil {
		ts.Heading = DefaultHeadingTemplate()
		ts.HeadingFallback = err.Error()
	} else {
		ts.Heading = heading
	}

	color, fallback, err := loadBoldColor(absDir)
	if err != nil {
		return nil, err
	}
	ts.BoldColor = color
	ts.BoldColorFallback = fallback

	return ts, nil
}

// MissingFiles returns the required template files absent from dir,
// in RequiredFiles order. Directories named like a template do not count.
func MissingFiles(dir string) []string {
	var missing []string
	for _, name := range RequiredFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.IsDir() {
			missing = append(missing, name)
		}
	}
	return missing
}

// readTemplate reads one template file as UTF-8 text.
func readTemplate(dir, name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- fixed names under validated dir
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrTemplateRead, name, err)
	}
	return string(content), nil
}

// loadBoldColor reads boldcolor.txt. When the file is absent, blank or not a
// valid color it returns DefaultBoldColor and the reason. Only read failures
// are errors.
func loadBoldColor(dir string) (color, fallback string, err error) {
	content, err := os.ReadFile(filepath.Join(dir, BoldColorFile)) // #nosec G304 -- fixed name under validated dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultBoldColor, "absent, using " + DefaultBoldColor, nil
		}
		return "", "", fmt.Errorf("%w: reading %s: %v", ErrTemplateRead, BoldColorFile, err)
	}

	color = strings.TrimSpace(string(content))
	if color == "" {
		return DefaultBoldColor, "blank, using " + DefaultBoldColor, nil
	}
	if err := ValidateBoldColor(color); err != nil {
		return DefaultBoldColor, err.Error() + ", using " + DefaultBoldColor, nil
	}
	return color, "", nil
}
