package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ResolveDir returns the directory holding the template files.
//
// When dir itself contains every required file it is returned unchanged
// (as an absolute path). Otherwise, if searchSubdirs is set, the immediate
// subdirectories are scanned in name order and the first complete one wins.
// Fails with a *MissingTemplatesError describing dir when nothing matches.
func ResolveDir(dir string, searchSubdirs bool) (string, error) {
	absDir, err := validateDir(dir)
	if err != nil {
		return "", err
	}

	missing := MissingFiles(absDir)
	if len(missing) == 0 {
		return absDir, nil
	}
	if !searchSubdirs {
		return "", &MissingTemplatesError{Dir: absDir, Missing: missing}
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read directory: %v", ErrInvalidTemplateDir, err)
	}

	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		}
	}
	sort.Strings(subdirs)

	for _, name := range subdirs {
		candidate := filepath.Join(absDir, name)
		if len(MissingFiles(candidate)) == 0 {
			return candidate, nil
		}
	}

	return "", &MissingTemplatesError{Dir: absDir, Missing: missing}
}

// validateDir resolves dir to an absolute, symlink-free path and checks that
// it is a readable directory.
func validateDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidTemplateDir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplateDir, err)
	}

	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: directory does not exist: %s", ErrInvalidTemplateDir, absPath)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplateDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: not a directory: %s", ErrInvalidTemplateDir, absPath)
	}

	return absPath, nil
}
