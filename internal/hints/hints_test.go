package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForMissingTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		searchSubdirs bool
		wantSubdirs   bool
	}{
		{name: "suggests subdirectory search", searchSubdirs: false, wantSubdirs: true},
		{name: "subdirectory search already on", searchSubdirs: true, wantSubdirs: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForMissingTemplates("tpl", tt.searchSubdirs)

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint = %q, want hint prefix", hint)
			}
			if !strings.Contains(hint, "mdpress init tpl") {
				t.Errorf("hint = %q, want init suggestion", hint)
			}
			if got := strings.Contains(hint, "--search-subdirs"); got != tt.wantSubdirs {
				t.Errorf("mentions --search-subdirs = %v, want %v", got, tt.wantSubdirs)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "u", ".config", "mdpress", "blog.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "with user config path",
			paths:    []string{"blog.yaml", "blog.yml", userPath},
			contains: []string{"--config", "or create " + userPath},
		},
		{
			name:     "without user config path",
			paths:    []string{"blog.yaml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
		{
			name:     "empty paths",
			paths:    nil,
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint = %q, want to contain %q", hint, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(hint, unwanted) {
					t.Errorf("hint = %q, should not contain %q", hint, unwanted)
				}
			}
		})
	}
}

func TestForHighlightStyle(t *testing.T) {
	t.Parallel()

	if got := ForHighlightStyle(nil); got != "" {
		t.Errorf("ForHighlightStyle(nil) = %q, want empty", got)
	}

	hint := ForHighlightStyle([]string{"github", "monokai"})
	if hint != "\n  hint: available: github, monokai" {
		t.Errorf("ForHighlightStyle() = %q", hint)
	}
}

func TestForFailedDocuments(t *testing.T) {
	t.Parallel()

	if got := ForFailedDocuments(0); got != "" {
		t.Errorf("ForFailedDocuments(0) = %q, want empty", got)
	}
	if got := ForFailedDocuments(2); !strings.Contains(got, "retry") {
		t.Errorf("ForFailedDocuments(2) = %q, want retry hint", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"ForOutputDirectory":  ForOutputDirectory(),
		"ForInputDirectory":   ForInputDirectory(),
		"ForInvalidBoldColor": ForInvalidBoldColor(),
		"ForNoTemplateDir":    ForNoTemplateDir(),
		"ForStarterExists":    ForStarterExists(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s() = %q, want hint prefix", name, hint)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hints []string
		want  string
	}{
		{name: "empty", hints: nil, want: ""},
		{name: "single", hints: []string{"a"}, want: "\n  hint: a"},
		{name: "multiple joined", hints: []string{"a", "b"}, want: "\n  hint: a; b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatHints(tt.hints); got != tt.want {
				t.Errorf("formatHints(%v) = %q, want %q", tt.hints, got, tt.want)
			}
		})
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
