package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdpress/internal/assets"
	"github.com/alnah/go-mdpress/internal/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Output.Extension != ".txt" {
		t.Errorf("Output.Extension = %q, want %q", cfg.Output.Extension, ".txt")
	}
	if cfg.Templates.SearchSubdirs {
		t.Error("Templates.SearchSubdirs = true, want false")
	}
	if cfg.Render.HighlightStyle != pipeline.DefaultHighlightStyle {
		t.Errorf("Render.HighlightStyle = %q, want %q", cfg.Render.HighlightStyle, pipeline.DefaultHighlightStyle)
	}
	if cfg.Render.HardWraps {
		t.Error("Render.HardWraps = true, want false")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error %q should name field %q", err, tt.fieldName)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "empty optional fields are valid",
			mutate: func(c *Config) { *c = Config{} },
		},
		{
			name:    "input dir too long",
			mutate:  func(c *Config) { c.Input.DefaultDir = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "template dir too long",
			mutate:  func(c *Config) { c.Templates.Dir = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "custom extension",
			mutate: func(c *Config) { c.Output.Extension = ".html" },
		},
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.Output.Extension = "txt" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "extension with separator",
			mutate:  func(c *Config) { c.Output.Extension = "./../x" },
			wantErr: ErrInvalidField,
		},
		{
			name:    "extension too long",
			mutate:  func(c *Config) { c.Output.Extension = "." + strings.Repeat("x", MaxExtensionLength) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "valid bold color",
			mutate: func(c *Config) { c.Templates.BoldColor = "rgb(10, 20, 30)" },
		},
		{
			name:    "bold color with markup",
			mutate:  func(c *Config) { c.Templates.BoldColor = `red"><script>` },
			wantErr: assets.ErrInvalidBoldColor,
		},
		{
			name:    "unknown highlight style",
			mutate:  func(c *Config) { c.Render.HighlightStyle = "no-such-style" },
			wantErr: pipeline.ErrUnknownHighlightStyle,
		},
		{
			name:   "known highlight style",
			mutate: func(c *Config) { c.Render.HighlightStyle = "monokai" },
		},
		{
			name:   "valid image base URL",
			mutate: func(c *Config) { c.Render.ImageBaseURL = "https://cdn.example.com/img" },
		},
		{
			name:    "relative image base URL",
			mutate:  func(c *Config) { c.Render.ImageBaseURL = "images/" },
			wantErr: pipeline.ErrInvalidImageBaseURL,
		},
		{
			name:    "image base URL too long",
			mutate:  func(c *Config) { c.Render.ImageBaseURL = "https://x.com/" + strings.Repeat("a", MaxURLLength) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: ErrInvalidField,
		},
		{
			name:   "zero workers means one per CPU",
			mutate: func(c *Config) { c.Workers = 0 },
		},
		{
			name:   "max workers",
			mutate: func(c *Config) { c.Workers = MaxWorkers },
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: ErrInvalidField,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Workers: 0}
	cfg.ApplyDefaults()

	if cfg.Output.Extension != DefaultOutputExtension {
		t.Errorf("Output.Extension = %q, want %q", cfg.Output.Extension, DefaultOutputExtension)
	}
	if cfg.Render.HighlightStyle != pipeline.DefaultHighlightStyle {
		t.Errorf("Render.HighlightStyle = %q, want %q", cfg.Render.HighlightStyle, pipeline.DefaultHighlightStyle)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (kept)", cfg.Workers)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `input:
  defaultDir: "/path/to/input"
output:
  defaultDir: "/path/to/output"
  extension: ".html"
templates:
  dir: "./templates"
  searchSubdirs: true
  boldColor: "#003366"
render:
  highlightStyle: "dracula"
  imageBaseURL: "https://cdn.example.com/"
  hardWraps: true
log:
  level: "debug"
workers: 4
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/path/to/input" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/path/to/input")
		}
		if cfg.Output.DefaultDir != "/path/to/output" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/path/to/output")
		}
		if cfg.Output.Extension != ".html" {
			t.Errorf("Output.Extension = %q, want %q", cfg.Output.Extension, ".html")
		}
		if cfg.Templates.Dir != "./templates" || !cfg.Templates.SearchSubdirs {
			t.Errorf("Templates = %+v, want dir ./templates with subdirectory search", cfg.Templates)
		}
		if cfg.Templates.BoldColor != "#003366" {
			t.Errorf("Templates.BoldColor = %q, want %q", cfg.Templates.BoldColor, "#003366")
		}
		if cfg.Render.HighlightStyle != "dracula" {
			t.Errorf("Render.HighlightStyle = %q, want %q", cfg.Render.HighlightStyle, "dracula")
		}
		if cfg.Render.ImageBaseURL != "https://cdn.example.com/" {
			t.Errorf("Render.ImageBaseURL = %q, want %q", cfg.Render.ImageBaseURL, "https://cdn.example.com/")
		}
		if !cfg.Render.HardWraps {
			t.Error("Render.HardWraps = false, want true")
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "partial.yaml")
		if err := os.WriteFile(configPath, []byte("templates:\n  dir: \"t\"\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Extension != DefaultOutputExtension {
			t.Errorf("Output.Extension = %q, want %q", cfg.Output.Extension, DefaultOutputExtension)
		}
		if cfg.Workers != DefaultWorkers {
			t.Errorf("Workers = %d, want %d", cfg.Workers, DefaultWorkers)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("templates: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		if err := os.WriteFile(configPath, []byte("watermark:\n  text: DRAFT\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("workers: 1000\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("error = %v, want ErrInvalidField", err)
		}
	})
}

// Not parallel: changes the working directory and UserConfigDir.
func TestLoadConfig_ByName(t *testing.T) {
	cwd := t.TempDir()
	userDir := t.TempDir()

	orig := UserConfigDir
	UserConfigDir = func() string { return userDir }
	t.Cleanup(func() { UserConfigDir = orig })
	t.Chdir(cwd)

	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	t.Run("finds .yml in user config dir", func(t *testing.T) {
		write(filepath.Join(userDir, "blog.yml"), "workers: 3\n")

		cfg, err := LoadConfig("blog")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("current directory wins over user config dir", func(t *testing.T) {
		write(filepath.Join(userDir, "site.yaml"), "workers: 3\n")
		write(filepath.Join(cwd, "site.yaml"), "workers: 5\n")

		cfg, err := LoadConfig("site")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 5 {
			t.Errorf("Workers = %d, want 5", cfg.Workers)
		}
	})

	t.Run("missing name lists tried paths", func(t *testing.T) {
		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("error = %T, want *NotFoundError", err)
		}
		if len(nf.Tried) != 4 {
			t.Errorf("Tried = %v, want 4 paths", nf.Tried)
		}
		if !strings.Contains(err.Error(), filepath.Join(userDir, "absent.yml")) {
			t.Errorf("error %q should list the user config path", err)
		}
	})
}
