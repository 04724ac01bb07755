package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/alnah/go-mdpress/internal/assets"
	"github.com/alnah/go-mdpress/internal/fileutil"
	"github.com/alnah/go-mdpress/internal/logger"
	"github.com/alnah/go-mdpress/internal/pipeline"
	"github.com/alnah/go-mdpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxURLLength       = 2048 // Browser limit
	MaxExtensionLength = 16   // ".txt", ".html"
	MaxStyleLength     = 50   // chroma style name
	MaxLevelLength     = 10   // "debug", "error"
)

// Worker bounds. Zero means one worker per CPU.
const (
	DefaultWorkers = 1
	MaxWorkers     = 64
)

// DefaultOutputExtension is appended to every output file stem.
const DefaultOutputExtension = ".txt"

// AppName names the config and state subdirectories.
const AppName = "mdpress"

// UserConfigDir returns the directory searched for named configs.
// Can be overridden for testing.
var UserConfigDir = func() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Config holds all configuration for a conversion run.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
	Render    RenderConfig    `yaml:"render"`
	Log       LogConfig       `yaml:"log"`
	Workers   int             `yaml:"workers"` // 0 = one per CPU (default: 1)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = must specify)
	Extension  string `yaml:"extension"`  // Output file extension (default: ".txt")
}

// TemplatesConfig defines the template set location.
type TemplatesConfig struct {
	Dir           string `yaml:"dir"`           // Directory holding top.html, bottom.html, h2.html
	SearchSubdirs bool   `yaml:"searchSubdirs"` // Look one level down when dir is incomplete
	BoldColor     string `yaml:"boldColor"`     // Overrides boldcolor.txt
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style (default: "github")
	ImageBaseURL   string `yaml:"imageBaseURL"`   // Resolve relative image sources (empty = off)
	HardWraps      bool   `yaml:"hardWraps"`      // Newlines in paragraphs become <br />
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: warn)
	File  string `yaml:"file"`  // Also append logs to this file (empty = stderr only)
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., flag and env overlays).
func (c *Config) Validate() error {
	// Validate path fields
	for _, f := range []struct{ name, value string }{
		{"input.defaultDir", c.Input.DefaultDir},
		{"output.defaultDir", c.Output.DefaultDir},
		{"templates.dir", c.Templates.Dir},
		{"log.file", c.Log.File},
	} {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}

	// Validate output fields
	if c.Output.Extension != "" {
		if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
			return err
		}
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("%w: output.extension: %v", ErrInvalidField, err)
		}
	}

	// Validate template fields
	if c.Templates.BoldColor != "" {
		if err := assets.ValidateBoldColor(c.Templates.BoldColor); err != nil {
			return fmt.Errorf("templates.boldColor: %w", err)
		}
	}

	// Validate render fields
	if c.Render.HighlightStyle != "" {
		if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
			return err
		}
		if err := pipeline.ValidateHighlightStyle(c.Render.HighlightStyle); err != nil {
			return fmt.Errorf("render.highlightStyle: %w", err)
		}
	}
	if c.Render.ImageBaseURL != "" {
		if err := validateFieldLength("render.imageBaseURL", c.Render.ImageBaseURL, MaxURLLength); err != nil {
			return err
		}
		if _, err := pipeline.ParseImageBaseURL(c.Render.ImageBaseURL); err != nil {
			return fmt.Errorf("render.imageBaseURL: %w", err)
		}
	}

	// Validate log fields
	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %q (must be debug, info, warn, or error)", ErrInvalidField, c.Log.Level)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Extension: DefaultOutputExtension},
		Render:  RenderConfig{HighlightStyle: pipeline.DefaultHighlightStyle},
		Log:     LogConfig{Level: "warn"},
		Workers: DefaultWorkers,
	}
}

// ApplyDefaults fills zero-valued fields that have a non-zero default.
// Workers is left alone since zero is meaningful.
func (c *Config) ApplyDefaults() {
	if c.Output.Extension == "" {
		c.Output.Extension = DefaultOutputExtension
	}
	if c.Render.HighlightStyle == "" {
		c.Render.HighlightStyle = pipeline.DefaultHighlightStyle
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFile(configPath, cfg, true); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, $XDG_CONFIG_HOME/mdpress/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userDir := UserConfigDir()
	for _, ext := range extensions {
		userPath := filepath.Join(userDir, name+ext)
		if fileutil.FileExists(userPath) {
			return userPath, nil
		}
		triedPaths = append(triedPaths, userPath)
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// NotFoundError lists the locations searched for a named config.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}
