package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-mdpress/internal/config"
)

// ErrEnvFile indicates an explicitly requested env file could not be loaded.
var ErrEnvFile = errors.New("failed to load env file")

// envPrefix starts every recognized environment variable.
const envPrefix = "MDPRESS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDPRESS_CONFIG: config file name or path

	// I/O
	InputDir  string // MDPRESS_INPUT_DIR: input directory
	OutputDir string // MDPRESS_OUTPUT_DIR: output directory
	Extension string // MDPRESS_EXTENSION: output file extension

	// Templates
	TemplateDir   string // MDPRESS_TEMPLATE_DIR: template directory
	SearchSubdirs *bool  // MDPRESS_SEARCH_SUBDIRS: look one level down
	BoldColor     string // MDPRESS_BOLD_COLOR: bold span color

	// Rendering
	HighlightStyle string // MDPRESS_HIGHLIGHT_STYLE: chroma style
	ImageBaseURL   string // MDPRESS_IMAGE_BASE_URL: base for relative images
	HardWraps      *bool  // MDPRESS_HARD_WRAPS: newlines become <br />

	// Runtime
	Workers  *int   // MDPRESS_WORKERS: parallel workers (0 = auto)
	LogLevel string // MDPRESS_LOG_LEVEL: debug, info, warn, error
	LogFile  string // MDPRESS_LOG_FILE: log file path
	NoState  bool   // MDPRESS_NO_STATE: skip last-used directories
}

// knownEnvVars lists valid MDPRESS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDPRESS_CONFIG":          true,
	"MDPRESS_INPUT_DIR":       true,
	"MDPRESS_OUTPUT_DIR":      true,
	"MDPRESS_EXTENSION":       true,
	"MDPRESS_TEMPLATE_DIR":    true,
	"MDPRESS_SEARCH_SUBDIRS":  true,
	"MDPRESS_BOLD_COLOR":      true,
	"MDPRESS_HIGHLIGHT_STYLE": true,
	"MDPRESS_IMAGE_BASE_URL":  true,
	"MDPRESS_HARD_WRAPS":      true,
	"MDPRESS_WORKERS":         true,
	"MDPRESS_LOG_LEVEL":       true,
	"MDPRESS_LOG_FILE":        true,
	"MDPRESS_NO_STATE":        true,
}

// loadDotEnv loads variables from path into the process environment.
// With an empty path, ./.env is loaded when it exists. Variables already
// set in the environment are never overridden.
func loadDotEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: .env: %v", ErrEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEnvFile, path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable booleans and integers are reported to w and ignored.
func loadEnvConfig(w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("MDPRESS_CONFIG"),
		InputDir:       os.Getenv("MDPRESS_INPUT_DIR"),
		OutputDir:      os.Getenv("MDPRESS_OUTPUT_DIR"),
		Extension:      os.Getenv("MDPRESS_EXTENSION"),
		TemplateDir:    os.Getenv("MDPRESS_TEMPLATE_DIR"),
		BoldColor:      os.Getenv("MDPRESS_BOLD_COLOR"),
		HighlightStyle: os.Getenv("MDPRESS_HIGHLIGHT_STYLE"),
		ImageBaseURL:   os.Getenv("MDPRESS_IMAGE_BASE_URL"),
		LogLevel:       os.Getenv("MDPRESS_LOG_LEVEL"),
		LogFile:        os.Getenv("MDPRESS_LOG_FILE"),
	}

	cfg.SearchSubdirs = envBool(w, "MDPRESS_SEARCH_SUBDIRS")
	cfg.HardWraps = envBool(w, "MDPRESS_HARD_WRAPS")
	if noState := envBool(w, "MDPRESS_NO_STATE"); noState != nil {
		cfg.NoState = *noState
	}

	// Parse int for workers
	if workers := os.Getenv("MDPRESS_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n >= 0 {
			cfg.Workers = &n
		} else {
			fmt.Fprintf(w, "warning: ignoring MDPRESS_WORKERS=%q (want a number >= 0)\n", workers)
		}
	}

	return cfg
}

// envBool parses a boolean variable. Returns nil when unset or invalid.
func envBool(w io.Writer, name string) *bool {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Fprintf(w, "warning: ignoring %s=%q (want true or false)\n", name, raw)
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized MDPRESS_* variables.
// Helps catch typos like MDPRESS_TEMPLATES instead of MDPRESS_TEMPLATE_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setString(&cfg.Input.DefaultDir, env.InputDir)
	setString(&cfg.Output.DefaultDir, env.OutputDir)
	setString(&cfg.Output.Extension, env.Extension)
	setString(&cfg.Templates.Dir, env.TemplateDir)
	setString(&cfg.Templates.BoldColor, env.BoldColor)
	setString(&cfg.Render.HighlightStyle, env.HighlightStyle)
	setString(&cfg.Render.ImageBaseURL, env.ImageBaseURL)
	setString(&cfg.Log.Level, env.LogLevel)
	setString(&cfg.Log.File, env.LogFile)

	if env.SearchSubdirs != nil {
		cfg.Templates.SearchSubdirs = *env.SearchSubdirs
	}
	if env.HardWraps != nil {
		cfg.Render.HardWraps = *env.HardWraps
	}
	if env.Workers != nil {
		cfg.Workers = *env.Workers
	}
}
