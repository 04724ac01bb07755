// Package logger wraps charm/log with the structured events of a conversion run.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file, creating parent
// directories as needed. Entries are also written to any extra writers.
// The returned cleanup closes the file.
func NewFileLogger(path string, level log.Level, also ...io.Writer) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G302 G304 -- user-chosen log file
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	l := log.NewWithOptions(io.MultiWriter(append([]io.Writer{f}, also...)...), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})

	cleanup := func() {
		_ = f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel converts a level name (debug, info, warn, error) to a log.Level.
// Empty defaults to warn.
func ParseLevel(name string) (log.Level, error) {
	if strings.TrimSpace(name) == "" {
		return log.WarnLevel, nil
	}
	return log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}

// WithRun returns a child logger tagging every entry with a batch run id.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.With("run", id)}
}

// BatchStarted logs the start of a directory conversion
func (l *Logger) BatchStarted(inputDir, outputDir string, total int) {
	l.Info("batch started",
		"input_dir", inputDir,
		"output_dir", outputDir,
		"files", total)
}

// BatchCompleted logs the completion of a directory conversion
func (l *Logger) BatchCompleted(succeeded, failed int, duration time.Duration) {
	l.Info("batch completed",
		"succeeded", succeeded,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// DocumentConverted logs a successful document conversion
func (l *Logger) DocumentConverted(source, dest string, headings int, duration time.Duration) {
	l.Debug("document converted",
		"source", source,
		"dest", dest,
		"headings", headings,
		"duration", duration.Round(time.Microsecond))
}

// DocumentFailed logs a failed document conversion
func (l *Logger) DocumentFailed(source string, err error) {
	l.Error("conversion failed",
		"file", source,
		"error", err)
}

// TemplatesLoaded logs the template set picked for a run
func (l *Logger) TemplatesLoaded(dir, boldColor string) {
	l.Debug("templates loaded",
		"dir", dir,
		"bold_color", boldColor)
}

// TemplateFallback logs a template default applied in place of a user file
func (l *Logger) TemplateFallback(file, reason string) {
	l.Warn("template fallback",
		"file", file,
		"reason", reason)
}

// StateError logs a failure to read or write persisted state
func (l *Logger) StateError(operation string, err error) {
	l.Warn("state error",
		"operation", operation,
		"error", err)
}
