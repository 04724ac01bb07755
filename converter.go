package mdpress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdpress/internal/assets"
	"github.com/alnah/go-mdpress/internal/fileutil"
	"github.com/alnah/go-mdpress/internal/logger"
	"github.com/alnah/go-mdpress/internal/pipeline"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: output is meant to be shared
)

// DefaultOutputExtension is the extension of written files.
const DefaultOutputExtension = ".txt"

// Converter turns Markdown documents into template-wrapped HTML files.
// Create with NewConverter. A Converter is immutable and safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	log       *logger.Logger
	templates *assets.TemplateSet
	engine    *pipeline.Engine
}

// NewConverter loads the template set in templateDir and prepares the
// rendering engine.
//
// Fails fast with a *MissingTemplatesError (matching ErrMissingTemplates)
// naming every required file absent from the directory. An unusable h2.html
// or absent boldcolor.txt is not an error: defaults apply and a warning is
// logged.
func NewConverter(templateDir string, opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			workers:        1,
			highlightStyle: pipeline.DefaultHighlightStyle,
			extension:      DefaultOutputExtension,
		},
		log: logger.NewWithLevel(os.Stderr, log.WarnLevel),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.workers < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkers, c.cfg.workers)
	}
	if c.cfg.workers == 0 {
		c.cfg.workers = runtime.GOMAXPROCS(0)
	}
	if err := fileutil.ValidateExtension(c.cfg.extension); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtension, err)
	}

	dir, err := assets.ResolveDir(templateDir, c.cfg.searchSubdirs)
	if err != nil {
		return nil, err
	}
	ts, err := assets.Load(dir)
	if err != nil {
		return nil, err
	}

	if c.cfg.boldColor != "" {
		if err := assets.ValidateBoldColor(c.cfg.boldColor); err != nil {
			return nil, err
		}
		override := *ts
		override.BoldColor = c.cfg.boldColor
		override.BoldColorFallback = ""
		ts = &override
	}

	c.log.TemplatesLoaded(ts.Dir, ts.BoldColor)
	if ts.HeadingFallback != "" {
		c.log.TemplateFallback(assets.HeadingFile, ts.HeadingFallback)
	}
	if ts.BoldColorFallback != "" {
		c.log.TemplateFallback(assets.BoldColorFile, ts.BoldColorFallback)
	}

	engine, err := pipeline.NewEngine(ts,
		pipeline.WithHighlightStyle(c.cfg.highlightStyle),
		pipeline.WithImageBaseURL(c.cfg.imageBaseURL),
		pipeline.WithHardWraps(c.cfg.hardWraps),
	)
	if err != nil {
		return nil, err
	}

	c.templates = ts
	c.engine = engine
	return c, nil
}

// Templates returns the loaded template set.
func (c *Converter) Templates() *assets.TemplateSet {
	return c.templates
}

// Workers returns the resolved batch concurrency.
func (c *Converter) Workers() int {
	return c.cfg.workers
}

// Render converts Markdown into an HTML fragment, without top and bottom.
func (c *Converter) Render(ctx context.Context, markdown string) (string, error) {
	return c.engine.Render(ctx, markdown)
}

// ConvertFile converts one Markdown file and writes top + fragment + bottom
// to outputPath, creating its directory if needed.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDir, err)
	}
	r := c.convertDocument(ctx, c.log, Document{InputPath: inputPath, OutputPath: outputPath})
	return r.Err
}

// convertDocument reads, renders and writes one document. Failures are
// logged and returned in the Result, never panicked.
func (c *Converter) convertDocument(ctx context.Context, log *logger.Logger, doc Document) Result {
	start := time.Now()
	result := Result{
		InputPath:  doc.InputPath,
		OutputPath: doc.OutputPath,
	}
	fail := func(err error) Result {
		result.Err = err
		result.Duration = time.Since(start)
		log.DocumentFailed(doc.InputPath, err)
		return result
	}

	content, err := os.ReadFile(doc.InputPath) // #nosec G304 -- discovered or caller-provided path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	frag, err := c.engine.RenderFragment(ctx, string(content))
	if err != nil {
		return fail(err)
	}

	out := c.templates.Top + frag.HTML + c.templates.Bottom
	// #nosec G306 -- output is meant to be readable
	if err := fileutil.WriteFileAtomic(doc.OutputPath, []byte(out), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Headings = frag.Headings
	result.Duration = time.Since(start)
	log.DocumentConverted(doc.InputPath, doc.OutputPath, frag.Headings, result.Duration)
	return result
}
