package mdpress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdpress/internal/fileutil"
	"github.com/alnah/go-mdpress/internal/logger"
)

// MarkdownExtensions lists the file extensions picked up by DiscoverDocuments.
var MarkdownExtensions = []string{".md", ".markdown"}

// Document is one input file and the path its output goes to.
type Document struct {
	InputPath  string
	OutputPath string
}

// Result holds the outcome of a single conversion. Success iff Err is nil.
type Result struct {
	InputPath  string
	OutputPath string
	Headings   int // level-2 headings replaced by the wrapper
	Err        error
	Duration   time.Duration
}

// Summary holds the counts of a directory conversion.
type Summary struct {
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// ProgressFunc is called after each document with a 1-based position,
// the number of documents and the input file name. Calls never overlap and
// current increases by one each time.
type ProgressFunc func(current, total int, filename string)

// DiscoverDocuments lists the Markdown files directly inside inputDir, sorted
// by name, and maps each to outputDir with its extension replaced by ext.
// Subdirectories are not scanned.
func DiscoverDocuments(inputDir, outputDir, ext string) ([]Document, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInputDir, err)
	}

	// os.ReadDir returns entries sorted by filename.
	var docs []Document
	for _, e := range entries {
		if !isMarkdownFile(inputDir, e) {
			continue
		}
		docs = append(docs, Document{
			InputPath:  filepath.Join(inputDir, e.Name()),
			OutputPath: filepath.Join(outputDir, fileutil.ReplaceExtension(e.Name(), ext)),
		})
	}
	return docs, nil
}

// isMarkdownFile reports whether e is a regular file (or a link to one) with
// a Markdown extension.
func isMarkdownFile(dir string, e os.DirEntry) bool {
	if !hasMarkdownExtension(e.Name()) {
		return false
	}
	if e.Type().IsRegular() {
		return true
	}
	return fileutil.FileExists(filepath.Join(dir, e.Name()))
}

func hasMarkdownExtension(name string) bool {
	for _, ext := range MarkdownExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ConvertDirectory converts every Markdown file directly inside inputDir and
// writes the results to outputDir, which is created if needed.
//
// Per-document failures are logged and counted, never returned: the error
// return is reserved for setup failures and cancellation. The context is
// checked between documents; a document already started always finishes.
// onProgress may be nil.
func (c *Converter) ConvertDirectory(ctx context.Context, inputDir, outputDir string, onProgress ProgressFunc) (Summary, error) {
	start := time.Now()

	info, err := os.Stat(inputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalidInputDir, err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("%w: not a directory: %s", ErrInvalidInputDir, inputDir)
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	docs, err := DiscoverDocuments(inputDir, outputDir, c.cfg.extension)
	if err != nil {
		return Summary{}, err
	}

	log := c.log.WithRun(uuid.NewString()[:8])
	log.BatchStarted(inputDir, outputDir, len(docs))

	if onProgress == nil {
		onProgress = func(int, int, string) {}
	}

	var summary Summary
	if c.cfg.workers <= 1 || len(docs) <= 1 {
		err = c.convertSequential(ctx, docs, &summary, onProgress, log)
	} else {
		err = c.convertParallel(ctx, docs, &summary, onProgress, log)
	}

	summary.Duration = time.Since(start)
	log.BatchCompleted(summary.Succeeded, summary.Failed, summary.Duration)
	return summary, err
}

func (c *Converter) convertSequential(ctx context.Context, docs []Document, summary *Summary, onProgress ProgressFunc, log *logger.Logger) error {
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := c.convertDocument(context.WithoutCancel(ctx), log, doc)
		summary.add(r)
		onProgress(i+1, len(docs), filepath.Base(doc.InputPath))
	}
	return nil
}

// convertParallel converts up to c.cfg.workers documents at once. Progress
// calls are serialized and numbered in completion order.
func (c *Converter) convertParallel(ctx context.Context, docs []Document, summary *Summary, onProgress ProgressFunc, log *logger.Logger) error {
	var (
		mu      sync.Mutex
		current int
		g       errgroup.Group
	)
	g.SetLimit(c.cfg.workers)

	for _, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			r := c.convertDocument(context.WithoutCancel(ctx), log, doc)

			mu.Lock()
			defer mu.Unlock()
			summary.add(r)
			current++
			onProgress(current, len(docs), filepath.Base(doc.InputPath))
			return nil
		})
	}

	_ = g.Wait() // workers never return errors
	return ctx.Err()
}

func (s *Summary) add(r Result) {
	if r.Err != nil {
		s.Failed++
	} else {
		s.Succeeded++
	}
}
