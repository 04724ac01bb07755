package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	envFile string
	quiet   bool
	verbose bool
}

// templateFlags holds template selection flags.
type templateFlags struct {
	dir           string
	searchSubdirs bool
	boldColor     string
}

// renderFlags holds rendering flags.
type renderFlags struct {
	highlightStyle string
	imageBaseURL   string
	hardWraps      bool
}

// logFlags holds logging flags.
type logFlags struct {
	level string
	file  string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	input     string
	output    string
	extension string
	workers   int
	noState   bool
	templates templateFlags
	render    renderFlags
	log       logFlags

	// changed records flags set on the command line, so zero values
	// (false, 0) can still override config and environment.
	changed map[string]bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", "", "load MDPRESS_* variables from this file (default: .env if present)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.dir, "templates", "t", "", "template directory (top.html, bottom.html, h2.html)")
	fs.BoolVar(&f.searchSubdirs, "search-subdirs", false, "use the first complete template subdirectory")
	fs.StringVar(&f.boldColor, "bold-color", "", "CSS color for bold text (overrides boldcolor.txt)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "code highlight style (default: github)")
	fs.StringVar(&f.imageBaseURL, "image-base-url", "", "resolve relative image sources against this URL")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render newlines inside paragraphs as line breaks")
}

// addLogFlags adds logging flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.file, "log-file", "", "also append logs to this file")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "input directory of .md files")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.extension, "ext", "", "output file extension (default: .txt)")
	fs.IntVarP(&f.workers, "workers", "w", 1, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noState, "no-state", false, "do not read or save last-used directories")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.templates)
	addRenderFlags(fs, &f.render)
	addLogFlags(fs, &f.log)

	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, usage io.Writer) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing template files")

	fs.SetOutput(usage)
	fs.Usage = func() { printInitUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
