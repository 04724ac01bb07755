package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdpress"
	"github.com/alnah/go-mdpress/internal/config"
	"github.com/alnah/go-mdpress/internal/hints"
	"github.com/alnah/go-mdpress/internal/logger"
	"github.com/alnah/go-mdpress/internal/pipeline"
	"github.com/alnah/go-mdpress/internal/state"
	"github.com/alnah/go-mdpress/internal/styles"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrNoInput         = errors.New("no input directory specified")
	ErrNoOutput        = errors.New("no output directory specified")
	ErrNoTemplates     = errors.New("no template directory specified")
	ErrDocumentsFailed = errors.New("some documents failed to convert")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input directory, got %d arguments", ErrUsage, len(positional))
	}

	setMaxProcs(flags.common.verbose, env.Stderr)

	cfg, noState, err := resolveConfig(flags, positional, env)
	if err != nil {
		return err
	}

	runLog, closeLog, err := newRunLogger(cfg, flags.common, env)
	if err != nil {
		return err
	}
	defer closeLog()

	// Persisted state fills directories nothing else provided.
	var st *state.State
	statePath := env.StatePath()
	if !noState {
		st, err = state.Load(statePath)
		if err != nil {
			runLog.StateError("load", err)
			st = &state.State{}
		}
		applyState(st, cfg)
	}

	if err := requireDirs(cfg); err != nil {
		return err
	}

	conv, err := mdpress.NewConverter(cfg.Templates.Dir, converterOptions(cfg, runLog)...)
	if err != nil {
		return withHint(err, cfg)
	}

	quiet := flags.common.quiet
	if !quiet {
		fmt.Fprintf(env.Stdout, "Starting conversion: %s -> %s\n",
			styles.PathStyle.Render(cfg.Input.DefaultDir), styles.PathStyle.Render(cfg.Output.DefaultDir))
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Templates: %s (workers: %d)\n", styles.PathStyle.Render(conv.Templates().Dir), conv.Workers())
		}
	}

	onProgress := func(current, total int, name string) {
		if !quiet {
			fmt.Fprintln(env.Stdout, styles.Progress(current, total, name))
		}
	}

	summary, err := conv.ConvertDirectory(ctx, cfg.Input.DefaultDir, cfg.Output.DefaultDir, onProgress)
	if err != nil && ctx.Err() == nil {
		return withHint(err, cfg)
	}

	if !noState {
		st.Remember(cfg.Input.DefaultDir, cfg.Output.DefaultDir, cfg.Templates.Dir, env.Now())
		if saveErr := st.Save(statePath); saveErr != nil {
			runLog.StateError("save", saveErr)
		}
	}

	if err != nil {
		return fmt.Errorf("conversion interrupted after %d documents: %w", summary.Total(), err)
	}

	if !quiet {
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, styles.TitleStyle.Render("Done."))
		fmt.Fprintln(env.Stdout, styles.Summary(summary.Succeeded, summary.Failed))
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Took %v\n", summary.Duration.Round(time.Millisecond))
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d%s", ErrDocumentsFailed, summary.Failed, summary.Total(),
			hints.ForFailedDocuments(summary.Failed))
	}
	return nil
}

// resolveConfig builds the effective configuration from the config file,
// the environment and the flags, in increasing precedence. Also reports
// whether persisted state is disabled.
func resolveConfig(flags *convertFlags, positional []string, e *Environment) (*config.Config, bool, error) {
	if err := loadDotEnv(flags.common.envFile); err != nil {
		return nil, false, err
	}
	env := loadEnvConfig(e.Stderr)
	warnUnknownEnvVars(e.Stderr)

	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = env.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			var nf *config.NotFoundError
			if errors.As(err, &nf) {
				return nil, false, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nf.Tried))
			}
			return nil, false, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, positional, cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, false, withHint(err, cfg)
	}

	return cfg, flags.noState || env.NoState, nil
}

// mergeFlags applies CLI flags over config values.
// String flags win when non-empty; bool and int flags win when set.
func mergeFlags(flags *convertFlags, positional []string, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.Input.DefaultDir = positional[0]
	}
	if flags.input != "" {
		cfg.Input.DefaultDir = flags.input
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.extension != "" {
		cfg.Output.Extension = flags.extension
	}
	if flags.templates.dir != "" {
		cfg.Templates.Dir = flags.templates.dir
	}
	if flags.templates.boldColor != "" {
		cfg.Templates.BoldColor = flags.templates.boldColor
	}
	if flags.render.highlightStyle != "" {
		cfg.Render.HighlightStyle = flags.render.highlightStyle
	}
	if flags.render.imageBaseURL != "" {
		cfg.Render.ImageBaseURL = flags.render.imageBaseURL
	}
	if flags.log.level != "" {
		cfg.Log.Level = flags.log.level
	}
	if flags.log.file != "" {
		cfg.Log.File = flags.log.file
	}

	if flags.changed["search-subdirs"] {
		cfg.Templates.SearchSubdirs = flags.templates.searchSubdirs
	}
	if flags.changed["hard-wraps"] {
		cfg.Render.HardWraps = flags.render.hardWraps
	}
	if flags.changed["workers"] {
		cfg.Workers = flags.workers
	}
}

// applyState fills directories left empty by flags, env and config.
func applyState(st *state.State, cfg *config.Config) {
	if cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = st.InputDir
	}
	if cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = st.OutputDir
	}
	if cfg.Templates.Dir == "" {
		cfg.Templates.Dir = st.TemplateDir
	}
}

// requireDirs checks that the input, output and template directories are known.
func requireDirs(cfg *config.Config) error {
	if cfg.Input.DefaultDir == "" {
		return fmt.Errorf("%w: pass it as an argument, with --input or MDPRESS_INPUT_DIR", ErrNoInput)
	}
	if cfg.Output.DefaultDir == "" {
		return fmt.Errorf("%w: use --output or MDPRESS_OUTPUT_DIR", ErrNoOutput)
	}
	if cfg.Templates.Dir == "" {
		return fmt.Errorf("%w: use --templates or MDPRESS_TEMPLATE_DIR%s", ErrNoTemplates, hints.ForNoTemplateDir())
	}
	return nil
}

// converterOptions maps the configuration to library options.
func converterOptions(cfg *config.Config, l *logger.Logger) []mdpress.Option {
	return []mdpress.Option{
		mdpress.WithLogger(l),
		mdpress.WithTemplateDiscovery(cfg.Templates.SearchSubdirs),
		mdpress.WithBoldColor(cfg.Templates.BoldColor),
		mdpress.WithHighlightStyle(cfg.Render.HighlightStyle),
		mdpress.WithImageBaseURL(cfg.Render.ImageBaseURL),
		mdpress.WithHardWraps(cfg.Render.HardWraps),
		mdpress.WithOutputExtension(cfg.Output.Extension),
		mdpress.WithWorkers(cfg.Workers),
	}
}

// newRunLogger creates the logger for one run. --verbose forces debug and
// --quiet forces error; otherwise the configured level applies.
func newRunLogger(cfg *config.Config, common commonFlags, env *Environment) (*logger.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log level %q", config.ErrInvalidField, cfg.Log.Level)
	}
	switch {
	case common.verbose:
		level = log.DebugLevel
	case common.quiet:
		level = log.ErrorLevel
	}

	if cfg.Log.File == "" {
		return logger.NewWithLevel(env.Stderr, level), func() {}, nil
	}
	l, cleanup, err := logger.NewFileLogger(cfg.Log.File, level, env.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return l, cleanup, nil
}

// withHint appends an actionable hint to well-known errors.
func withHint(err error, cfg *config.Config) error {
	var hint string
	var missing *mdpress.MissingTemplatesError
	switch {
	case errors.As(err, &missing):
		hint = hints.ForMissingTemplates(filepath.Clean(cfg.Templates.Dir), cfg.Templates.SearchSubdirs)
	case errors.Is(err, mdpress.ErrInvalidBoldColor):
		hint = hints.ForInvalidBoldColor()
	case errors.Is(err, mdpress.ErrUnknownHighlightStyle):
		hint = hints.ForHighlightStyle(pipeline.HighlightStyles())
	case errors.Is(err, mdpress.ErrOutputDir):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, mdpress.ErrInvalidInputDir):
		hint = hints.ForInputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
