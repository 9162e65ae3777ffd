package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mom2pdf"
	"github.com/alnah/go-mom2pdf/internal/config"
	"github.com/alnah/go-mom2pdf/internal/hints"
	"github.com/alnah/go-mom2pdf/internal/yamlutil"
)

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	template    *mom2pdf.Template
	layout      *mom2pdf.LayoutSettings
	colonLabels bool
	debug       bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	// Load configuration: flag > env > none
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Layer env and CLI values (CLI wins)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose || cfg.Debug)
	if cfg.Debug {
		logEffectiveConfig(logger, cfg)
	}

	tpl, err := loadTemplate(cfg.Template, "")
	if err != nil {
		return err
	}
	logger.Debug("loaded template", "path", tpl.path, "width", tpl.Width(), "height", tpl.Height(), "pages", tpl.PageCount())

	settings := cfg.LayoutSettings()
	if err := settings.CheckPage(tpl.Width(), tpl.Height()); err != nil {
		return &hintError{err: err, hint: hints.ForMargins(tpl.Width(), tpl.Height())}
	}

	inputs, err := resolveInputs(args, cfg.Input.DefaultPath, "")
	if err != nil {
		return err
	}
	files, err := discoverFiles(inputs, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .txt, .md or .markdown files in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	workers := mom2pdf.ResolvePoolSize(resolveWorkers(flags.workers, envCfg.Workers))
	logger.Debug("starting batch", "files", len(files), "workers", workers)

	conv := mom2pdf.NewConverter(mom2pdf.WithLogger(logger), mom2pdf.WithClock(env.Now))
	params := &conversionParams{
		template:    tpl.Template,
		layout:      settings,
		colonLabels: cfg.Layout.ColonLabels,
		debug:       cfg.Debug,
	}

	results := convertBatch(ctx, conv, workers, files, params)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// loadConfig loads the named config, or returns defaults when none is named.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.template != "" {
		cfg.Template = flags.template
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.debug {
		cfg.Debug = true
	}

	// Margin flags
	override(&cfg.Margins.Left, flags.margins.left)
	override(&cfg.Margins.Right, flags.margins.right)
	override(&cfg.Margins.Top, flags.margins.top)
	override(&cfg.Margins.Bottom, flags.margins.bottom)

	// Font flags
	override(&cfg.Fonts.Body, flags.fonts.body)
	override(&cfg.Fonts.H1, flags.fonts.h1)
	override(&cfg.Fonts.H2, flags.fonts.h2)

	// Layout flags
	override(&cfg.Layout.LineHeight, flags.layout.lineHeight)
	if flags.layout.colonLabels {
		cfg.Layout.ColonLabels = true
	}
}

func override(dst **float64, v *float64) {
	if v != nil {
		*dst = v
	}
}

// resolveWorkers picks the worker count: flag > env > 0 (auto).
func resolveWorkers(flagValue, envValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if envValue > mom2pdf.MaxPoolSize {
		return mom2pdf.MaxPoolSize
	}
	return envValue
}

// loadedTemplate remembers where a template came from for logs and errors.
type loadedTemplate struct {
	*mom2pdf.Template
	path string
}

// loadTemplate resolves and parses the letterhead PDF.
func loadTemplate(explicit, dir string) (*loadedTemplate, error) {
	path, tried, err := resolveTemplatePath(explicit, dir)
	if err != nil {
		return nil, &hintError{err: err, hint: hints.ForTemplateNotFound(tried)}
	}

	tpl, err := mom2pdf.LoadTemplateFile(path)
	if err != nil {
		return nil, err
	}
	return &loadedTemplate{Template: tpl, path: path}, nil
}

// logEffectiveConfig prints the merged configuration as YAML at debug level.
func logEffectiveConfig(logger *log.Logger, cfg *config.Config) {
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		logger.Warn("cannot render config", "err", err)
		return
	}
	logger.Debug("effective config\n" + strings.TrimRight(string(out), "\n"))
}

// hintError attaches an actionable hint to an error without changing its identity.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + e.hint }
func (e *hintError) Unwrap() error { return e.err }

// formatError renders err with a hint for the failures users can fix themselves.
func formatError(err error) string {
	var he *hintError
	if errors.As(err, &he) {
		return err.Error()
	}
	// Per-file failures already carry their hints.
	var be *BatchError
	if errors.As(err, &be) {
		return err.Error()
	}

	var nf *config.NotFoundError
	switch {
	case errors.As(err, &nf):
		return err.Error() + hints.ForConfigNotFound(nf.Tried)
	case errors.Is(err, mom2pdf.ErrMeasurement):
		return err.Error() + hints.ForMeasurement()
	case errors.Is(err, mom2pdf.ErrTemplateUnavailable):
		return err.Error() + hints.ForTemplateNotFound(nil)
	case errors.Is(err, ErrCreateOutputDir):
		return err.Error() + hints.ForOutputDirectory()
	}
	return err.Error()
}
