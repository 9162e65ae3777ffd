package mom2pdf

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mom2pdf/internal/layout"
	"github.com/alnah/go-mom2pdf/internal/markup"
	"github.com/alnah/go-mom2pdf/internal/render"
)

// Converter orchestrates the text-to-PDF pipeline.
// A Converter holds no per-run state and is safe for concurrent use.
type Converter struct {
	logger      *log.Logger
	now         func() time.Time
	newMeasurer func() layout.Measurer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithLogger, WithClock).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:      log.New(io.Discard),
		now:         time.Now,
		newMeasurer: func() layout.Measurer { return layout.NewFontMeasurer() },
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses, lays out and renders input.Text over input.Template.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	settings := input.Layout
	if settings == nil {
		settings = DefaultLayoutSettings()
	}
	cfg, err := settings.layoutConfig(input.Template.Width(), input.Template.Height())
	if err != nil {
		return nil, err
	}

	var trace *Trace
	if input.Debug {
		trace = &Trace{}
	}

	// Parse and group
	blocks := markup.Parse(input.Text)
	groups := markup.Group(blocks, markup.GroupOptions{ColonLabels: input.ColonLabels})
	trace.addBlocks(blocks)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Wrap every block against the printable width
	wrapped, err := c.wrap(groups, cfg)
	if err != nil {
		return nil, c.fail(input.Debug, "wrap", err)
	}
	trace.addGroups(groups, wrapped)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Paginate
	pages := layout.Paginate(wrapped, cfg)
	trace.addPages(pages)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Composite over the template
	pdf, err := c.render(input.Template, cfg, pages)
	if err != nil {
		return nil, c.fail(input.Debug, "render", err)
	}

	if trace != nil {
		c.sample(trace, pdf)
		c.logTrace(trace)
	}

	return &ConvertResult{PDF: pdf, Pages: len(pages), Trace: trace}, nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their settings validated earlier by Config.Validate() at load time.
func validateInput(input Input) error {
	if input.Text == "" {
		return ErrEmptyDocument
	}
	if input.Template == nil || input.Template.tpl == nil {
		return fmt.Errorf("%w: no template provided", ErrTemplateUnavailable)
	}
	return input.Layout.Validate()
}

func (c *Converter) wrap(groups []markup.SectionGroup, cfg *layout.Config) ([]layout.GroupLines, error) {
	m := c.newMeasurer()
	width := cfg.ContentWidth()

	wrapped := make([]layout.GroupLines, 0, len(groups))
	for _, g := range groups {
		gl := layout.GroupLines{Name: g.Name}
		for _, b := range g.Blocks {
			lines, err := layout.Wrap(b, width, cfg, m)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", b.Line, err)
			}
			gl.Lines = append(gl.Lines, lines...)
		}
		wrapped = append(wrapped, gl)
	}
	return wrapped, nil
}

func (c *Converter) render(tpl *Template, cfg *layout.Config, pages []layout.Page) ([]byte, error) {
	comp, err := render.NewCompositor(tpl.tpl, cfg, render.Options{CreationDate: c.now()})
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if err := comp.Render(p); err != nil {
			return nil, err
		}
	}
	return comp.Bytes()
}

// sample fills the trace with text re-extracted from the output.
// Extraction problems are logged and never fail the conversion.
func (c *Converter) sample(trace *Trace, pdf []byte) {
	texts, err := render.ExtractText(pdf)
	if err != nil {
		c.logger.Warn("text extraction failed", "err", err)
		return
	}
	trace.addSamples(texts)
}

func (c *Converter) logTrace(trace *Trace) {
	c.logger.Debug("parsed document", "blocks", len(trace.Blocks), "groups", len(trace.Groups))
	for _, g := range trace.Groups {
		c.logger.Debug("section", "name", g.Name, "blocks", g.Blocks, "lines", g.Lines, "height", fmt.Sprintf("%.1f", g.Height))
	}
	for _, p := range trace.Pages {
		c.logger.Debug("page", "number", p.Number, "lines", p.Lines, "sections", strings.Join(p.Groups, ","), "text", p.Sample)
	}
}

// fail logs the failing stage in debug mode and returns err unchanged.
func (c *Converter) fail(debug bool, stage string, err error) error {
	if debug {
		c.logger.Error("conversion failed", "stage", stage, "err", err)
	}
	return err
}
