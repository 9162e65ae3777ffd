package render

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/alnah/go-mom2pdf/internal/layout"
)

// ErrRender is returned when a page cannot be drawn or serialized.
var ErrRender = errors.New("page rendering failed")

// Producer is written to the PDF metadata.
const Producer = "go-mom2pdf"

// Compositor draws laid-out pages over the template background.
// A Compositor is not safe for concurrent use.
type Compositor struct {
	cfg      *layout.Config
	pdf      *fpdf.Fpdf
	importer *gofpdi.Importer
	tplID    int
	pages    int
}

// Options configures a Compositor.
type Options struct {
	// CreationDate is written to the PDF metadata. Fixing it pins the
	// metadata and page content across runs, but not the bytes: the imported
	// template's resource dictionaries (/ProcSet, /Font) are written in map order.
	CreationDate time.Time
}

// NewCompositor creates a document sized to cfg and imports the first page
// of tpl as the background.
func NewCompositor(tpl *Template, cfg *layout.Config, opts Options) (c *Compositor, err error) {
	if tpl == nil {
		return nil, fmt.Errorf("%w: no template", ErrTemplateUnavailable)
	}

	// The gofpdi importer panics on PDFs it cannot parse.
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("%w: importing first page: %v", ErrTemplateUnavailable, r)
		}
	}()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer(Producer, false)
	if !opts.CreationDate.IsZero() {
		pdf.SetCreationDate(opts.CreationDate)
		pdf.SetModificationDate(opts.CreationDate)
	}

	importer := gofpdi.NewImporter()
	rs := tpl.reader()
	tplID := importer.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	if pdf.Err() {
		return nil, fmt.Errorf("%w: importing first page: %v", ErrTemplateUnavailable, pdf.Error())
	}

	return &Compositor{
		cfg:      cfg,
		pdf:      pdf,
		importer: importer,
		tplID:    tplID,
	}, nil
}

// Render adds one output page: the background first, then every fragment.
func (c *Compositor) Render(page layout.Page) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: page %d: %v", ErrRender, page.Number, r)
		}
	}()

	c.pdf.AddPage()
	c.importer.UseImportedTemplate(c.pdf, c.tplID, 0, 0, c.cfg.PageWidth, c.cfg.PageHeight)

	for _, line := range page.Lines {
		for _, f := range line.Fragments {
			text, err := layout.EncodeWinAnsi(f.Text)
			if err != nil {
				return fmt.Errorf("%w: page %d: %w", ErrRender, page.Number, err)
			}
			c.pdf.SetFont(layout.FontFamily, f.Style.FontStyle(), f.Size)
			c.pdf.Text(c.cfg.Margins.Left+f.X, line.Y+f.Size, text)
		}
	}

	if c.pdf.Err() {
		return fmt.Errorf("%w: page %d: %v", ErrRender, page.Number, c.pdf.Error())
	}
	c.pages++
	return nil
}

// PageCount returns the number of pages rendered so far.
func (c *Compositor) PageCount() int {
	return c.pages
}

// Bytes serializes the document. The compositor cannot be used afterwards.
func (c *Compositor) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
