package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrTemplateUnavailable is returned when the template PDF cannot be used.
var ErrTemplateUnavailable = errors.New("template unavailable")

// MaxTemplateSize caps the template file size (64 MiB).
const MaxTemplateSize = 64 << 20

var disableConfigDir sync.Once

// pdfConfig returns a relaxed pdfcpu configuration that never touches the
// user's config directory.
func pdfConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Template is a validated template PDF. The first page is the background of
// every output page and its MediaBox sets the output page size.
// A Template is immutable and safe for concurrent use.
type Template struct {
	data   []byte
	width  float64
	height float64
	pages  int
}

// LoadTemplate validates data as a PDF and reads the size of its first page.
func LoadTemplate(data []byte) (*Template, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty template", ErrTemplateUnavailable)
	}
	if len(data) > MaxTemplateSize {
		return nil, fmt.Errorf("%w: template exceeds %d bytes", ErrTemplateUnavailable, MaxTemplateSize)
	}

	conf := pdfConfig()
	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF: %v", ErrTemplateUnavailable, err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: validating PDF: %v", ErrTemplateUnavailable, err)
	}
	if ctx.PageCount < 1 {
		return nil, fmt.Errorf("%w: template has no pages", ErrTemplateUnavailable)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("%w: reading page size: %v", ErrTemplateUnavailable, err)
	}
	if len(dims) == 0 || dims[0].Width <= 0 || dims[0].Height <= 0 {
		return nil, fmt.Errorf("%w: first page has no usable size", ErrTemplateUnavailable)
	}

	return &Template{
		data:   data,
		width:  dims[0].Width,
		height: dims[0].Height,
		pages:  ctx.PageCount,
	}, nil
}

// LoadTemplateFile reads and validates the template at path.
func LoadTemplateFile(path string) (*Template, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided template path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}
	return LoadTemplate(data)
}

// Width is the first page width in points.
func (t *Template) Width() float64 { return t.width }

// Height is the first page height in points.
func (t *Template) Height() float64 { return t.height }

// PageCount is the number of pages of the template PDF. Only the first is used.
func (t *Template) PageCount() int { return t.pages }

// reader returns a fresh reader over the template bytes.
func (t *Template) reader() io.ReadSeeker {
	return bytes.NewReader(t.data)
}
