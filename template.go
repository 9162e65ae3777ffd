package mom2pdf

import "github.com/alnah/go-mom2pdf/internal/render"

// Template is a validated background PDF. Its first page is drawn behind
// every output page and its size becomes the output page size.
// A Template is immutable and may be shared between conversions.
type Template struct {
	tpl *render.Template
}

// LoadTemplate validates data as a PDF with at least one page.
func LoadTemplate(data []byte) (*Template, error) {
	tpl, err := render.LoadTemplate(data)
	if err != nil {
		return nil, err
	}
	return &Template{tpl: tpl}, nil
}

// LoadTemplateFile reads and validates the template PDF at path.
func LoadTemplateFile(path string) (*Template, error) {
	tpl, err := render.LoadTemplateFile(path)
	if err != nil {
		return nil, err
	}
	return &Template{tpl: tpl}, nil
}

// Width returns the page width in points.
func (t *Template) Width() float64 { return t.tpl.Width() }

// Height returns the page height in points.
func (t *Template) Height() float64 { return t.tpl.Height() }

// PageCount returns the number of pages in the template PDF.
func (t *Template) PageCount() int { return t.tpl.PageCount() }
