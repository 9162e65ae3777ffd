package mom2pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-mom2pdf/internal/render"
)

// letterheadPDF builds an A4 template with a header band and a footer line.
func letterheadPDF(t testing.TB) []byte {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFillColor(20, 60, 120)
	pdf.Rect(0, 0, 595.28, 90, "F")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(50, 55, "ACME Corp")
	pdf.Line(50, 800, 545, 800)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("building template fixture: %v", err)
	}
	return buf.Bytes()
}

func loadLetterhead(t testing.TB) *Template {
	t.Helper()

	tpl, err := LoadTemplate(letterheadPDF(t))
	if err != nil {
		t.Fatalf("LoadTemplate() unexpected error: %v", err)
	}
	return tpl
}

// pdfText returns the text layer of every page of pdf.
func pdfText(t *testing.T, pdf []byte) []string {
	t.Helper()

	texts, err := render.ExtractText(pdf)
	if err != nil {
		t.Fatalf("ExtractText() unexpected error: %v", err)
	}
	return texts
}

func containsAll(s string, subs ...string) (string, bool) {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return sub, false
		}
	}
	return "", true
}
