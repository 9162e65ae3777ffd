// Package mom2pdf lays out meeting-minutes text on top of a template PDF.
//
// # Quick Start
//
// Load a template, create a converter, and convert text:
//
//	tpl, err := mom2pdf.LoadTemplateFile("Template.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv := mom2pdf.NewConverter()
//	result, err := conv.Convert(ctx, mom2pdf.Input{
//	    Text:     "# Weekly sync\n## Attendees\n1. Alice\n2. Bob",
//	    Template: tpl,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("minutes.pdf", result.PDF, 0644)
//
// The first page of the template is drawn behind every output page, so its
// letterhead and footer appear on each page. The output page size is the
// size of the template's first page.
//
// # Document Format
//
// The input is line oriented; each physical line is one block:
//
//	# Title                 centered bold heading
//	## Section              bold section heading
//	- item / * item         bullet item
//	1. item                 numbered item
//	(empty line)            vertical space
//	anything else           paragraph
//
// Inside a line, **bold** and *italic* mark emphasis.
//
// # Sections
//
// Section headings containing "attendee", "action item", "discussion" or
// "signature" start a named section. A section is kept on one page whenever
// it fits on an empty page, and is split line by line otherwise.
//
// # Conversion Pipeline
//
//  1. Parsing into blocks and section groups
//  2. Line wrapping with the Times core font metrics
//  3. Pagination with the keep-together rule
//  4. Compositing over the template (fpdf + gofpdi)
//
// # Fonts
//
// Text is set in the PDF core Times family, which covers the Windows-1252
// character set. Text outside it fails with ErrMeasurement.
//
// # Concurrency
//
// A Converter and a Template may be shared by concurrent goroutines; each
// Convert call builds its own measurer and document. Use ResolvePoolSize to
// size a worker pool for batch conversions.
package mom2pdf
