// Package render composites laid-out pages onto a template PDF.
//
// The first page of the template is imported once per document with
// gofpdi and drawn as the background of every output page; text is drawn
// on top with the fpdf Times core fonts. Templates are validated with
// pdfcpu before use, and ExtractText reads the text layer back with
// ledongthuc/pdf for diagnostics.
package render
