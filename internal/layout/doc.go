// Package layout measures, wraps and paginates parsed blocks.
//
// Wrap turns one block into visual lines using a Measurer, and the
// Paginator places section groups on pages with a keep-together rule:
// a group stays on one page whenever it fits on an empty page, and is
// split line by line otherwise. Every line lands on exactly one page and
// pagination always terminates.
//
// FontMeasurer uses the metrics of the Times core font bundled with fpdf,
// so the widths computed here match what the render package draws.
package layout
