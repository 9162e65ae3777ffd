// Package markup turns meeting-minutes text into typed blocks.
//
// This package handles the text stages of the conversion:
//   - Inline emphasis (**bold**, *italic*) into styled runs
//   - Line classification into headings, list items, paragraphs and blanks
//   - Grouping of blocks into named sections that pagination keeps together
//
// The model is strictly line-oriented: one physical line produces one block,
// and paragraphs are never merged. Measuring, wrapping and placing blocks on
// pages is handled by the layout package.
package markup
