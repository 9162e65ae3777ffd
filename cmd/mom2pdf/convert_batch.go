package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/alnah/go-mom2pdf"
	"github.com/alnah/go-mom2pdf/internal/fileutil"
)

// File permission constants.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Sentinel errors for batch operations.
var (
	ErrReadInput       = errors.New("failed to read input file")
	ErrWritePDF        = errors.New("failed to write PDF file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mom2pdf.Input) (*mom2pdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mom2pdf.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	Err        error
	Duration   time.Duration
}

// BatchError reports failed conversions. It unwraps to every failure, so
// errors.Is matches any cause and the exit code follows the most severe one.
type BatchError struct {
	Failed int
	Total  int
	Errs   error // multierr combination of the per-file errors
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.Failed, e.Total)
}

func (e *BatchError) Unwrap() []error { return multierr.Errors(e.Errs) }

// convertBatch processes files concurrently. Workers share one converter,
// which holds no per-run state.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
// Nothing is written unless the whole document converted.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	convResult, err := conv.Convert(ctx, mom2pdf.Input{
		Text:        string(content),
		Template:    params.template,
		Layout:      params.layout,
		ColonLabels: params.colonLabels,
		Debug:       params.debug,
	})
	if err != nil {
		return finish(err)
	}

	if err := fileutil.EnsureParentDir(f.OutputPath); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(f.OutputPath, convResult.PDF, filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWritePDF, err))
	}

	result.Pages = convResult.Pages
	return finish(nil)
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	First     error
	Errs      error // every failure, prefixed with its input path
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			if summary.First == nil {
				summary.First = r.Err
			}
			summary.Errs = multierr.Append(summary.Errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports every result and returns an error if any failed.
// A single failed file returns its own error so it prints once, with hints.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.InputPath, formatError(r.Err))
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "Wrote %d page(s) to %s (%v)\n", r.Pages, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Wrote %d page(s) to %s\n", r.Pages, r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	switch {
	case summary.Failed == 0:
		return nil
	case len(results) == 1:
		return fmt.Errorf("%s: %w", results[0].InputPath, summary.First)
	default:
		return &BatchError{Failed: summary.Failed, Total: len(results), Errs: summary.Errs}
	}
}
