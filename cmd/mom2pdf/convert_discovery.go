package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mom2pdf"
	"github.com/alnah/go-mom2pdf/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .txt, .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoInput            = errors.New("no input specified")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrOutputConflict     = errors.New("output path conflicts with inputs")
)

// inputExtensions lists the extensions accepted for minutes files.
var inputExtensions = []string{".txt", ".md", ".markdown"}

// defaultInputs are tried in the working directory when no input is given.
var defaultInputs = []string{"content.txt", "content.md"}

// defaultTemplates are tried in the working directory when no template is given.
var defaultTemplates = []string{"Template.pdf", "template.pdf", "CSI Template.pdf"}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// resolveInputs determines the inputs from args, config, or the default candidates.
func resolveInputs(args []string, defaultPath, dir string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if defaultPath != "" {
		return []string{defaultPath}, nil
	}
	if path, _ := fileutil.FirstExisting(dir, defaultInputs); path != "" {
		return []string{path}, nil
	}
	return nil, fmt.Errorf("%w: pass a file or directory, or create %s", ErrNoInput, strings.Join(defaultInputs, " or "))
}

// resolveTemplatePath picks the template: explicit path first, else the default candidates in dir.
func resolveTemplatePath(explicit, dir string) (string, []string, error) {
	if explicit != "" {
		return explicit, nil, nil
	}
	path, tried := fileutil.FirstExisting(dir, defaultTemplates)
	if path == "" {
		return "", tried, fmt.Errorf("%w: tried %s", ErrTemplateNotFound, strings.Join(defaultTemplates, ", "))
	}
	return path, tried, nil
}

// discoverFiles expands every input into the files to convert.
// A single-file run may write to an explicit .pdf output path.
func discoverFiles(inputs []string, output string) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, input := range inputs {
		found, err := discoverInput(input, output)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) > 1 && isPDFPath(output) {
		return nil, fmt.Errorf("%w: %s names a single file but %d inputs were found", ErrOutputConflict, output, len(files))
	}
	return files, nil
}

func discoverInput(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, inputExtensions...) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the PDF output path for an input file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	pdfName := fileutil.ReplaceExtension(filepath.Base(inputPath), ".pdf")

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), pdfName)
	}

	if isPDFPath(outputDir) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), pdfName)
		}
	}

	return filepath.Join(outputDir, pdfName)
}

func isPDFPath(path string) bool {
	return fileutil.HasExtension(path, ".pdf")
}

// validateInputExtension checks that the file has an accepted extension.
func validateInputExtension(path string) error {
	if !fileutil.HasExtension(path, inputExtensions...) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > mom2pdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, mom2pdf.MaxPoolSize)
	}
	return nil
}
