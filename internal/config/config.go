package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mom2pdf"
	"github.com/alnah/go-mom2pdf/internal/fileutil"
	"github.com/alnah/go-mom2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// MaxPathLength bounds every path-valued field.
const MaxPathLength = 4096

// AppDir is the directory under the user config dir searched for named configs.
const AppDir = "go-mom2pdf"

// Config holds all configuration for minutes conversion.
// Numeric fields are pointers so an absent key keeps the built-in default,
// while an explicit zero (e.g. "left: 0") is honored.
type Config struct {
	Template string       `yaml:"template"` // Letterhead PDF (empty = search the working directory)
	Input    InputConfig  `yaml:"input"`
	Output   OutputConfig `yaml:"output"`
	Margins  MarginConfig `yaml:"margins"`
	Fonts    FontConfig   `yaml:"fonts"`
	Layout   LayoutConfig `yaml:"layout"`
	Debug    bool         `yaml:"debug"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // File or directory used when no input is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = beside the input
}

// MarginConfig holds margins in points.
type MarginConfig struct {
	Left   *float64 `yaml:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty"`
	Top    *float64 `yaml:"top,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`
}

// FontConfig holds font sizes in points.
type FontConfig struct {
	Body *float64 `yaml:"body,omitempty"`
	H1   *float64 `yaml:"h1,omitempty"`
	H2   *float64 `yaml:"h2,omitempty"`
}

// LayoutConfig holds spacing and section options.
type LayoutConfig struct {
	LineHeight   *float64 `yaml:"lineHeight,omitempty"`
	ListIndent   *float64 `yaml:"listIndent,omitempty"`
	BlankSpacing *float64 `yaml:"blankSpacing,omitempty"`
	ColonLabels  bool     `yaml:"colonLabels"`
}

// Validate checks path lengths and the resulting layout bounds.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"template", c.Template},
		{"input.defaultPath", c.Input.DefaultPath},
		{"output.defaultDir", c.Output.DefaultDir},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	return c.LayoutSettings().Validate()
}

// LayoutSettings overlays the configured values on the library defaults.
func (c *Config) LayoutSettings() *mom2pdf.LayoutSettings {
	s := mom2pdf.DefaultLayoutSettings()
	overlay(&s.Margins.Left, c.Margins.Left)
	overlay(&s.Margins.Right, c.Margins.Right)
	overlay(&s.Margins.Top, c.Margins.Top)
	overlay(&s.Margins.Bottom, c.Margins.Bottom)
	overlay(&s.Fonts.Body, c.Fonts.Body)
	overlay(&s.Fonts.H1, c.Fonts.H1)
	overlay(&s.Fonts.H2, c.Fonts.H2)
	overlay(&s.LineHeight, c.Layout.LineHeight)
	overlay(&s.ListIndent, c.Layout.ListIndent)
	overlay(&s.BlankSpacing, c.Layout.BlankSpacing)
	return s
}

func overlay(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that defers every value to the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NotFoundError lists the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// Dir returns the per-user directory searched for config files by name.
func Dir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir), nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mom2pdf/
func resolveConfigPath(name string) (string, error) {
	candidates := []string{name + ".yaml", name + ".yml"}

	path, tried := fileutil.FirstExisting("", candidates)
	if path != "" {
		return path, nil
	}

	if dir, err := Dir(); err == nil {
		var more []string
		path, more = fileutil.FirstExisting(dir, candidates)
		if path != "" {
			return path, nil
		}
		tried = append(tried, more...)
	}

	return "", &NotFoundError{Name: name, Tried: tried}
}
