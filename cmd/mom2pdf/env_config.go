package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mom2pdf/internal/config"
)

// envPrefix namespaces every variable this tool reads.
const envPrefix = "MOM2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MOM2PDF_CONFIG: config file name or path
	Template   string // MOM2PDF_TEMPLATE: letterhead PDF
	OutputDir  string // MOM2PDF_OUTPUT_DIR: default output directory
	Workers    int    // MOM2PDF_WORKERS: parallel workers
	Debug      bool   // MOM2PDF_DEBUG: enable debug trace
}

// knownEnvVars lists valid MOM2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MOM2PDF_CONFIG":     true,
	"MOM2PDF_TEMPLATE":   true,
	"MOM2PDF_OUTPUT_DIR": true,
	"MOM2PDF_WORKERS":    true,
	"MOM2PDF_DEBUG":      true,
	"MOM2PDF_CONTAINER":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MOM2PDF_CONFIG"),
		Template:   getenv("MOM2PDF_TEMPLATE"),
		OutputDir:  getenv("MOM2PDF_OUTPUT_DIR"),
	}

	if workers := getenv("MOM2PDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if debug := getenv("MOM2PDF_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = b
		}
	}

	return cfg
}

// unknownEnvVars returns unrecognized MOM2PDF_* variable names in environ order.
// Helps catch typos like MOM2PDF_TEMPLATES instead of MOM2PDF_TEMPLATE.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars logs warnings for unrecognized MOM2PDF_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, name := range unknownEnvVars(environ) {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Environment values override the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Debug {
		cfg.Debug = true
	}
}
