package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mom2pdf"
	"github.com/alnah/go-mom2pdf/internal/config"
	"github.com/alnah/go-mom2pdf/internal/fileutil"
	"github.com/alnah/go-mom2pdf/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"`
	Template templateInfo `json:"template"`
	Config   configInfo   `json:"config"`
	Output   outputInfo   `json:"output"`
	Env      envInfo      `json:"environment"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// templateInfo holds letterhead discovery and validation results.
type templateInfo struct {
	Found      bool     `json:"found"`
	Path       string   `json:"path,omitempty"`
	Tried      []string `json:"tried,omitempty"`
	Valid      bool     `json:"valid"`
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Pages      int      `json:"pages,omitempty"`
	MarginsFit bool     `json:"margins_fit"`
}

// configInfo holds config file results.
type configInfo struct {
	Name      string `json:"name,omitempty"`
	Loaded    bool   `json:"loaded"`
	Dir       string `json:"dir,omitempty"`
	DirExists bool   `json:"dir_exists"`
}

// outputInfo holds output directory results.
type outputInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string   `json:"os"`
	Arch          string   `json:"arch"`
	Container     bool     `json:"container"`
	ContainerHint string   `json:"container_hint,omitempty"`
	CI            bool     `json:"ci"`
	GOMAXPROCS    int      `json:"gomaxprocs"`
	Workers       int      `json:"workers"`
	UnknownVars   []string `json:"unknown_vars,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	result := runDoctor(flags, env, "")

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs every check. dir is where default templates and the
// default output directory are looked up; empty means the working directory.
func runDoctor(flags *doctorFlags, env *Environment, dir string) *doctorResult {
	result := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GOMAXPROCS: runtime.GOMAXPROCS(0),
		},
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg := checkConfig(result, flags.config, envCfg)

	applyEnvConfig(envCfg, cfg)
	if flags.template != "" {
		cfg.Template = flags.template
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}

	checkTemplate(result, cfg, dir)
	checkOutput(result, cfg.Output.DefaultDir, dir)
	checkEnvironment(result, env, envCfg)

	switch {
	case len(result.Errors) > 0:
		result.Status = statusErrors
	case len(result.Warnings) > 0:
		result.Status = statusWarnings
	default:
		result.Status = statusReady
	}
	return result
}

// checkConfig loads the named config and reports the per-user config directory.
// Returns defaults when the config cannot be used so later checks still run.
func checkConfig(result *doctorResult, flagValue string, envCfg *envConfig) *config.Config {
	result.Config.Name = flagValue
	if result.Config.Name == "" {
		result.Config.Name = envCfg.ConfigPath
	}

	if dir, err := config.Dir(); err == nil {
		result.Config.Dir = dir
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			result.Config.DirExists = true
		}
	}

	cfg, err := loadConfig(flagValue, envCfg.ConfigPath)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return config.DefaultConfig()
	}
	result.Config.Loaded = result.Config.Name != ""
	return cfg
}

// checkTemplate finds, parses and measures the letterhead.
func checkTemplate(result *doctorResult, cfg *config.Config, dir string) {
	path, tried, err := resolveTemplatePath(cfg.Template, dir)
	result.Template.Tried = tried
	if err != nil {
		names := make([]string, 0, len(tried))
		for _, p := range tried {
			names = append(names, filepath.Base(p))
		}
		result.Errors = append(result.Errors,
			fmt.Sprintf("Template not found (looked for %s). Use --template or set MOM2PDF_TEMPLATE", strings.Join(names, ", ")))
		return
	}
	result.Template.Path = path

	if !fileutil.FileExists(path) {
		result.Errors = append(result.Errors, fmt.Sprintf("Template not found at %s", path))
		return
	}
	result.Template.Found = true

	tpl, err := mom2pdf.LoadTemplateFile(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.Template.Valid = true
	result.Template.Width = tpl.Width()
	result.Template.Height = tpl.Height()
	result.Template.Pages = tpl.PageCount()
	if tpl.PageCount() > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Template has %d pages; only page 1 is used as background", tpl.PageCount()))
	}

	if err := cfg.LayoutSettings().CheckPage(tpl.Width(), tpl.Height()); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.Template.MarginsFit = true
}

// checkOutput verifies the output directory exists and accepts new files.
// A missing directory is only a warning: convert creates it.
func checkOutput(result *doctorResult, output, dir string) {
	target := output
	if isPDFPath(target) {
		target = filepath.Dir(target)
	}
	if target == "" {
		target = dir
	}
	if target == "" {
		target = "."
	}
	result.Output.Dir = target

	info, err := os.Stat(target)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output directory %s does not exist; it will be created", target))
		return
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory %s: %v", target, err))
		return
	case !info.IsDir():
		result.Errors = append(result.Errors, fmt.Sprintf("Output path %s is not a directory", target))
		return
	}
	result.Output.Exists = true

	f, err := os.CreateTemp(target, ".mom2pdf-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", target))
		return
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	result.Output.Writable = true
}

// checkEnvironment detects containers, CI and mistyped variables.
func checkEnvironment(result *doctorResult, env *Environment, envCfg *envConfig) {
	result.Env.Container, result.Env.ContainerHint = detectContainer(env.Getenv)
	result.Env.Workers = mom2pdf.ResolvePoolSize(resolveWorkers(0, envCfg.Workers))

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	result.Env.UnknownVars = unknownEnvVars(env.Environ())
	for _, name := range result.Env.UnknownVars {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown environment variable %s (typo?)", name))
	}

	if result.Env.Container && result.Config.Name == "" && !result.Config.DirExists {
		result.Warnings = append(result.Warnings,
			"Container detected without a config directory. Mount a config file or use MOM2PDF_* variables")
	}
}

// detectContainer reports whether the process runs in a container and which
// signal gave it away. The explicit override wins.
func detectContainer(getenv func(string) string) (bool, string) {
	if getenv("MOM2PDF_CONTAINER") == "1" {
		return true, "MOM2PDF_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "mom2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Template")
	switch {
	case r.Template.Valid:
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Template.Path)
		fmt.Fprintf(w, "  [OK] Page size: %.2fx%.2fpt, %d page(s)\n", r.Template.Width, r.Template.Height, r.Template.Pages)
		if r.Template.MarginsFit {
			fmt.Fprintln(w, "  [OK] Margins fit the page")
		} else {
			fmt.Fprintln(w, "  [ERROR] Margins leave no printable area")
		}
	case r.Template.Found:
		fmt.Fprintf(w, "  [ERROR] Invalid PDF: %s\n", r.Template.Path)
	default:
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration")
	if r.Config.Loaded {
		fmt.Fprintf(w, "  [OK] Loaded %s\n", r.Config.Name)
	} else if r.Config.Name == "" {
		fmt.Fprintln(w, "  [OK] No config file (defaults)")
	}
	if r.Config.Dir != "" {
		state := "missing"
		if r.Config.DirExists {
			state = "present"
		}
		fmt.Fprintf(w, "  [OK] Config directory: %s (%s)\n", r.Config.Dir, state)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	switch {
	case r.Output.Writable:
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Dir)
	case !r.Output.Exists:
		fmt.Fprintf(w, "  [WARN] %s: will be created\n", r.Output.Dir)
	default:
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] Workers: %d (GOMAXPROCS %d)\n", r.Env.Workers, r.Env.GOMAXPROCS)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
