package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// marginFlags holds margin overrides in points.
// A nil field means the flag was not given.
type marginFlags struct {
	left, right, top, bottom *float64
}

// fontFlags holds font size overrides in points.
type fontFlags struct {
	body, h1, h2 *float64
}

// layoutFlags holds spacing and section overrides.
type layoutFlags struct {
	lineHeight  *float64
	colonLabels bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	template string
	output   string
	workers  int
	debug    bool
	margins  marginFlags
	fonts    fontFlags
	layout   layoutFlags
}

// float64Flags registers float flags whose presence must be distinguishable
// from zero, e.g. "--left 0".
type float64Flags struct {
	values  map[string]*float64
	targets map[string]**float64
}

func newFloat64Flags() *float64Flags {
	return &float64Flags{
		values:  make(map[string]*float64),
		targets: make(map[string]**float64),
	}
}

func (f *float64Flags) add(fs *flag.FlagSet, name string, target **float64, usage string) {
	v := new(float64)
	fs.Float64Var(v, name, 0, usage)
	f.values[name] = v
	f.targets[name] = target
}

// bind sets the target of every flag the user actually passed.
func (f *float64Flags) bind(fs *flag.FlagSet) {
	for name, v := range f.values {
		if fs.Changed(name) {
			*f.targets[name] = v
		}
	}
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and debug logs")
}

// addMarginFlags adds margin flags to a FlagSet.
func addMarginFlags(fs *flag.FlagSet, floats *float64Flags, f *marginFlags) {
	floats.add(fs, "left", &f.left, "left margin in points (default 50)")
	floats.add(fs, "right", &f.right, "right margin in points (default 50)")
	floats.add(fs, "top", &f.top, "top margin in points (default 120)")
	floats.add(fs, "bottom", &f.bottom, "bottom margin in points (default 100)")
}

// addFontFlags adds font size flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, floats *float64Flags, f *fontFlags) {
	floats.add(fs, "font-size", &f.body, "body font size in points (default 12)")
	floats.add(fs, "h1-size", &f.h1, "heading 1 font size in points (default 16)")
	floats.add(fs, "h2-size", &f.h2, "heading 2 font size in points (default 14)")
}

// addLayoutFlags adds spacing and section flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, floats *float64Flags, f *layoutFlags) {
	floats.add(fs, "line-height", &f.lineHeight, "line height factor (default 1.25)")
	fs.BoolVar(&f.colonLabels, "colon-labels", false, "treat \"Label:\" lines before lists as section headings")
}

// buildConvertFlagSet registers every convert flag on a new FlagSet.
// Shared by parsing and shell completion.
func buildConvertFlagSet() (*flag.FlagSet, *convertFlags, *float64Flags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}
	floats := newFloat64Flags()

	// I/O flags
	fs.StringVarP(&f.template, "template", "t", "", "letterhead PDF used as page background")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.debug, "debug", false, "log parsed blocks, sections and page text")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addMarginFlags(fs, floats, &f.margins)
	addFontFlags(fs, floats, &f.fonts)
	addLayoutFlags(fs, floats, &f.layout)

	return fs, f, floats
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs, f, floats := buildConvertFlagSet()
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	floats.bind(fs)

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command. Template, config and output
// are checked exactly as convert would resolve them.
type doctorFlags struct {
	config   string
	template string
	output   string
	json     bool
}

// buildDoctorFlagSet registers every doctor flag on a new FlagSet.
func buildDoctorFlagSet() (*flag.FlagSet, *doctorFlags) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	f := &doctorFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.template, "template", "t", "", "letterhead PDF to check")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory to check")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")

	return fs, f
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, usage io.Writer) (*doctorFlags, error) {
	fs, f := buildDoctorFlagSet()
	fs.SetOutput(usage)
	fs.Usage = func() { printDoctorUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
