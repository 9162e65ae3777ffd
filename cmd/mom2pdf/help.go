package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mom2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert      Lay out meeting minutes onto a letterhead PDF")
	fmt.Fprintln(w, "  doctor       Check template, config and output setup")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mom2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mom2pdf convert [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Lay out plain-text minutes onto every page of a template PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .txt, .md or .markdown files or directories")
	fmt.Fprintln(w, "           (default: input.defaultPath, then content.txt, content.md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --template <path>     Letterhead PDF (default: Template.pdf, template.pdf,")
	fmt.Fprintln(w, "                            CSI Template.pdf in the working directory)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (single input) or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Margins (points):")
	fmt.Fprintln(w, "      --left <f>            Left margin (default 50)")
	fmt.Fprintln(w, "      --right <f>           Right margin (default 50)")
	fmt.Fprintln(w, "      --top <f>             Top margin, below the letterhead (default 120)")
	fmt.Fprintln(w, "      --bottom <f>          Bottom margin, above the footer (default 100)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Typography:")
	fmt.Fprintln(w, "      --font-size <f>       Body font size (default 12)")
	fmt.Fprintln(w, "      --h1-size <f>         Heading 1 font size (default 16)")
	fmt.Fprintln(w, "      --h2-size <f>         Heading 2 font size (default 14)")
	fmt.Fprintln(w, "      --line-height <f>     Line height factor (default 1.25)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sections:")
	fmt.Fprintln(w, "      --colon-labels        Treat \"Attendees:\" style lines before lists")
	fmt.Fprintln(w, "                            as section headings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --debug               Log blocks, sections and extracted page text")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MOM2PDF_CONFIG, MOM2PDF_TEMPLATE, MOM2PDF_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MOM2PDF_WORKERS, MOM2PDF_DEBUG")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mom2pdf doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a conversion would find a valid template, load its config")
	fmt.Fprintln(w, "and write its output. Exits 1 when a check fails.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --template <path>     Letterhead PDF to check (default: candidate search)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory to check")
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MOM2PDF_CONTAINER=1       Report a container even without /.dockerenv")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mom2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mom2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
