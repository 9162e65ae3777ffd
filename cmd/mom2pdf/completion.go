package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // glob for file arguments, empty if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	FileGlob string // file glob pattern
	IsDir    bool   // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":   {FileGlob: "*.yaml,*.yml"},
	"template": {FileGlob: "*.pdf"},
	"output":   {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		case "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet.
func getCommands() []commandDef {
	fs, _, _ := buildConvertFlagSet()
	doctorFS, _ := buildDoctorFlagSet()

	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Lay out meeting minutes onto a letterhead PDF",
			Flags:       extractFlagsFromFlagSet(fs),
			FilePattern: "*.txt,*.md,*.markdown",
		},
		{
			Name:  "doctor",
			Desc:  "Check template, config and output setup",
			Flags: extractFlagsFromFlagSet(doctorFS),
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func commandNames(cmds []commandDef) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// globs splits "*.a,*.b" into its patterns.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for mom2pdf\n")
	b.WriteString("_mom2pdf() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		switch c.Name {
		case "help":
			fmt.Fprintf(&b, "    help)\n        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n        ;;\n", commandNames(cmds))
		case "completion":
			b.WriteString("    completion)\n        COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"$cur\"))\n        ;;\n")
		}
		if len(c.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        case \"$prev\" in\n")
		for _, f := range c.Flags {
			names := "--" + f.Long
			if f.Short != "" {
				names += "|-" + f.Short
			}
			switch f.Type {
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -- \"$cur\"))\n            return\n            ;;\n", names)
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -d -- \"$cur\"))\n            return\n            ;;\n", names)
			}
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flagWords(c.Flags))
		b.WriteString("        else\n            COMPREPLY=($(compgen -f -- \"$cur\"))\n        fi\n        ;;\n")
	}

	b.WriteString("    esac\n}\n")
	b.WriteString("complete -o filenames -F _mom2pdf mom2pdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef mom2pdf\n\n")
	b.WriteString("_mom2pdf() {\n")
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n        _describe 'command' commands\n        return\n    fi\n\n")
	b.WriteString("    case \"$words[2]\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n        _arguments \\\n", c.Name)
		var specs []string
		for _, f := range c.Flags {
			action := ""
			switch f.Type {
			case flagFile:
				action = ":file:_files -g \"" + zshGlob(f.FileGlob) + "\""
			case flagDir:
				action = ":directory:_files -/"
			case flagString, flagInt, flagFloat:
				action = ":value:"
			}
			desc := zshEscape(f.Desc)
			if f.Short != "" {
				specs = append(specs, fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action))
			} else {
				specs = append(specs, fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action))
			}
		}
		if c.FilePattern != "" {
			specs = append(specs, fmt.Sprintf("'*:input:_files -g \"%s\"'", zshGlob(c.FilePattern)))
		}
		fmt.Fprintf(&b, "            %s\n        ;;\n", strings.Join(specs, " \\\n            "))
	}

	b.WriteString("    completion)\n        _values 'shell' bash zsh fish powershell\n        ;;\n")
	b.WriteString("    help)\n        _describe 'command' commands\n        ;;\n")
	b.WriteString("    esac\n}\n\n")
	b.WriteString("compdef _mom2pdf mom2pdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshGlob joins comma-separated patterns into one zsh alternation.
func zshGlob(pattern string) string {
	g := globs(pattern)
	if len(g) == 1 {
		return g[0]
	}
	return "(" + strings.Join(g, "|") + ")"
}

// zshEscape escapes characters that break _arguments specs.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for mom2pdf\n")
	fmt.Fprintf(&b, "set -l commands %s\n", commandNames(cmds))
	b.WriteString("complete -c mom2pdf -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c mom2pdf -n \"not __fish_seen_subcommand_from $commands\" -a %s -d %q\n", c.Name, c.Desc)
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c mom2pdf -n %q -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -r -a \"(__fish_complete_directories)\""
			case flagString, flagInt, flagFloat:
				line += " -r"
			}
			line += fmt.Sprintf(" -d %q\n", f.Desc)
			b.WriteString(line)
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c mom2pdf -n %q -F\n", cond)
		}
	}

	b.WriteString("complete -c mom2pdf -n \"__fish_seen_subcommand_from completion\" -a \"bash zsh fish powershell\"\n")
	b.WriteString("complete -c mom2pdf -n \"__fish_seen_subcommand_from help\" -a \"$commands\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# PowerShell completion for mom2pdf\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName mom2pdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	b.WriteString("    $words = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $commands = @(")
	for i, c := range cmds {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s'", c.Name)
	}
	b.WriteString(")\n")
	b.WriteString("    if ($words.Count -le 2) {\n")
	b.WriteString("        $commands | Where-Object { $_ -like \"$wordToComplete*\" } |\n")
	b.WriteString("            ForEach-Object { [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_) }\n")
	b.WriteString("        return\n    }\n")
	b.WriteString("    $flags = switch ($words[1]) {\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        '%s' { @(", c.Name)
		for i, f := range c.Flags {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "'--%s'", f.Long)
		}
		b.WriteString(") }\n")
	}
	b.WriteString("        'completion' { @('bash', 'zsh', 'fish', 'powershell') }\n")
	b.WriteString("        default { @() }\n    }\n")
	b.WriteString("    $flags | Where-Object { $_ -like \"$wordToComplete*\" } |\n")
	b.WriteString("        ForEach-Object { [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_) }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mom2pdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:   eval \"$(mom2pdf completion bash)\" in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:    eval \"$(mom2pdf completion zsh)\" in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:   mom2pdf completion fish > ~/.config/fish/completions/mom2pdf.fish")
	fmt.Fprintln(w, "  PowerShell: mom2pdf completion powershell | Out-String | Invoke-Expression")
}
