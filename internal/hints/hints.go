// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-mom2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Container images often ship without a user config directory.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForTemplateNotFound returns hints when no letterhead PDF could be located.
func ForTemplateNotFound(tried []string) string {
	hint := "use --template /path/to/letterhead.pdf or set MOM2PDF_TEMPLATE"
	if len(tried) > 0 {
		names := make([]string, 0, len(tried))
		for _, p := range tried {
			names = append(names, filepath.Base(p))
		}
		hint += "; looked for " + strings.Join(names, ", ")
	}
	return format(hint)
}

// ForMeasurement returns a hint for text the built-in Times font cannot encode.
func ForMeasurement() string {
	return format("only Windows-1252 characters are supported; replace emoji and non-Latin scripts")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mom2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	var hints []string
	hints = append(hints, "use --config /path/to/file.yaml")

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-mom2pdf") {
			hints[0] += " or create " + p
			break
		}
	}

	if IsInContainer() {
		hints = append(hints, "mount a config file into the container")
	}

	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMargins returns a hint when margins leave no room for text.
func ForMargins(pageWidth, pageHeight float64) string {
	return format("margins must leave a printable area inside the " +
		points(pageWidth) + "x" + points(pageHeight) + "pt template page")
}

func points(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
