package hints

// Notes:
// - ForConfigNotFound tests swap the package-level IsInContainer variable
//   and therefore do not run in parallel.

import (
	"strings"
	"testing"
)

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tried    []string
		contains []string
		excludes string
	}{
		{
			name:     "no candidates",
			tried:    nil,
			contains: []string{"--template", "MOM2PDF_TEMPLATE"},
			excludes: "looked for",
		},
		{
			name:     "candidates shown by base name",
			tried:    []string{"/work/Template.pdf", "/work/CSI Template.pdf"},
			contains: []string{"looked for Template.pdf, CSI Template.pdf"},
			excludes: "/work/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForTemplateNotFound(tt.tried)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint missing %q: %q", want, hint)
				}
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("hint should not contain %q: %q", tt.excludes, hint)
			}
		})
	}
}

func TestForMeasurement(t *testing.T) {
	t.Parallel()

	hint := ForMeasurement()
	if !strings.Contains(hint, "Windows-1252") {
		t.Errorf("expected encoding mention, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()

	tests := []struct {
		name      string
		paths     []string
		container bool
		contains  []string
		excludes  string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: []string{"--config"},
			excludes: "create",
		},
		{
			name:     "suggests user config path",
			paths:    []string{"minutes.yaml", "/home/a/.config/go-mom2pdf/minutes.yaml"},
			contains: []string{"or create /home/a/.config/go-mom2pdf/minutes.yaml"},
		},
		{
			name:      "container adds mount hint",
			paths:     []string{"minutes.yaml"},
			container: true,
			contains:  []string{"--config", "mount a config file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			IsInContainer = func() bool { return tt.container }

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint missing %q: %q", want, hint)
				}
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("hint should not contain %q: %q", tt.excludes, hint)
			}
		})
	}
}

func TestForMargins(t *testing.T) {
	t.Parallel()

	hint := ForMargins(595.28, 841.89)
	if !strings.Contains(hint, "595.28x841.89pt") {
		t.Errorf("expected page size in hint, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForTemplateNotFound(nil),
		ForMeasurement(),
		ForOutputDirectory(),
		ForMargins(612, 792),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}

	if format("") != "" || formatHints(nil) != "" {
		t.Error("empty hints should format as empty string")
	}
}
