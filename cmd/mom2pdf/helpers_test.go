package main

// Notes:
// - Shared fixtures for CLI tests: an in-memory letterhead PDF and an
//   Environment backed by buffers and a fake process environment.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
)

// letterhead renders a one-page A4 template.
func letterhead(t *testing.T) []byte {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(50, 60, "ACME Corp")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("building letterhead: %v", err)
	}
	return buf.Bytes()
}

// writeTemplate writes the letterhead to dir/name and returns its path.
func writeTemplate(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, letterhead(t), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeText writes content to dir/name, creating parents, and returns its path.
func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// testEnv returns an Environment writing to buffers with the given variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			list := make([]string, 0, len(vars))
			for k, v := range vars {
				list = append(list, k+"="+v)
			}
			return list
		},
	}
	return env, &stdout, &stderr
}

func assertContains(t *testing.T, label, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("%s should contain %q, got %q", label, w, got)
		}
	}
}

const minutes = `# Weekly Sync
Date: 2026-01-01
## Attendees
1. Alice
2. Bob
## Action Items
- Alice to send the budget
- Bob to book the room
`
