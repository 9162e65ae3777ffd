package main

// Notes:
// - runMain: we test exit codes and messages for each command. Conversions
//   that need files use temp dirs and explicit paths, never the working directory.
// - configureMaxProcs is not tested: it mutates process-wide GOMAXPROCS.

import (
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"mom2pdf"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: mom2pdf"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"mom2pdf", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mom2pdf dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"mom2pdf", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mom2pdf", "Commands:"},
		},
		{
			name:         "help convert shows convert help",
			args:         []string{"mom2pdf", "help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mom2pdf convert", "--template", "MOM2PDF_TEMPLATE"},
		},
		{
			name:         "help doctor shows doctor help",
			args:         []string{"mom2pdf", "help", "doctor"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mom2pdf doctor", "--json"},
		},
		{
			name:         "doctor -h prints usage",
			args:         []string{"mom2pdf", "doctor", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: mom2pdf doctor"},
		},
		{
			name:         "help unknown command",
			args:         []string{"mom2pdf", "help", "bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: bogus"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"mom2pdf", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "convert -h prints usage",
			args:         []string{"mom2pdf", "convert", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: mom2pdf convert"},
		},
		{
			name:     "convert with bad flag",
			args:     []string{"mom2pdf", "convert", "--no-such-flag"},
			wantCode: ExitUsage,
		},
		{
			name:         "completion usage",
			args:         []string{"mom2pdf", "completion"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mom2pdf completion"},
		},
		{
			name:         "unsupported shell",
			args:         []string{"mom2pdf", "completion", "tcsh"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			assertContains(t, "stdout", stdout.String(), tt.wantInStdout...)
			assertContains(t, "stderr", stderr.String(), tt.wantInStderr...)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_ExitCodes - Semantic exit codes for conversion failures
// ---------------------------------------------------------------------------

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tpl := writeTemplate(t, dir, "Template.pdf")
	good := writeText(t, dir, "content.txt", minutes)
	emoji := writeText(t, dir, "emoji.txt", "# Party \U0001F389")
	empty := writeText(t, dir, "empty.txt", "")
	notPDF := writeText(t, dir, "broken.pdf", "not a pdf")
	wrongExt := writeText(t, dir, "notes.docx", "x")

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStderr []string
	}{
		{
			name:     "success",
			args:     []string{"mom2pdf", "convert", "-t", tpl, "-o", filepath.Join(dir, "out", "ok.pdf"), good},
			wantCode: ExitSuccess,
		},
		{
			name:         "missing template file",
			args:         []string{"mom2pdf", "convert", "-t", filepath.Join(dir, "missing.pdf"), good},
			wantCode:     ExitTemplate,
			wantInStderr: []string{"hint:"},
		},
		{
			name:     "invalid template file",
			args:     []string{"mom2pdf", "convert", "-t", notPDF, good},
			wantCode: ExitTemplate,
		},
		{
			name:         "unencodable text",
			args:         []string{"mom2pdf", "convert", "-t", tpl, "-o", filepath.Join(dir, "out", "emoji.pdf"), emoji},
			wantCode:     ExitContent,
			wantInStderr: []string{"Windows-1252"},
		},
		{
			name:     "empty document",
			args:     []string{"mom2pdf", "convert", "-t", tpl, "-o", filepath.Join(dir, "out", "empty.pdf"), empty},
			wantCode: ExitUsage,
		},
		{
			name:     "nonexistent input",
			args:     []string{"mom2pdf", "convert", "-t", tpl, filepath.Join(dir, "nope.txt")},
			wantCode: ExitIO,
		},
		{
			name:     "wrong extension",
			args:     []string{"mom2pdf", "convert", "-t", tpl, wrongExt},
			wantCode: ExitUsage,
		},
		{
			name:         "margins consume the page",
			args:         []string{"mom2pdf", "convert", "-t", tpl, "--left", "400", "--right", "400", good},
			wantCode:     ExitUsage,
			wantInStderr: []string{"hint:", "595.28x841.89pt"},
		},
		{
			name:     "font size out of range",
			args:     []string{"mom2pdf", "convert", "-t", tpl, "--font-size", "200", good},
			wantCode: ExitUsage,
		},
		{
			name:     "too many workers",
			args:     []string{"mom2pdf", "convert", "-t", tpl, "-w", "99", good},
			wantCode: ExitUsage,
		},
		{
			name:     "missing named config",
			args:     []string{"mom2pdf", "convert", "-c", filepath.Join(dir, "missing.yaml"), good},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args[2:], code, tt.wantCode, stderr.String())
			}
			assertContains(t, "stderr", stderr.String(), tt.wantInStderr...)
		})
	}
}
