package fileutil_test

// Notes:
// - EnsureParentDir permission failures are platform-specific and not covered.

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/alnah/go-mom2pdf/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "content.txt")
	if err := os.WriteFile(testFile, []byte("# Minutes"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "archive")
	if err := os.Mkdir(testDir, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file returns true", testFile, true},
		{"directory returns false", testDir, false},
		{"nonexistent path returns false", filepath.Join(tempDir, "nonexistent"), false},
		{"empty path returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "minutes", false},
		{"relative path", "./minutes.yaml", true},
		{"parent path", "../shared/minutes.yaml", true},
		{"absolute path", "/etc/mom2pdf/minutes.yaml", true},
		{"windows path", "C:\\configs\\minutes.yaml", true},
		{"hyphenated name", "board-meeting", false},
		{"name with dots", "minutes.v2", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFirstExisting - Candidate discovery
// ---------------------------------------------------------------------------

func TestFirstExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"template.pdf", "CSI Template.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name       string
		candidates []string
		wantPath   string
		wantTried  []string
	}{
		{
			name:       "first candidate missing",
			candidates: []string{"Template.pdf", "template.pdf", "CSI Template.pdf"},
			wantPath:   "template.pdf",
			wantTried:  []string{"Template.pdf"},
		},
		{
			name:       "first candidate present",
			candidates: []string{"CSI Template.pdf", "template.pdf"},
			wantPath:   "CSI Template.pdf",
			wantTried:  []string{},
		},
		{
			name:       "none present",
			candidates: []string{"a.pdf", "b.pdf"},
			wantPath:   "",
			wantTried:  []string{"a.pdf", "b.pdf"},
		},
		{
			name:       "no candidates",
			candidates: nil,
			wantPath:   "",
			wantTried:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, tried := fileutil.FirstExisting(dir, tt.candidates)

			wantPath := ""
			if tt.wantPath != "" {
				wantPath = filepath.Join(dir, tt.wantPath)
			}
			if path != wantPath {
				t.Errorf("path = %q, want %q", path, wantPath)
			}

			wantTried := make([]string, 0, len(tt.wantTried))
			for _, name := range tt.wantTried {
				wantTried = append(wantTried, filepath.Join(dir, name))
			}
			if !slices.Equal(tried, wantTried) {
				t.Errorf("tried = %v, want %v", tried, wantTried)
			}
		})
	}
}

func TestFirstExisting_EmptyDir(t *testing.T) {
	t.Parallel()

	path, tried := fileutil.FirstExisting("", []string{"does-not-exist.pdf"})
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if len(tried) != 1 || tried[0] != "does-not-exist.pdf" {
		t.Errorf("tried = %v, want bare candidate name", tried)
	}
}

// ---------------------------------------------------------------------------
// TestHasExtension - Extension matching
// ---------------------------------------------------------------------------

func TestHasExtension(t *testing.T) {
	t.Parallel()

	exts := []string{".txt", ".md", ".markdown"}
	tests := []struct {
		path string
		want bool
	}{
		{"content.txt", true},
		{"notes/CONTENT.TXT", true},
		{"minutes.Markdown", true},
		{"minutes.pdf", false},
		{"README", false},
		{"archive.txt.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.HasExtension(tt.path, exts...); got != tt.want {
				t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, ext, want string
	}{
		{"content.txt", ".pdf", "content.pdf"},
		{"dir/minutes.md", ".pdf", "dir/minutes.pdf"},
		{"README", ".pdf", "README.pdf"},
	}

	for _, tt := range tests {
		if got := fileutil.ReplaceExtension(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestEnsureParentDir - Output directory creation
// ---------------------------------------------------------------------------

func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "out", "2026", "minutes.pdf")

	if err := fileutil.EnsureParentDir(target); err != nil {
		t.Fatalf("EnsureParentDir() unexpected error: %v", err)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil || !info.IsDir() {
		t.Errorf("parent directory not created: %v", err)
	}

	if err := fileutil.EnsureParentDir("minutes.pdf"); err != nil {
		t.Errorf("EnsureParentDir() on bare name error: %v", err)
	}
}
