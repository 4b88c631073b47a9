package fileutil_test

// Notes:
// - The Write and Close error branches of WriteAtomic are not tested because
//   triggering disk write failures is platform-specific.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-xhtmlpage/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteAtomic - Page writes
// ---------------------------------------------------------------------------

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "OEBPS", "Text", "chapter1.xhtml")

	if err := fileutil.WriteAtomic(path, []byte("first"), 0o644, 0o750); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if err := fileutil.WriteAtomic(path, []byte("second"), 0o644, 0o750); err != nil {
		t.Fatalf("WriteAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the page (temp files left behind)", len(entries))
	}
}

func TestWriteAtomic_Errors(t *testing.T) {
	t.Parallel()

	if err := fileutil.WriteAtomic("", nil, 0o644, 0o750); !errors.Is(err, fileutil.ErrEmptyPath) {
		t.Errorf("WriteAtomic(\"\") error = %v, want %v", err, fileutil.ErrEmptyPath)
	}

	// A regular file where a directory is expected.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := fileutil.WriteAtomic(filepath.Join(blocker, "page.xhtml"), []byte("x"), 0o644, 0o750); err == nil {
		t.Error("WriteAtomic() should fail when the parent is a file")
	}
}

// ---------------------------------------------------------------------------
// TestJoinContained - Output path containment
// ---------------------------------------------------------------------------

func TestJoinContained(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "out")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"nested", "OEBPS/Text/a.xhtml", filepath.Join(root, "OEBPS", "Text", "a.xhtml"), nil},
		{"cleaned", "OEBPS/../OEBPS/a.xhtml", filepath.Join(root, "OEBPS", "a.xhtml"), nil},
		{"escape", "../a.xhtml", "", fileutil.ErrPathTraversal},
		{"empty", "", "", fileutil.ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.JoinContained(root, tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("JoinContained() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("JoinContained() = %q, want %q", got, tt.want)
			}
		})
	}
}
