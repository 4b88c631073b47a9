package main

// Notes:
// - runMain: exit codes for usage, I/O and content errors, and a full render.
// - maxprocs output only shows with --verbose; it is not asserted because it
//   depends on the container the tests run in.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeTestFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestRunMain - Exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeTestFile(t, filepath.Join(dir, "good.yaml"), "title: Good\nfileName: good.xhtml\n")
	invalid := writeTestFile(t, filepath.Join(dir, "invalid.yaml"), "title: no file name\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version",
			args:       []string{"--version"},
			wantCode:   ExitSuccess,
			wantStdout: "xhtmlpage dev",
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantCode: ExitSuccess,
		},
		{
			name:       "no input",
			args:       nil,
			wantCode:   ExitUsage,
			wantStderr: ErrNoInput.Error(),
		},
		{
			name:       "unknown flag",
			args:       []string{"--nope", good},
			wantCode:   ExitUsage,
			wantStderr: "unknown flag",
		},
		{
			name:       "missing page file",
			args:       []string{"-q", "--out", t.TempDir(), filepath.Join(dir, "missing.yaml")},
			wantCode:   ExitIO,
			wantStderr: "missing.yaml",
		},
		{
			name:       "invalid page file",
			args:       []string{"-q", "--out", t.TempDir(), invalid},
			wantCode:   ExitUsage,
			wantStderr: "FileName",
		},
		{
			name:       "missing assets directory",
			args:       []string{"--assets", filepath.Join(dir, "nope"), good},
			wantCode:   ExitGeneral,
			wantStderr: "loading styles",
		},
		{
			name:       "success",
			args:       []string{"--out", t.TempDir(), "--workers", "2", good},
			wantCode:   ExitSuccess,
			wantStderr: "page written",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := runMain(context.Background(), tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_WritesPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "ch1.md"), "# One\n\nFirst chapter.\n")
	writeTestFile(t, filepath.Join(dir, "css", "main.css"), "p { margin: 0 }\n")
	ch1 := writeTestFile(t, filepath.Join(dir, "ch1.yaml"), `title: Chapter 1
fileName: chapter1.xhtml
location: OEBPS/Text
body: ch1.md
styles:
  - path: OEBPS/Styles/main.css
    file: css/main.css
`)
	ch2 := writeTestFile(t, filepath.Join(dir, "ch2.yaml"), `title: Chapter 2
fileName: chapter2.xhtml
location: OEBPS/Text
compatibility: xhtml11
styles:
  - path: OEBPS/Styles/default.css
    asset: default
`)

	var stdout, stderr bytes.Buffer
	code := runMain(context.Background(), []string{"-q", "--embed-styles", "--out", out, ch1, ch2}, &stdout, &stderr)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}

	page1, err := os.ReadFile(filepath.Join(out, "OEBPS", "Text", "chapter1.xhtml"))
	if err != nil {
		t.Fatalf("reading chapter1: %v", err)
	}
	for _, want := range []string{"<title>Chapter 1</title>", `<h1 id="one">One</h1>`, "p { margin: 0 }", `<meta charset="utf-8"/>`} {
		if !strings.Contains(string(page1), want) {
			t.Errorf("chapter1 missing %q:\n%s", want, page1)
		}
	}

	page2, err := os.ReadFile(filepath.Join(out, "OEBPS", "Text", "chapter2.xhtml"))
	if err != nil {
		t.Fatalf("reading chapter2: %v", err)
	}
	for _, want := range []string{"XHTML 1.1", "body.epub", "http-equiv"} {
		if !strings.Contains(string(page2), want) {
			t.Errorf("chapter2 missing %q:\n%s", want, page2)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReport - Result summary
// ---------------------------------------------------------------------------

func TestReport(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	results := []renderResult{
		{Input: "a.yaml", Output: "out/a.xhtml"},
		{Input: "b.yaml", Err: os.ErrNotExist},
		{Input: "c.yaml", Err: ErrUsage},
	}

	code := report(zap.New(core), results)

	if code != ExitIO {
		t.Errorf("report() = %d, want first failure code %d", code, ExitIO)
	}
	if n := logs.FilterMessage("page written").Len(); n != 1 {
		t.Errorf("logged %d successes, want 1", n)
	}
	if n := logs.FilterMessage("page failed").Len(); n != 2 {
		t.Errorf("logged %d failures, want 2", n)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     cliFlags
		wantDebug bool
		wantInfo  bool
	}{
		{"default", cliFlags{}, false, true},
		{"verbose", cliFlags{verbose: true}, true, true},
		{"quiet", cliFlags{quiet: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, &tt.flags)

			if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Core().Enabled(zapcore.InfoLevel); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
			if !logger.Core().Enabled(zapcore.ErrorLevel) {
				t.Error("errors should always be logged")
			}
		})
	}
}

func TestExitCodeFor_Wrapped(t *testing.T) {
	t.Parallel()

	err := errors.Join(errors.New("context"), ErrWritePage)
	if got := exitCodeFor(err); got != ExitIO {
		t.Errorf("exitCodeFor() = %d, want %d", got, ExitIO)
	}
}
