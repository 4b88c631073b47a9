package hints

import (
	"strings"
	"testing"
)

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hint     string
		contains string
	}{
		{"page not found", ForPageNotFound(), "current directory"},
		{"output directory", ForOutputDirectory(), "--out"},
		{"guide role", ForGuideRole(), "other.<name>"},
		{"structure", ForStructure(), "metadata"},
		{"stylesheet encoding", ForStylesheetEncoding(), "UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.Contains(tt.hint, tt.contains) {
				t.Errorf("hint = %q, want it to contain %q", tt.hint, tt.contains)
			}
		})
	}
}

func TestListHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fn        func([]string) string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "styles empty",
			fn:        ForStyleNotFound,
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "styles",
			fn:        ForStyleNotFound,
			available: []string{"default", "plain"},
			contains:  "default, plain",
		},
		{
			name:      "compatibility empty",
			fn:        ForCompatibility,
			available: nil,
			wantEmpty: true,
		},
		{
			name:      "compatibility",
			fn:        ForCompatibility,
			available: []string{"html5", "xhtml5"},
			contains:  "html5, xhtml5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := tt.fn(tt.available)
			if tt.wantEmpty {
				if hint != "" {
					t.Errorf("expected empty hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hint = %q, want it to contain %q", hint, tt.contains)
			}
		})
	}
}
