package xhtmlpage

// Notes:
// - Compatibility: names round-trip and only HTML5/XHTML5 are namespaced
// - GuideRole: OPF reference types, "other." extensions, rejection of unknowns

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseCompatibility - Mode names
// ---------------------------------------------------------------------------

func TestParseCompatibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Compatibility
		wantErr error
	}{
		{"xhtml11", XHTML11, nil},
		{"xhtml1-strict", XHTML1Strict, nil},
		{"xhtml1-transitional", XHTML1Transitional, nil},
		{"html5", HTML5, nil},
		{" XHTML5 ", XHTML5, nil},
		{"", 0, ErrUnsupportedCompatibility},
		{"html4", 0, ErrUnsupportedCompatibility},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCompatibility(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseCompatibility(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCompatibility(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if tt.wantErr == nil && got.String() != strings.ToLower(strings.TrimSpace(tt.input)) {
				t.Errorf("String() = %q does not round-trip %q", got.String(), tt.input)
			}
		})
	}
}

func TestCompatibility_Namespaced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compat Compatibility
		want   bool
	}{
		{XHTML11, false},
		{XHTML1Strict, false},
		{XHTML1Transitional, false},
		{HTML5, true},
		{XHTML5, true},
		{Compatibility(0), false},
	}

	for _, tt := range tests {
		if got := tt.compat.Namespaced(); got != tt.want {
			t.Errorf("%v.Namespaced() = %v, want %v", tt.compat, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParseGuideRole - OPF guide reference types
// ---------------------------------------------------------------------------

func TestParseGuideRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    GuideRole
		wantErr error
	}{
		{"empty", "", GuideNone, nil},
		{"blank", "   ", GuideNone, nil},
		{"cover", "cover", GuideCover, nil},
		{"case insensitive", "Title-Page", GuideTitlePage, nil},
		{"text", "text", GuideText, nil},
		{"acknowledgements spelling", "acknowledgements", GuideAcknowledgments, nil},
		{"custom", "other.afterword", GuideRole("other.afterword"), nil},
		{"bare other prefix", "other.", GuideNone, ErrInvalidGuideRole},
		{"unknown", "appendix", GuideNone, ErrInvalidGuideRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGuideRole(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseGuideRole(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGuideRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
