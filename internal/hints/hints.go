// Package hints provides actionable hints for common page rendering
// failures. A hint is a short imperative sentence, or "" when there is
// nothing useful to suggest.
package hints

import (
	"strings"
)

// ForPageNotFound returns a hint for a page file that does not exist.
func ForPageNotFound() string {
	return "page file paths are relative to the current directory"
}

// ForOutputDirectory returns a hint for output directory creation errors.
func ForOutputDirectory() string {
	return "check that --out points to a writable directory"
}

// ForStyleNotFound lists the styles that can be used instead.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return "available styles: " + strings.Join(available, ", ") + " (or add {assets}/styles/{name}.css)"
}

// ForCompatibility lists the accepted compatibility names.
func ForCompatibility(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "compatibility must be one of: " + strings.Join(names, ", ")
}

// ForGuideRole explains the accepted guide reference types.
func ForGuideRole() string {
	return "use an OPF guide type such as text, cover or toc, or a custom other.<name>"
}

// ForStructure explains what a generated page may contain.
func ForStructure() string {
	return "a head may only hold metadata elements; the title is added by the page itself"
}

// ForStylesheetEncoding returns a hint for stylesheets that are not UTF-8.
func ForStylesheetEncoding() string {
	return "save the stylesheet as UTF-8, or with a UTF-16 byte order mark"
}
