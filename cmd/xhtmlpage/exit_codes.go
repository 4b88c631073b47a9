package main

import (
	"errors"
	"os"

	xhtmlpage "github.com/alnah/go-xhtmlpage"
	"github.com/alnah/go-xhtmlpage/internal/config"
)

// Exit codes for the xhtmlpage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, page file, or page content
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the exit code for an error. Wrapped errors are
// matched with errors.Is.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadBody) ||
		errors.Is(err, ErrWritePage) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrEmptyPath) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, xhtmlpage.ErrUnsupportedCompatibility) ||
		errors.Is(err, xhtmlpage.ErrInvalidGuideRole) ||
		errors.Is(err, xhtmlpage.ErrInvalidStylesheet) ||
		errors.Is(err, xhtmlpage.ErrStructuralValidation) ||
		errors.Is(err, xhtmlpage.ErrMarkdownRender) {
		return ExitUsage
	}

	return ExitGeneral
}
