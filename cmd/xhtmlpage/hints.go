package main

import (
	"errors"

	"golang.org/x/text/encoding"

	xhtmlpage "github.com/alnah/go-xhtmlpage"
	"github.com/alnah/go-xhtmlpage/internal/assets"
	"github.com/alnah/go-xhtmlpage/internal/config"
	"github.com/alnah/go-xhtmlpage/internal/hints"
	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// hintFor returns an actionable hint for a failed page or a stylesheet
// warning, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForPageNotFound()
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, encoding.ErrInvalidUTF8):
		return hints.ForStylesheetEncoding()
	case errors.Is(err, xhtmlpage.ErrUnsupportedCompatibility):
		return hints.ForCompatibility(markup.CompatibilityNames())
	case errors.Is(err, xhtmlpage.ErrInvalidGuideRole):
		return hints.ForGuideRole()
	case errors.Is(err, xhtmlpage.ErrStructuralValidation):
		return hints.ForStructure()
	}
	return ""
}
