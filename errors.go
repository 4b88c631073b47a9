package xhtmlpage

import (
	"errors"

	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// Sentinel errors for library operations.
var (
	// ErrMissingFileName is returned when the package path of a document is
	// requested before its file name was set.
	ErrMissingFileName = errors.New("file name has to be set")

	// ErrStructuralValidation is returned by Generate and Write when the
	// assembled tree is not structurally valid. Nothing is cached or written.
	ErrStructuralValidation = errors.New("document content is not valid")

	// ErrStyleEmbed marks a stylesheet whose content could not be read or
	// decoded while embedding. It is a soft failure: the page is still
	// generated and the error is reported through Document.Warnings.
	ErrStyleEmbed = errors.New("stylesheet could not be embedded")

	// ErrInvalidStylesheet indicates CSS text that failed to parse.
	ErrInvalidStylesheet = errors.New("invalid stylesheet")

	// ErrInvalidGuideRole is returned by ParseGuideRole for unknown types.
	ErrInvalidGuideRole = errors.New("invalid guide role")

	// ErrMarkdownRender indicates the Markdown body could not be rendered.
	ErrMarkdownRender = errors.New("markdown rendering failed")

	// ErrUnsupportedCompatibility is returned when the document targets a
	// compatibility mode the element library cannot build.
	ErrUnsupportedCompatibility = markup.ErrUnsupportedCompatibility
)
