package xhtmlpage

import (
	"fmt"
	"strings"

	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// Compatibility selects the markup dialect of a page.
type Compatibility = markup.Compatibility

// Supported compatibility modes. HTML5 and XHTML5 target EPUB 3 and declare
// the epub namespace on the root element.
const (
	XHTML11            = markup.XHTML11
	XHTML1Strict       = markup.XHTML1Strict
	XHTML1Transitional = markup.XHTML1Transitional
	HTML5              = markup.HTML5
	XHTML5             = markup.XHTML5
)

// ParseCompatibility resolves a mode name such as "xhtml5" (case-insensitive).
func ParseCompatibility(name string) (Compatibility, error) {
	return markup.ParseCompatibility(name)
}

// MediaTypeCSS is the media type of CSS stylesheets.
const MediaTypeCSS = "text/css"

// BodyClass is the class carried by every generated <body>.
const BodyClass = "epub"

// GuideRole is the OPF guide reference type of a page.
type GuideRole string

// Guide reference types defined by OPF 2.0.1, section 2.6.
const (
	GuideNone            GuideRole = ""
	GuideCover           GuideRole = "cover"
	GuideTitlePage       GuideRole = "title-page"
	GuideTOC             GuideRole = "toc"
	GuideIndex           GuideRole = "index"
	GuideGlossary        GuideRole = "glossary"
	GuideAcknowledgments GuideRole = "acknowledgements"
	GuideBibliography    GuideRole = "bibliography"
	GuideColophon        GuideRole = "colophon"
	GuideCopyrightPage   GuideRole = "copyright-page"
	GuideDedication      GuideRole = "dedication"
	GuideEpigraph        GuideRole = "epigraph"
	GuideForeword        GuideRole = "foreword"
	GuideLOI             GuideRole = "loi"
	GuideLOT             GuideRole = "lot"
	GuideNotes           GuideRole = "notes"
	GuidePreface         GuideRole = "preface"
	GuideText            GuideRole = "text"
)

var guideRoles = []GuideRole{
	GuideCover, GuideTitlePage, GuideTOC, GuideIndex, GuideGlossary, GuideAcknowledgments,
	GuideBibliography, GuideColophon, GuideCopyrightPage, GuideDedication, GuideEpigraph,
	GuideForeword, GuideLOI, GuideLOT, GuideNotes, GuidePreface, GuideText,
}

// ParseGuideRole resolves a guide reference type. The empty string maps to
// GuideNone. Custom types must use the "other." prefix.
func ParseGuideRole(s string) (GuideRole, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return GuideNone, nil
	}
	if strings.HasPrefix(lower, "other.") && len(lower) > len("other.") {
		return GuideRole(lower), nil
	}
	for _, r := range guideRoles {
		if string(r) == lower {
			return r, nil
		}
	}
	return GuideNone, fmt.Errorf("%w: %q", ErrInvalidGuideRole, s)
}
