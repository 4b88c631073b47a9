package xhtmlpage

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/alnah/go-xhtmlpage/internal/epubpath"
	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// relStylesheet is the link relation of linked stylesheets.
const relStylesheet = "stylesheet"

// StyleAttachment is the head node built for one stylesheet during a
// generation pass.
type StyleAttachment struct {
	Source   StyleSource
	Embedded bool
	Node     *etree.Element

	// Err is set when an embedded stylesheet could not be read or decoded.
	// Node is then an empty <style> element. It wraps ErrStyleEmbed.
	Err error
}

// styleResolver decides how stylesheets are attached to one document.
// The embed decision is document wide.
type styleResolver struct {
	compat Compatibility
	embed  bool
	docDir epubpath.Path
	flat   bool
}

// resolve builds the head node for src. Errors are only returned when the
// element itself cannot be built; content failures are soft and land in
// StyleAttachment.Err.
func (r styleResolver) resolve(src StyleSource) (StyleAttachment, error) {
	if r.embed {
		return r.inline(src)
	}
	return r.link(src)
}

func (r styleResolver) inline(src StyleSource) (StyleAttachment, error) {
	el, err := markup.Style(r.compat, src.MediaType(), "")
	if err != nil {
		return StyleAttachment{}, err
	}
	att := StyleAttachment{Source: src, Embedded: true, Node: el}

	text, err := readStylesheet(src)
	if err != nil {
		att.Err = fmt.Errorf("%w: %s: %w", ErrStyleEmbed, src.PathInPackage(), err)
		return att, nil
	}
	if text != "" {
		el.SetText(text)
	}
	return att, nil
}

func (r styleResolver) link(src StyleSource) (StyleAttachment, error) {
	href := epubpath.File(src.PathInPackage()).Rel(r.docDir, r.flat)
	el, err := markup.Link(r.compat, relStylesheet, src.MediaType(), href)
	if err != nil {
		return StyleAttachment{}, err
	}
	return StyleAttachment{Source: src, Node: el}, nil
}

// readStylesheet returns the stylesheet as UTF-8 text. A byte order mark
// selects the decoder (UTF-8 or UTF-16) and is stripped; without one the
// bytes must be valid UTF-8.
func readStylesheet(src StyleSource) (string, error) {
	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		return "", err
	}

	decoder := unicode.BOMOverride(encoding.UTF8Validator)
	out, _, err := transform.Bytes(decoder, buf.Bytes())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
