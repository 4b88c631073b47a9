package markup

import (
	"fmt"

	"github.com/beevik/etree"
)

func set(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

// coreElements are available in every dialect.
var coreElements = set(
	"html", "head", "title", "base", "meta", "link", "style", "script", "noscript", "body",
	"div", "p", "h1", "h2", "h3", "h4", "h5", "h6", "address", "blockquote", "pre", "hr", "br",
	"ul", "ol", "li", "dl", "dt", "dd",
	"a", "span", "em", "strong", "b", "i", "sub", "sup", "small", "big", "tt",
	"code", "kbd", "samp", "var", "cite", "q", "abbr", "acronym", "dfn", "del", "ins", "bdo",
	"img", "map", "area", "object", "param",
	"table", "caption", "thead", "tbody", "tfoot", "tr", "th", "td", "col", "colgroup",
	"form", "fieldset", "legend", "label", "input", "select", "optgroup", "option", "textarea", "button",
	"ruby", "rb", "rt", "rp", "rtc",
)

// transitionalElements are only valid in XHTML 1.0 Transitional.
var transitionalElements = set(
	"center", "font", "basefont", "u", "s", "strike", "dir", "menu", "iframe", "applet", "isindex",
)

// html5Elements are added by the EPUB 3 dialects.
var html5Elements = set(
	"section", "article", "aside", "nav", "header", "footer", "main", "hgroup",
	"figure", "figcaption", "mark", "time", "data", "wbr", "bdi", "s", "u",
	"audio", "video", "source", "track", "canvas", "picture", "iframe", "embed",
	"details", "summary", "dialog", "template", "output", "progress", "meter",
	"svg", "math",
)

// obsoleteElements are rejected in EPUB 3 content documents.
var obsoleteElements = set(
	"center", "font", "basefont", "big", "blink", "marquee", "multicol", "nobr",
	"spacer", "strike", "tt", "acronym", "applet", "dir", "isindex", "frame", "frameset", "noframes",
)

// headElements is the content model of <head>.
var headElements = set("title", "base", "meta", "link", "style", "script", "noscript")

// Known reports whether tag belongs to the dialect.
func (c Compatibility) Known(tag string) bool {
	if coreElements[tag] {
		return true
	}
	switch c {
	case XHTML1Transitional:
		return transitionalElements[tag]
	case HTML5, XHTML5:
		return html5Elements[tag]
	}
	return false
}

// NewDocument creates an empty document for the dialect: the DOCTYPE
// directive followed by an <html> root in the XHTML namespace.
func NewDocument(c Compatibility) (*etree.Document, *etree.Element, error) {
	doctype, err := c.Doctype()
	if err != nil {
		return nil, nil, err
	}

	doc := etree.NewDocument()
	doc.CreateDirective(doctype)
	root := doc.CreateElement("html")
	root.CreateAttr("xmlns", XHTMLNamespace)
	return doc, root, nil
}

// NewElement creates a detached element after checking that the dialect
// defines it.
func NewElement(c Compatibility, tag string) (*etree.Element, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompatibility, c)
	}
	if !c.Known(tag) {
		return nil, fmt.Errorf("%w: <%s> in %s", ErrUnknownElement, tag, c)
	}
	return etree.NewElement(tag), nil
}

// Head creates an empty <head>.
func Head(c Compatibility) (*etree.Element, error) {
	return NewElement(c, "head")
}

// Body creates an empty <body>.
func Body(c Compatibility) (*etree.Element, error) {
	return NewElement(c, "body")
}

// Title creates a <title> holding text.
func Title(c Compatibility, text string) (*etree.Element, error) {
	el, err := NewElement(c, "title")
	if err != nil {
		return nil, err
	}
	el.SetText(text)
	return el, nil
}

// Style creates an inline <style> of the given media type. Content may be
// empty.
func Style(c Compatibility, mediaType, content string) (*etree.Element, error) {
	el, err := NewElement(c, "style")
	if err != nil {
		return nil, err
	}
	el.CreateAttr("type", mediaType)
	if content != "" {
		el.SetText(content)
	}
	return el, nil
}

// Link creates a <link> element.
func Link(c Compatibility, rel, mediaType, href string) (*etree.Element, error) {
	el, err := NewElement(c, "link")
	if err != nil {
		return nil, err
	}
	el.CreateAttr("rel", rel)
	el.CreateAttr("type", mediaType)
	el.CreateAttr("href", href)
	return el, nil
}

// Meta creates a <meta> element with the given attribute pairs, in order.
func Meta(c Compatibility, attrs ...etree.Attr) (*etree.Element, error) {
	el, err := NewElement(c, "meta")
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		el.CreateAttr(a.FullKey(), a.Value)
	}
	return el, nil
}

// Contains reports whether el is root or one of its descendants.
func Contains(root, el *etree.Element) bool {
	if root == nil || el == nil {
		return false
	}
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur == root {
			return true
		}
	}
	return false
}
