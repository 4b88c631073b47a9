package xhtmlpage

import (
	"github.com/beevik/etree"

	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// HeadBuilder builds a fresh <head> for a page. Implementations replace the
// base head to add their own metadata; the document appends stylesheets and
// the title afterwards.
type HeadBuilder interface {
	BuildHead(c Compatibility) (*etree.Element, error)
}

// BodyBuilder builds a fresh <body> for a page. The document makes sure the
// returned body carries the "epub" class.
type BodyBuilder interface {
	BuildBody(c Compatibility) (*etree.Element, error)
}

// Membership is implemented by head or body builders that can tell whether
// an element belongs to the tree they built.
type Membership interface {
	PartOfDocument(el *etree.Element) bool
}

// BaseHead builds an empty head.
type BaseHead struct{}

// BuildHead returns an empty <head>.
func (BaseHead) BuildHead(c Compatibility) (*etree.Element, error) {
	return markup.Head(c)
}

// BaseBody builds an empty body with the epub class.
type BaseBody struct{}

// BuildBody returns <body class="epub"/>.
func (BaseBody) BuildBody(c Compatibility) (*etree.Element, error) {
	body, err := markup.Body(c)
	if err != nil {
		return nil, err
	}
	body.CreateAttr("class", BodyClass)
	return body, nil
}

// Meta is a named <meta> entry.
type Meta struct {
	Name    string
	Content string
}

// MetaHead declares the document encoding and adds named metadata.
// EPUB 3 dialects get <meta charset="utf-8"/>, XHTML 1.x dialects the
// equivalent http-equiv Content-Type declaration.
type MetaHead struct {
	Meta []Meta
}

// BuildHead returns a head holding the encoding declaration and h.Meta in
// order.
func (h MetaHead) BuildHead(c Compatibility) (*etree.Element, error) {
	head, err := BaseHead{}.BuildHead(c)
	if err != nil {
		return nil, err
	}

	var charset *etree.Element
	if c.Namespaced() {
		charset, err = markup.Meta(c, etree.Attr{Key: "charset", Value: "utf-8"})
	} else {
		charset, err = markup.Meta(c,
			etree.Attr{Key: "http-equiv", Value: "Content-Type"},
			etree.Attr{Key: "content", Value: "text/html; charset=utf-8"},
		)
	}
	if err != nil {
		return nil, err
	}
	head.AddChild(charset)

	for _, m := range h.Meta {
		el, err := markup.Meta(c,
			etree.Attr{Key: "name", Value: m.Name},
			etree.Attr{Key: "content", Value: m.Content},
		)
		if err != nil {
			return nil, err
		}
		head.AddChild(el)
	}
	return head, nil
}

var (
	_ HeadBuilder = BaseHead{}
	_ HeadBuilder = MetaHead{}
	_ BodyBuilder = BaseBody{}
)
