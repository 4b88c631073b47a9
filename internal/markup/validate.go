package markup

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	linkRules = validation.Map(
		validation.Key("rel", validation.Required),
		validation.Key("href", validation.Required),
	).AllowExtraKeys()

	legacyStyleRules = validation.Map(
		validation.Key("type", validation.Required),
	).AllowExtraKeys()

	metaRules = validation.By(func(value interface{}) error {
		attrs, _ := value.(map[string]string)
		for _, key := range []string{"charset", "name", "http-equiv", "property"} {
			if attrs[key] != "" {
				return nil
			}
		}
		return errors.New("needs one of charset, name, http-equiv or property")
	})
)

// Validate checks the structural well-formedness of an <html> root for the
// dialect. All violations found are reported together, wrapped in
// ErrInvalidStructure.
func Validate(root *etree.Element, c Compatibility) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedCompatibility, c)
	}

	v := &validator{compat: c, ids: make(map[string]string)}
	v.checkRoot(root)
	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidStructure, errors.Join(v.errs...))
}

type validator struct {
	compat Compatibility
	ids    map[string]string
	errs   []error
}

func (v *validator) fail(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) checkRoot(root *etree.Element) {
	if root == nil {
		v.fail("missing root element")
		return
	}
	if root.Tag != "html" || root.Space != "" {
		v.fail("root element is <%s>, want <html>", root.FullTag())
		return
	}
	if ns := root.SelectAttrValue("xmlns", ""); ns != XHTMLNamespace {
		v.fail("root namespace is %q, want %q", ns, XHTMLNamespace)
	}

	children := root.ChildElements()
	if len(children) != 2 || children[0].Tag != "head" || children[1].Tag != "body" {
		v.fail("<html> must contain exactly <head> followed by <body>")
	}

	for _, child := range children {
		if child.Tag == "head" {
			v.checkHead(child)
		}
	}
	v.walk(root)
}

func (v *validator) checkHead(head *etree.Element) {
	titles := 0
	for _, child := range head.ChildElements() {
		if !headElements[child.Tag] {
			v.fail("<%s> is not allowed in <head>", child.Tag)
			continue
		}
		attrs := attributes(child)
		switch child.Tag {
		case "title":
			titles++
		case "link":
			if err := validation.Validate(attrs, linkRules); err != nil {
				v.fail("<link>: %v", err)
			}
		case "style":
			if !v.compat.Namespaced() {
				if err := validation.Validate(attrs, legacyStyleRules); err != nil {
					v.fail("<style>: %v", err)
				}
			}
		case "meta":
			if err := validation.Validate(attrs, metaRules); err != nil {
				v.fail("<meta>: %v", err)
			}
		}
	}
	if titles > 1 {
		v.fail("<head> contains %d <title> elements", titles)
	}
}

// walk applies element-level rules to el and its descendants.
func (v *validator) walk(el *etree.Element) {
	if el.Space == "" && !v.compat.Known(el.Tag) {
		v.fail("<%s> is not defined in %s", el.Tag, v.compat)
	}
	if v.compat.Namespaced() && obsoleteElements[el.Tag] {
		v.fail("<%s> is obsolete", el.Tag)
	}

	for _, a := range el.Attr {
		if a.Space == OPSPrefix && !v.compat.Namespaced() {
			v.fail("attribute %s on <%s> requires an EPUB 3 dialect", a.FullKey(), el.Tag)
		}
		if a.Space == "" && a.Key == "id" {
			if prev, dup := v.ids[a.Value]; dup {
				v.fail("duplicate id %q on <%s> (first used on <%s>)", a.Value, el.Tag, prev)
			} else {
				v.ids[a.Value] = el.Tag
			}
		}
	}

	for _, child := range el.ChildElements() {
		v.walk(child)
	}
}

func attributes(el *etree.Element) map[string]string {
	m := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		m[a.FullKey()] = a.Value
	}
	return m
}
