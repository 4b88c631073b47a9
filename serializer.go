package xhtmlpage

import (
	"errors"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Serialization settings. They are fixed: every page is written the same way.
const (
	xmlDeclaration = `version="1.0" encoding="utf-8"`
	indentUnit     = "  "
)

// errNilTree is returned by Serialize for a nil tree.
var errNilTree = errors.New("nothing to serialize")

// blockContainers are the elements whose children are laid out on their own
// lines. Whitespace between their children does not change rendering, which
// is not true of inline or preformatted content, so nothing else is touched.
var blockContainers = map[string]bool{
	"html": true, "head": true, "body": true,
	"div": true, "section": true, "article": true, "aside": true, "nav": true,
	"header": true, "footer": true, "main": true, "hgroup": true, "figure": true,
	"blockquote": true, "ul": true, "ol": true, "dl": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true, "tr": true, "colgroup": true,
}

// Serialize writes tree to w as UTF-8 XML: an XML declaration, then the tree
// with block level elements indented by two spaces. The tree is not
// modified and w is not closed.
func Serialize(w io.Writer, tree *etree.Document) error {
	if tree == nil {
		return errNilTree
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", xmlDeclaration)
	for _, tok := range tree.Child {
		switch t := tok.(type) {
		case *etree.Directive:
			out.CreateText("\n")
			out.CreateDirective(t.Data)
		case *etree.Comment:
			out.CreateText("\n")
			out.CreateComment(t.Data)
		case *etree.ProcInst:
			if t.Target == "xml" {
				continue
			}
			out.CreateText("\n")
			out.CreateProcInst(t.Target, t.Inst)
		case *etree.Element:
			root := t.Copy()
			indentElement(root, 0)
			out.CreateText("\n")
			out.AddChild(root)
		}
	}
	out.CreateText("\n")

	_, err := out.WriteTo(w)
	return err
}

// indentElement indents the children of block containers that hold no text
// of their own. Existing whitespace-only text between children is replaced.
func indentElement(el *etree.Element, depth int) {
	if !blockContainers[el.Tag] || hasText(el) {
		return
	}

	tokens := detachChildren(el)
	if len(tokens) == 0 {
		return
	}
	for _, tok := range tokens {
		el.CreateText("\n" + strings.Repeat(indentUnit, depth+1))
		el.AddChild(tok)
		if child, ok := tok.(*etree.Element); ok {
			indentElement(child, depth+1)
		}
	}
	el.CreateText("\n" + strings.Repeat(indentUnit, depth))
}

// hasText reports whether el has character data other than whitespace.
func hasText(el *etree.Element) bool {
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok && !cd.IsWhitespace() {
			return true
		}
	}
	return false
}

// detachChildren removes all children of el and returns them without the
// whitespace-only text between them.
func detachChildren(el *etree.Element) []etree.Token {
	children := append([]etree.Token(nil), el.Child...)
	kept := make([]etree.Token, 0, len(children))
	for _, tok := range children {
		el.RemoveChild(tok)
		if cd, ok := tok.(*etree.CharData); ok && cd.IsWhitespace() {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
