package markup

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses an HTML fragment as body content and converts it to etree
// tokens ready to be appended to a <body> or any flow container.
// Doctype and processing nodes are dropped.
func FromHTML(fragment string) ([]etree.Token, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}

	tokens := make([]etree.Token, 0, len(nodes))
	for _, n := range nodes {
		if tok := convertNode(n); tok != nil {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

func convertNode(n *html.Node) etree.Token {
	switch n.Type {
	case html.ElementNode:
		el := etree.NewElement(n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.CreateAttr(key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if tok := convertNode(c); tok != nil {
				el.AddChild(tok)
			}
		}
		return el
	case html.TextNode:
		return etree.NewText(n.Data)
	case html.CommentNode:
		return etree.NewComment(n.Data)
	}
	return nil
}
