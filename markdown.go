package xhtmlpage

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/beevik/etree"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// MarkdownBody renders Markdown into the page body. It also reports which
// elements belong to the body it built last.
type MarkdownBody struct {
	source []byte
	md     goldmark.Markdown
	body   *etree.Element
}

// NewMarkdownBody creates a body builder for source. GFM tables, footnotes
// and fenced code highlighting (CSS classes, no inline styles) are enabled.
// Raw HTML in source is not rendered.
func NewMarkdownBody(source []byte) *MarkdownBody {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &MarkdownBody{source: source, md: md}
}

// BuildBody renders the Markdown source inside <body class="epub">.
func (m *MarkdownBody) BuildBody(c Compatibility) (*etree.Element, error) {
	body, err := BaseBody{}.BuildBody(c)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := m.md.Convert(m.source, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}

	tokens, err := markup.FromHTML(buf.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}
	for _, tok := range tokens {
		body.AddChild(tok)
	}

	m.body = body
	return body, nil
}

// PartOfDocument reports whether el is the last built body or inside it.
func (m *MarkdownBody) PartOfDocument(el *etree.Element) bool {
	return markup.Contains(m.body, el)
}

var (
	_ BodyBuilder = (*MarkdownBody)(nil)
	_ Membership  = (*MarkdownBody)(nil)
)
