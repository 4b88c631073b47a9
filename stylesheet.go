package xhtmlpage

import (
	"fmt"
	"io"
	"os"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/alnah/go-xhtmlpage/internal/assets"
	"github.com/alnah/go-xhtmlpage/internal/epubpath"
)

// StyleSource is one stylesheet attached to a page.
//
// WriteTo streams the stylesheet bytes; it is called on every generation
// when styles are embedded. PathInPackage is the slash separated location of
// the stylesheet inside the package, used to compute link hrefs.
type StyleSource interface {
	io.WriterTo
	MediaType() string
	PathInPackage() string
}

// Stylesheet is a StyleSource held in memory.
type Stylesheet struct {
	path      epubpath.Path
	mediaType string
	content   []byte
}

// NewStylesheet creates a CSS stylesheet located at pathInPackage.
func NewStylesheet(pathInPackage string, content []byte) *Stylesheet {
	return &Stylesheet{
		path:      epubpath.File(pathInPackage),
		mediaType: MediaTypeCSS,
		content:   content,
	}
}

// ParseStylesheet parses text and stores its normalized form. Use it for
// user supplied snippets that must be rejected when they are not CSS.
// Style rules need at least one declaration: "h1" and "h1 {}" are rejected.
func ParseStylesheet(pathInPackage, text string) (*Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStylesheet, err)
	}
	if err := checkRules(sheet.Rules); err != nil {
		return nil, err
	}
	return NewStylesheet(pathInPackage, []byte(sheet.String())), nil
}

// checkRules rejects style rules without declarations. The parser accepts a
// bare selector as a rule with an empty block.
func checkRules(rules []*css.Rule) error {
	for _, r := range rules {
		if r.Kind == css.AtRule {
			if err := checkRules(r.Rules); err != nil {
				return err
			}
			continue
		}
		if len(r.Declarations) == 0 {
			return fmt.Errorf("%w: rule %q has no declarations", ErrInvalidStylesheet, r.Prelude)
		}
	}
	return nil
}

// WriteTo writes the stylesheet content to w.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.content)
	return int64(n), err
}

// MediaType returns the declared media type.
func (s *Stylesheet) MediaType() string { return s.mediaType }

// PathInPackage returns the location inside the package.
func (s *Stylesheet) PathInPackage() string { return s.path.String() }

// Bytes returns the stylesheet content.
func (s *Stylesheet) Bytes() []byte { return s.content }

// FileStylesheet reads its content from disk each time it is written, so
// edits to the file are picked up by the next generation.
type FileStylesheet struct {
	file string
	path epubpath.Path
}

// NewFileStylesheet creates a stylesheet backed by file, placed at
// pathInPackage inside the package.
func NewFileStylesheet(file, pathInPackage string) *FileStylesheet {
	return &FileStylesheet{file: file, path: epubpath.File(pathInPackage)}
}

// WriteTo copies the file content to w.
func (s *FileStylesheet) WriteTo(w io.Writer) (int64, error) {
	f, err := os.Open(s.file) // #nosec G304 -- caller chooses the stylesheet
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return io.Copy(w, f)
}

// MediaType returns text/css.
func (s *FileStylesheet) MediaType() string { return MediaTypeCSS }

// PathInPackage returns the location inside the package.
func (s *FileStylesheet) PathInPackage() string { return s.path.String() }

// StyleLoader loads named stylesheets.
type StyleLoader interface {
	LoadStyle(name string) ([]byte, error)
}

// NewStyleLoader returns a loader for the built-in styles. When basePath is
// set, {basePath}/styles/{name}.css takes precedence over the built-in style
// of the same name.
func NewStyleLoader(basePath string) (StyleLoader, error) {
	r, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// AssetStylesheet is a named style resolved through a StyleLoader.
type AssetStylesheet struct {
	loader StyleLoader
	name   string
	path   epubpath.Path
}

// NewAssetStylesheet creates a stylesheet for the named style. A nil loader
// uses the built-in styles.
func NewAssetStylesheet(loader StyleLoader, name, pathInPackage string) *AssetStylesheet {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	return &AssetStylesheet{loader: loader, name: name, path: epubpath.File(pathInPackage)}
}

// WriteTo loads the style and writes it to w.
func (s *AssetStylesheet) WriteTo(w io.Writer) (int64, error) {
	content, err := s.loader.LoadStyle(s.name)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(content)
	return int64(n), err
}

// MediaType returns text/css.
func (s *AssetStylesheet) MediaType() string { return MediaTypeCSS }

// PathInPackage returns the location inside the package.
func (s *AssetStylesheet) PathInPackage() string { return s.path.String() }

var (
	_ StyleSource = (*Stylesheet)(nil)
	_ StyleSource = (*FileStylesheet)(nil)
	_ StyleSource = (*AssetStylesheet)(nil)
	_ StyleLoader = (*assets.Resolver)(nil)
)
