package xhtmlpage

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/alnah/go-xhtmlpage/internal/epubpath"
	"github.com/alnah/go-xhtmlpage/internal/markup"
)

// Document is one XHTML content page of an EPUB package.
//
// Configure it through its setters, then call Write. The generated tree is
// cached and reused until a generation-affecting setting changes.
// A Document is not safe for concurrent use.
type Document struct {
	compat Compatibility
	head   *etree.Element
	body   *etree.Element
	title  string
	cache  generationCache

	location    epubpath.Path
	fileName    string
	embedStyles bool
	styles      []StyleSource

	guideRole           GuideRole
	notPartOfNavigation bool
	flatLayout          bool
	id                  string

	headBuilder HeadBuilder
	bodyBuilder BodyBuilder
	logger      *zap.Logger
	warnings    []error
}

// Option configures a Document.
type Option func(*Document)

// WithHeadBuilder replaces the base head construction.
func WithHeadBuilder(b HeadBuilder) Option {
	return func(d *Document) {
		if b != nil {
			d.headBuilder = b
		}
	}
}

// WithBodyBuilder replaces the base body construction.
func WithBodyBuilder(b BodyBuilder) Option {
	return func(d *Document) {
		if b != nil {
			d.bodyBuilder = b
		}
	}
}

// WithLogger sets the logger. Generation is logged at debug level and
// soft stylesheet failures at warn level.
func WithLogger(l *zap.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithLocation sets the directory holding the page inside the package.
func WithLocation(dir string) Option {
	return func(d *Document) {
		d.location = epubpath.Dir(dir)
	}
}

// New creates a page for the given compatibility mode, located in
// epubpath.ContentDir unless WithLocation says otherwise.
func New(compat Compatibility, opts ...Option) *Document {
	d := &Document{
		compat:      compat,
		cache:       newGenerationCache(),
		location:    epubpath.ContentDir,
		headBuilder: BaseHead{},
		bodyBuilder: BaseBody{},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Compatibility returns the markup dialect of the page.
func (d *Document) Compatibility() Compatibility { return d.compat }

// PageTitle returns the page title.
func (d *Document) PageTitle() string { return d.title }

// SetPageTitle sets the <title> text.
func (d *Document) SetPageTitle(title string) {
	d.title = title
	d.Invalidate()
}

// EmbedStyles reports whether stylesheets are inlined into <style> elements
// instead of linked.
func (d *Document) EmbedStyles() bool { return d.embedStyles }

// SetEmbedStyles switches between inline and linked stylesheets.
func (d *Document) SetEmbedStyles(embed bool) {
	d.embedStyles = embed
	d.Invalidate()
}

// Styles returns a copy of the attached stylesheets, in attachment order.
func (d *Document) Styles() []StyleSource {
	return append([]StyleSource(nil), d.styles...)
}

// AddStyle appends stylesheets.
func (d *Document) AddStyle(styles ...StyleSource) {
	d.styles = append(d.styles, styles...)
	d.Invalidate()
}

// SetStyles replaces the stylesheet list.
func (d *Document) SetStyles(styles []StyleSource) {
	d.styles = append([]StyleSource(nil), styles...)
	d.Invalidate()
}

// FileName returns the name of the page file inside the package.
func (d *Document) FileName() string { return d.fileName }

// SetFileName sets the name used when the page is saved into the package.
func (d *Document) SetFileName(name string) { d.fileName = name }

// Location returns the directory holding the page inside the package.
func (d *Document) Location() string { return d.location.String() }

// SetLocation moves the page to another directory. Link hrefs depend on it.
func (d *Document) SetLocation(dir string) {
	d.location = epubpath.Dir(dir)
	d.Invalidate()
}

// PathInPackage returns the location of the page file inside the package.
// It fails with ErrMissingFileName until SetFileName was called.
func (d *Document) PathInPackage() (string, error) {
	p, err := d.path()
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// Href returns the reference to the page from the package document
// directory, as used in the manifest.
func (d *Document) Href() (string, error) {
	p, err := d.path()
	if err != nil {
		return "", err
	}
	return p.Rel(epubpath.ContentDir, d.flatLayout), nil
}

func (d *Document) path() (epubpath.Path, error) {
	if d.fileName == "" {
		return epubpath.Path{}, ErrMissingFileName
	}
	return d.location.Join(d.fileName), nil
}

// GuideRole returns the guide reference type of the page.
func (d *Document) GuideRole() GuideRole { return d.guideRole }

// SetGuideRole sets the guide reference type of the page.
func (d *Document) SetGuideRole(role GuideRole) { d.guideRole = role }

// NotPartOfNavigation reports whether the page is left out of the
// navigation documents.
func (d *Document) NotPartOfNavigation() bool { return d.notPartOfNavigation }

// SetNotPartOfNavigation excludes the page from navigation.
func (d *Document) SetNotPartOfNavigation(exclude bool) { d.notPartOfNavigation = exclude }

// FlatLayout reports whether all package files live in a single directory.
func (d *Document) FlatLayout() bool { return d.flatLayout }

// SetFlatLayout sets the flat layout flag. Link hrefs depend on it.
func (d *Document) SetFlatLayout(flat bool) {
	d.flatLayout = flat
	d.Invalidate()
}

// ID returns the manifest identifier of the page.
func (d *Document) ID() string { return d.id }

// SetID sets the manifest identifier of the page.
func (d *Document) SetID(id string) { d.id = id }

// Head returns the head built by the last GenerateHead call, or nil.
func (d *Document) Head() *etree.Element { return d.head }

// Body returns the body built by the last GenerateBody call, or nil.
func (d *Document) Body() *etree.Element { return d.body }

// Warnings returns the soft failures of the last generation.
func (d *Document) Warnings() []error {
	return append([]error(nil), d.warnings...)
}

// Invalidate marks the cached tree stale. The next Write regenerates.
func (d *Document) Invalidate() {
	d.cache.invalidate()
}

// IsDirty reports whether the next Write will regenerate the tree.
func (d *Document) IsDirty() bool {
	_, ok := d.cache.load()
	return !ok
}

// GenerateHead builds a fresh head through the configured HeadBuilder.
func (d *Document) GenerateHead() error {
	head, err := d.headBuilder.BuildHead(d.compat)
	if err != nil {
		return err
	}
	if head == nil {
		return fmt.Errorf("%w: head builder returned no element", ErrStructuralValidation)
	}
	d.head = head
	return nil
}

// GenerateBody builds a fresh body through the configured BodyBuilder and
// makes sure it carries the epub class.
func (d *Document) GenerateBody() error {
	body, err := d.bodyBuilder.BuildBody(d.compat)
	if err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("%w: body builder returned no element", ErrStructuralValidation)
	}
	ensureClass(body, BodyClass)
	d.body = body
	return nil
}

// Generate rebuilds the page tree regardless of the cache state, caches it
// and returns it. The returned tree is the page itself: Head and Body are
// its elements, and edits made to it are written by Write until the next
// regeneration. On error nothing is cached.
func (d *Document) Generate() (*etree.Document, error) {
	tree, err := d.generate()
	if err != nil {
		d.cache.drop()
		return nil, err
	}
	d.cache.store(tree)
	return tree, nil
}

func (d *Document) generate() (*etree.Document, error) {
	d.warnings = nil
	d.logger.Debug("generating page",
		zap.String("file", d.fileName),
		zap.Stringer("compatibility", d.compat),
		zap.Int("styles", len(d.styles)),
		zap.Bool("embed", d.embedStyles))

	if err := d.GenerateHead(); err != nil {
		return nil, err
	}
	if err := d.GenerateBody(); err != nil {
		return nil, err
	}

	resolver := styleResolver{
		compat: d.compat,
		embed:  d.embedStyles,
		docDir: d.location,
		flat:   d.flatLayout,
	}
	for _, src := range d.styles {
		att, err := resolver.resolve(src)
		if err != nil {
			return nil, err
		}
		if att.Err != nil {
			d.warnings = append(d.warnings, att.Err)
			d.logger.Warn("stylesheet embedded without content",
				zap.String("file", d.fileName),
				zap.String("stylesheet", src.PathInPackage()),
				zap.Error(att.Err))
		}
		d.head.AddChild(att.Node)
	}

	doc, root, err := markup.NewDocument(d.compat)
	if err != nil {
		return nil, err
	}
	root.AddChild(d.head)
	root.AddChild(d.body)

	if d.compat.Namespaced() {
		root.CreateAttr("xmlns:"+markup.OPSPrefix, markup.OPSNamespace)
	}

	if err := markup.Validate(root, d.compat); err != nil {
		d.logger.Debug("page failed validation", zap.String("file", d.fileName), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStructuralValidation, err)
	}
	if d.head.SelectElement("title") != nil {
		return nil, fmt.Errorf("%w: <title> is added by the document, not the head builder", ErrStructuralValidation)
	}

	title, err := markup.Title(d.compat, d.title)
	if err != nil {
		return nil, err
	}
	d.head.AddChild(title)

	return doc, nil
}

// Write serializes the page to w, reusing the cached tree when it is clean.
// w is not closed. When generation fails nothing is written.
func (d *Document) Write(w io.Writer) error {
	tree, ok := d.cache.load()
	if !ok {
		var err error
		if tree, err = d.Generate(); err != nil {
			return err
		}
	}
	return Serialize(w, tree)
}

// PartOfDocument reports whether el belongs to this page. The base page
// claims nothing; head and body builders implementing Membership are asked.
func (d *Document) PartOfDocument(el *etree.Element) bool {
	if m, ok := d.headBuilder.(Membership); ok && m.PartOfDocument(el) {
		return true
	}
	if m, ok := d.bodyBuilder.(Membership); ok && m.PartOfDocument(el) {
		return true
	}
	return false
}

// ensureClass adds class to the class attribute of el unless present.
func ensureClass(el *etree.Element, class string) {
	attr := el.SelectAttr("class")
	if attr == nil {
		el.CreateAttr("class", class)
		return
	}
	for _, c := range strings.Fields(attr.Value) {
		if c == class {
			return
		}
	}
	if attr.Value == "" {
		attr.Value = class
		return
	}
	attr.Value = class + " " + attr.Value
}
