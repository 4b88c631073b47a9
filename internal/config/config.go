// Package config loads page configuration files: one YAML file per content
// page, naming its title, location, stylesheets and Markdown body.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-xhtmlpage/internal/markup"
	"github.com/alnah/go-xhtmlpage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("page file not found")
	ErrEmptyPath      = errors.New("page file path cannot be empty")
	ErrConfigParse    = errors.New("failed to parse page file")
	ErrInvalidConfig  = errors.New("invalid page file")
)

// DefaultCompatibility is used when a page file does not name one.
const DefaultCompatibility = "xhtml5"

// Field length limits.
const (
	MaxTitleLength    = 200
	MaxFileNameLength = 255
	MaxIDLength       = 100
	MaxMetaLength     = 500
)

var (
	fileNamePattern = regexp.MustCompile(`^[^/\\]+$`)
	idPattern       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)
)

// Page describes one content page.
type Page struct {
	Title               string  `yaml:"title"`
	FileName            string  `yaml:"fileName"`
	Location            string  `yaml:"location"`      // Directory inside the package (empty = OEBPS)
	Compatibility       string  `yaml:"compatibility"` // Markup dialect name (empty = xhtml5)
	EmbedStyles         bool    `yaml:"embedStyles"`
	FlatLayout          bool    `yaml:"flatLayout"`
	ID                  string  `yaml:"id"` // Manifest id (empty = generated)
	GuideRole           string  `yaml:"guideRole"`
	NotPartOfNavigation bool    `yaml:"notPartOfNavigation"`
	Styles              []Style `yaml:"styles"`
	Meta                []Meta  `yaml:"meta"`
	Body                string  `yaml:"body"` // Markdown file, relative to the page file

	// BaseDir is the directory of the page file. Relative paths in the page
	// resolve against it.
	BaseDir string `yaml:"-"`
}

// Style is one stylesheet of a page. Exactly one of File, Asset and CSS
// provides the content.
type Style struct {
	Path  string `yaml:"path"`  // Location inside the package
	File  string `yaml:"file"`  // CSS file on disk
	Asset string `yaml:"asset"` // Built-in or custom style name
	CSS   string `yaml:"css"`   // Inline CSS text
}

// Meta is a named <meta> entry.
type Meta struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

// Validate checks the page and its nested entries.
func (p *Page) Validate() error {
	if p.Compatibility == "" {
		p.Compatibility = DefaultCompatibility
	}
	p.Compatibility = strings.ToLower(strings.TrimSpace(p.Compatibility))

	if err := validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&p.FileName,
			validation.Required,
			validation.Length(1, MaxFileNameLength),
			validation.Match(fileNamePattern).Error("must not contain path separators"),
		),
		validation.Field(&p.Compatibility, validation.In(compatibilityNames()...)),
		validation.Field(&p.ID,
			validation.Length(0, MaxIDLength),
			validation.Match(idPattern).Error("must be a valid XML name"),
		),
		validation.Field(&p.Styles),
		validation.Field(&p.Meta),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks that the style has a package path and one content source.
func (s Style) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Path, validation.Required),
		validation.Field(&s.File, validation.By(s.oneSource)),
	)
}

func (s Style) oneSource(any) error {
	n := 0
	for _, v := range []string{s.File, s.Asset, s.CSS} {
		if v != "" {
			n++
		}
	}
	if n != 1 {
		return errors.New("exactly one of file, asset or css is required")
	}
	return nil
}

// Validate checks a meta entry.
func (m Meta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, MaxMetaLength)),
		validation.Field(&m.Content, validation.Length(0, MaxMetaLength)),
	)
}

// Resolve returns p relative to the page file directory. Absolute paths are
// returned unchanged.
func (p *Page) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.BaseDir == "" {
		return path
	}
	return filepath.Join(p.BaseDir, path)
}

func compatibilityNames() []any {
	names := markup.CompatibilityNames()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

// Load reads and validates a page file.
func Load(path string) (*Page, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var p Page
	if err := yamlutil.DecodeFile(path, &p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	p.BaseDir = abs

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}
