package markup

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for markup operations.
var (
	// ErrUnsupportedCompatibility indicates a compatibility mode this package
	// does not know how to build.
	ErrUnsupportedCompatibility = errors.New("unsupported compatibility mode")

	// ErrUnknownElement indicates an element name outside the dialect.
	ErrUnknownElement = errors.New("unknown element")

	// ErrInvalidStructure indicates a tree that fails structural validation.
	ErrInvalidStructure = errors.New("invalid document structure")
)

// Namespaces used by content documents.
const (
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
	OPSNamespace   = "http://www.idpf.org/2007/ops"
	OPSPrefix      = "epub"
)

// Compatibility selects the markup dialect a document targets.
// The zero value is not a valid mode.
type Compatibility int

// Supported dialects. HTML5 and XHTML5 are the EPUB 3 dialects.
const (
	XHTML11 Compatibility = iota + 1
	XHTML1Strict
	XHTML1Transitional
	HTML5
	XHTML5
)

var compatibilityNames = map[Compatibility]string{
	XHTML11:            "xhtml11",
	XHTML1Strict:       "xhtml1-strict",
	XHTML1Transitional: "xhtml1-transitional",
	HTML5:              "html5",
	XHTML5:             "xhtml5",
}

var doctypes = map[Compatibility]string{
	XHTML11:            `DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"`,
	XHTML1Strict:       `DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"`,
	XHTML1Transitional: `DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"`,
	HTML5:              `DOCTYPE html`,
	XHTML5:             `DOCTYPE html`,
}

// String returns the configuration name of the mode.
func (c Compatibility) String() string {
	if name, ok := compatibilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Compatibility(%d)", int(c))
}

// Valid reports whether c is one of the supported dialects.
func (c Compatibility) Valid() bool {
	_, ok := compatibilityNames[c]
	return ok
}

// Namespaced reports whether documents of this dialect declare the OPS
// extension namespace (the EPUB 3 dialects).
func (c Compatibility) Namespaced() bool {
	return c == HTML5 || c == XHTML5
}

// Doctype returns the DOCTYPE directive body for the dialect.
func (c Compatibility) Doctype() (string, error) {
	d, ok := doctypes[c]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCompatibility, c)
	}
	return d, nil
}

// ParseCompatibility resolves a configuration name (case-insensitive).
func ParseCompatibility(name string) (Compatibility, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for c, n := range compatibilityNames {
		if n == lower {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCompatibility, name)
}

// CompatibilityNames lists the accepted configuration names.
func CompatibilityNames() []string {
	return []string{
		XHTML11.String(),
		XHTML1Strict.String(),
		XHTML1Transitional.String(),
		HTML5.String(),
		XHTML5.String(),
	}
}
