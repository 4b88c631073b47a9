package assets

import (
	"fmt"
	"strings"
)

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// Loader loads stylesheets by name (without the .css extension).
type Loader interface {
	// LoadStyle returns the raw bytes of the style.
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) ([]byte, error)
}

// ValidateAssetName checks that a style name is safe for use as a filename.
// Path separators and dots are rejected so a name can neither escape the
// styles directory nor change the extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
