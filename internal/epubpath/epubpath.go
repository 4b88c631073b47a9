// Package epubpath models locations inside an EPUB package and computes the
// relative references that content documents use to point at each other.
//
// Locations are slash separated and relative to the package root, regardless
// of the host operating system.
package epubpath

import (
	"path"
	"strings"
)

// ContentDir is the directory holding the package document (content.opf).
// Content document hrefs are expressed relative to it.
var ContentDir = Dir("OEBPS")

// Path is a location inside the package. A Path is either a directory
// (Name empty) or a file inside a directory.
type Path struct {
	dir  []string
	name string
}

// Dir returns a directory location. Leading slashes, "." segments and
// redundant separators are removed.
func Dir(p string) Path {
	return Path{dir: split(p)}
}

// File returns a file location. The last segment of p is the file name.
func File(p string) Path {
	parts := split(p)
	if len(parts) == 0 {
		return Path{}
	}
	return Path{dir: parts[:len(parts)-1], name: parts[len(parts)-1]}
}

// Join returns the location of file name inside p. If p is a file location,
// name is placed next to it.
func (p Path) Join(name string) Path {
	base := p.Dir()
	joined := File(path.Join(base.String(), name))
	return joined
}

// Dir returns the directory containing p. For a directory it returns p.
func (p Path) Dir() Path {
	return Path{dir: p.dir}
}

// Base returns the file name, or the last directory segment for directories.
func (p Path) Base() string {
	if p.name != "" {
		return p.name
	}
	if len(p.dir) == 0 {
		return ""
	}
	return p.dir[len(p.dir)-1]
}

// IsDir reports whether p names a directory.
func (p Path) IsDir() bool {
	return p.name == ""
}

// String returns the slash separated form, without a leading slash.
func (p Path) String() string {
	parts := p.dir
	if p.name != "" {
		parts = append(append([]string(nil), p.dir...), p.name)
	}
	return strings.Join(parts, "/")
}

// Rel returns the reference that a document located in from uses to reach p.
// If from is a file location, its directory is used.
//
// With flat set, every file of the package lives in a single directory and
// the reference is just the base name.
func (p Path) Rel(from Path, flat bool) string {
	if flat {
		return p.Base()
	}

	base := from.dir
	target := p.dir

	common := 0
	for common < len(base) && common < len(target) && base[common] == target[common] {
		common++
	}

	var parts []string
	for range base[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, target[common:]...)
	if p.name != "" {
		parts = append(parts, p.name)
	}
	if len(parts) == 0 {
		return "."
	}
	return strings.Join(parts, "/")
}

func split(p string) []string {
	p = strings.ReplaceAll(p, "\\", "/")
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(cleaned, "/"), "/")
}
