// Package entry provides the base filesystem entry abstraction: directory
// and file handles carrying immutable resolved metadata, existence and
// content primitives, enumeration, and child construction through the
// path algebra.
package entry

import (
	"os"

	"github.com/arthur-debert/capfs/pkg/capfs/pathalg"
)

// Metadata is the resolved description of one filesystem node. It is
// built once at construction and never mutated; "moving" an entry to a
// different path always means constructing a new entry.
type Metadata struct {
	path    string
	root    string
	dir     string
	base    string
	stem    string
	ext     string
	locator string
}

// newMetadata resolves a supplied path into frozen metadata. An empty
// path defaults to the current working directory; relative paths resolve
// against it.
func newMetadata(supplied string) Metadata {
	p := pathalg.NormalizeSeparators(supplied)
	cwd, err := os.Getwd()
	if err != nil {
		cwd = pathalg.Separator
	}
	cwd = pathalg.NormalizeSeparators(cwd)
	if p == "" {
		p = cwd
	} else {
		p = pathalg.Resolve(cwd, p)
	}
	parts := pathalg.Decompose(p)
	return Metadata{
		path:    p,
		root:    parts.Root,
		dir:     parts.Dir,
		base:    parts.Base,
		stem:    parts.Stem,
		ext:     parts.Ext,
		locator: pathalg.ToLocator(p),
	}
}

// Path returns the resolved, separator-normalized absolute path.
func (m Metadata) Path() string { return m.path }

// Root returns the path's root component.
func (m Metadata) Root() string { return m.root }

// Dir returns everything up to the final path element.
func (m Metadata) Dir() string { return m.dir }

// Base returns the final path element.
func (m Metadata) Base() string { return m.base }

// Stem returns the base without its extension.
func (m Metadata) Stem() string { return m.stem }

// Ext returns the extension including the leading dot, or "".
func (m Metadata) Ext() string { return m.ext }

// Locator returns the file-scheme locator for the path.
func (m Metadata) Locator() string { return m.locator }

// platformPath is the host-native form used for actual I/O.
func (m Metadata) platformPath() string {
	return pathalg.ToPlatform(m.path)
}
