// Package virtual provides the capped view over the base entry types: a
// dual coordinate system where callers see cap-relative virtual paths and
// all I/O happens through real absolute paths. Containment is structural:
// every entry is constructed from an already-contained parent (or is the
// cap itself), so no per-operation escape check is needed.
package virtual

import (
	"path"
	"strings"

	"github.com/arthur-debert/capfs/pkg/capfs/entry"
	"github.com/arthur-debert/capfs/pkg/capfs/pathalg"
)

// Root is the virtual path of every cap.
const Root = pathalg.Separator

// Directory is a directory inside a capped tree. It tracks a
// cap-relative virtual path, a backing real entry, its structural parent,
// and the cap at the root of its tree. The cap reference is propagated
// unchanged down the tree, never recomputed, so an entire subtree agrees
// on one root identity.
type Directory struct {
	virtualPath string
	real        *entry.Directory
	parent      *Directory // nil means this is the cap
	cap         *Directory
}

// Listing is the result of enumerating a virtual directory.
type Listing struct {
	Files       []*File
	Directories []*Directory
}

// NewCap constructs the root of a capped tree at the given filesystem
// path. The cap has no structural parent, its virtual path is the root
// marker, and it is its own cap reference.
func NewCap(path string) *Directory {
	d := &Directory{
		virtualPath: Root,
		real:        entry.NewDirectory(path),
	}
	d.cap = d
	return d
}

// confine reduces a child fragment to its cap-safe form: separators are
// normalized, leading separators are stripped so the fragment cannot
// stand alone as an absolute path, and parent-traversal segments are
// resolved lexically with anything that would climb past the parent
// clamped away. The result is always a plain relative fragment, so every
// child constructed from a contained parent is itself contained.
func confine(fragment string) string {
	fragment = pathalg.NormalizeSeparators(fragment)
	fragment = strings.TrimLeft(fragment, pathalg.Separator)
	cleaned := path.Clean(fragment)
	for cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		cleaned = strings.TrimPrefix(cleaned, "..")
		cleaned = strings.TrimPrefix(cleaned, pathalg.Separator)
	}
	if cleaned == "." || cleaned == "" {
		return ""
	}
	return cleaned
}

// newChild builds a directory below parent. The confined fragment
// resolves against the parent's virtual path for the virtual coordinates
// and against the parent's real path for the real ones; a fragment that
// clamps to nothing mirrors the parent's coordinates.
func newChild(fragment string, parent *Directory) *Directory {
	fragment = confine(fragment)
	return &Directory{
		virtualPath: pathalg.Resolve(parent.virtualPath, fragment),
		real:        entry.NewDirectory(pathalg.Resolve(parent.real.Path(), fragment)),
		parent:      parent,
		cap:         parent.cap,
	}
}

// VirtualPath returns the cap-relative path, always starting with the
// separator. The cap's own virtual path is the root marker.
func (d *Directory) VirtualPath() string { return d.virtualPath }

// RealPath returns the absolute filesystem path backing this directory.
func (d *Directory) RealPath() string { return d.real.Path() }

// Real returns the backing real entry. This is the escape hatch for code
// that intentionally needs to step outside the capped view.
func (d *Directory) Real() *entry.Directory { return d.real }

// Parent returns the structural parent this directory was constructed
// from, or nil when this directory is the cap. It is never re-derived
// from path segments.
func (d *Directory) Parent() *Directory { return d.parent }

// ParentPath returns the structural parent's virtual path, or "" for the
// cap.
func (d *Directory) ParentPath() string {
	if d.parent == nil {
		return ""
	}
	return d.parent.virtualPath
}

// Cap returns the root of this directory's tree.
func (d *Directory) Cap() *Directory { return d.cap }

// IsCap reports whether this directory is the root of its tree.
func (d *Directory) IsCap() bool { return d.parent == nil }

// Name returns the directory's base name.
func (d *Directory) Name() string { return d.real.Name() }

// Exists reports whether the backing directory exists. Never fails.
func (d *Directory) Exists() bool { return d.real.Exists() }

// AssureExists creates the backing directory if absent.
func (d *Directory) AssureExists() error { return d.real.AssureExists() }

// Delete removes the backing directory only if empty.
func (d *Directory) Delete() error { return d.real.Delete() }

// GetDirectory constructs a child directory with this directory as its
// structural parent.
func (d *Directory) GetDirectory(fragment string) *Directory {
	return newChild(fragment, d)
}

// GetFile constructs a child file with this directory as its structural
// parent.
func (d *Directory) GetFile(name string) *File {
	return newChildFile(name, d)
}

// Read lists direct children through the backing entry, re-wrapped as
// virtual entries whose structural parent is this directory. An empty
// pattern lists everything.
func (d *Directory) Read(pattern string) (*Listing, error) {
	real, err := d.real.Read(pattern)
	if err != nil {
		return nil, err
	}
	return d.wrap(real), nil
}

// Glob enumerates recursively through the backing entry; matches at any
// depth are re-wrapped relative to this directory.
func (d *Directory) Glob(pattern string) (*Listing, error) {
	real, err := d.real.Glob(pattern)
	if err != nil {
		return nil, err
	}
	return d.wrap(real), nil
}

// wrap converts a real listing into a virtual one. Each child's fragment
// is its real path below this directory, so matches from arbitrary depth
// keep the right virtual coordinates.
func (d *Directory) wrap(real *entry.Listing) *Listing {
	listing := &Listing{}
	base := d.real.Path()
	for _, rd := range real.Directories {
		listing.Directories = append(listing.Directories, newChild(fragmentBelow(base, rd.Path()), d))
	}
	for _, rf := range real.Files {
		listing.Files = append(listing.Files, newChildFile(fragmentBelow(base, rf.Path()), d))
	}
	return listing
}

// fragmentBelow returns child expressed relative to base, or the child's
// base name when it is not lexically below base.
func fragmentBelow(base, child string) string {
	if pathalg.Contains(base, child) {
		return strings.TrimPrefix(child, base+pathalg.Separator)
	}
	return pathalg.Decompose(child).Base
}
