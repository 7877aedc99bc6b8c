package virtual

import (
	"time"

	"github.com/arthur-debert/capfs/pkg/capfs/entry"
	"github.com/arthur-debert/capfs/pkg/capfs/pathalg"
)

// File is a file inside a capped tree. All content I/O delegates to the
// backing real entry; the virtual coordinates are bookkeeping only.
type File struct {
	virtualPath string
	real        *entry.File
	parent      *Directory
	cap         *Directory
}

// newChildFile builds a file below parent, with the same confinement and
// dual path resolution as directories.
func newChildFile(name string, parent *Directory) *File {
	name = confine(name)
	return &File{
		virtualPath: pathalg.Resolve(parent.virtualPath, name),
		real:        entry.NewFile(pathalg.Resolve(parent.real.Path(), name)),
		parent:      parent,
		cap:         parent.cap,
	}
}

// VirtualPath returns the cap-relative path, always starting with the
// separator.
func (f *File) VirtualPath() string { return f.virtualPath }

// RealPath returns the absolute filesystem path backing this file.
func (f *File) RealPath() string { return f.real.Path() }

// Real returns the backing real entry.
func (f *File) Real() *entry.File { return f.real }

// Parent returns the structural parent this file was constructed from.
func (f *File) Parent() *Directory { return f.parent }

// ParentPath returns the structural parent's virtual path.
func (f *File) ParentPath() string { return f.parent.virtualPath }

// Cap returns the root of this file's tree.
func (f *File) Cap() *Directory { return f.cap }

// Name returns the file's base name.
func (f *File) Name() string { return f.real.Name() }

// Path returns the resolved real path; it keys caches the same way the
// backing entry does.
func (f *File) Path() string { return f.real.Path() }

// Exists reports whether the backing file exists. Never fails.
func (f *File) Exists() bool { return f.real.Exists() }

// Size returns the backing file's size; false on any failure.
func (f *File) Size() (int64, bool) { return f.real.Size() }

// Modified returns the backing file's mtime; false on any failure.
func (f *File) Modified() (time.Time, bool) { return f.real.Modified() }

// CanRead reports whether the backing file is readable.
func (f *File) CanRead() bool { return f.real.CanRead() }

// CanWrite reports whether the backing file is writable.
func (f *File) CanWrite() bool { return f.real.CanWrite() }

// Read returns the backing file's content as text.
func (f *File) Read() (string, error) { return f.real.Read() }

// ReadBinary returns the backing file's raw content.
func (f *File) ReadBinary() ([]byte, error) { return f.real.ReadBinary() }

// Write stores text content through the backing file.
func (f *File) Write(content string) error { return f.real.Write(content) }

// WriteBinary stores raw content through the backing file.
func (f *File) WriteBinary(data any) error { return f.real.WriteBinary(data) }

// LoadData reads and parses the backing file's content.
func (f *File) LoadData(typ string) (any, error) { return f.real.LoadData(typ) }
