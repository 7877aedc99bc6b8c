package entry

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/capfs/pkg/capfs/core"
	"github.com/arthur-debert/capfs/pkg/capfs/pathalg"
	"github.com/arthur-debert/capfs/pkg/capfs/validation"
)

// Directory is a handle on one directory. Its metadata is resolved once
// at construction and read-only thereafter; the only mutable state is the
// memoized parent reference, which is computed at most once.
type Directory struct {
	meta   Metadata
	parent parentCell
}

// parentCell distinguishes "not yet computed" from "computed, no parent"
// without a sentinel value.
type parentCell struct {
	once sync.Once
	dir  *Directory
}

// Listing is the result of enumerating a directory.
type Listing struct {
	Files       []*File
	Directories []*Directory
}

// NewDirectory constructs a directory entry for the supplied path. An
// empty path means the current working directory. Construction is purely
// syntactic and never fails because the target does not exist.
func NewDirectory(supplied string) *Directory {
	return &Directory{meta: newMetadata(supplied)}
}

// Path returns the resolved absolute path.
func (d *Directory) Path() string { return d.meta.Path() }

// Name returns the directory's base name.
func (d *Directory) Name() string { return d.meta.Base() }

// Locator returns the directory's file-scheme locator.
func (d *Directory) Locator() string { return d.meta.Locator() }

// Meta returns the frozen metadata.
func (d *Directory) Meta() Metadata { return d.meta }

// Exists reports whether the resolved path exists and is a directory.
// It never fails; every underlying error is reported as false.
func (d *Directory) Exists() bool {
	f, err := os.Open(d.meta.platformPath())
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.IsDir()
}

// Parent returns the entry for the parent directory, or nil when the
// resolved path is the filesystem root. The result is memoized for the
// lifetime of this entry.
func (d *Directory) Parent() *Directory {
	d.parent.once.Do(func() {
		up := path.Dir(d.meta.Path())
		if up == d.meta.Path() {
			return
		}
		d.parent.dir = NewDirectory(up)
	})
	return d.parent.dir
}

// WalkUp yields this directory, then each ancestor in order, terminating
// at the filesystem root inclusive. Each call produces an independent
// traversal.
func (d *Directory) WalkUp() iter.Seq[*Directory] {
	return func(yield func(*Directory) bool) {
		for cur := d; cur != nil; cur = cur.Parent() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Read lists direct children. An empty pattern lists everything; a
// non-empty pattern filters child names with glob-style matching scoped
// to the immediate directory.
func (d *Directory) Read(pattern string) (*Listing, error) {
	if err := validation.Assert("pattern", pattern, validation.Pattern, false); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(d.meta.platformPath())
	if err != nil {
		return nil, core.NewNotFound(d.meta.Path(), "read directory", err)
	}
	listing := &Listing{}
	for _, e := range entries {
		if pattern != "" {
			ok, merr := doublestar.Match(pattern, e.Name())
			if merr != nil {
				return nil, core.NewInvalidArgument(pattern, "malformed glob pattern", merr)
			}
			if !ok {
				continue
			}
		}
		if e.IsDir() {
			listing.Directories = append(listing.Directories, d.GetDirectory(e.Name()))
		} else {
			listing.Files = append(listing.Files, d.GetFile(e.Name()))
		}
	}
	return listing, nil
}

// Glob enumerates recursively with a doublestar pattern. Each match's
// resolved path is rebuilt from its reported parent directory and name,
// since matches can come from arbitrary depth.
func (d *Directory) Glob(pattern string) (*Listing, error) {
	if err := validation.Assert("pattern", pattern, validation.Pattern, true); err != nil {
		return nil, err
	}
	listing := &Listing{}
	walk := func(match string, de fs.DirEntry) error {
		parent := path.Dir(match)
		resolved := d.meta.Path()
		if parent != "." {
			resolved += pathalg.Separator + parent
		}
		resolved += pathalg.Separator + de.Name()
		if de.IsDir() {
			listing.Directories = append(listing.Directories, NewDirectory(resolved))
		} else {
			listing.Files = append(listing.Files, NewFile(resolved))
		}
		return nil
	}
	err := doublestar.GlobWalk(os.DirFS(d.meta.platformPath()), pattern, walk)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, core.NewInvalidArgument(pattern, "malformed glob pattern", err)
		}
		return nil, core.NewNotFound(d.meta.Path(), "glob directory", err)
	}
	return listing, nil
}

// AssureExists creates the directory (and any missing ancestors) if
// absent. An already existing directory is success; any other creation
// failure is an InvalidState error wrapping the cause.
func (d *Directory) AssureExists() error {
	if err := os.MkdirAll(d.meta.platformPath(), 0o755); err != nil {
		return core.NewInvalidState(d.meta.Path(), "create directory", err)
	}
	return nil
}

// Delete removes the directory only if it is empty. It fails NotFound
// when the directory does not exist and never recurses; callers needing
// recursive removal must enumerate and delete children first.
func (d *Directory) Delete() error {
	if !d.Exists() {
		return core.NewNotFound(d.meta.Path(), "delete directory", nil)
	}
	if err := os.Remove(d.meta.platformPath()); err != nil {
		return core.NewInvalidState(d.meta.Path(), "delete directory", err)
	}
	return nil
}

// GetDirectory constructs a child directory entry by overlap-merging the
// receiver's path with the given fragment.
func (d *Directory) GetDirectory(fragment string) *Directory {
	fragment = pathalg.NormalizeSeparators(fragment)
	if strings.TrimSpace(fragment) == "" {
		return NewDirectory(d.meta.Path())
	}
	return NewDirectory(pathalg.MergeOverlapping(d.meta.Path(), fragment, pathalg.Separator))
}

// GetFile constructs a child file entry by overlap-merging the receiver's
// path with the given name.
func (d *Directory) GetFile(name string) *File {
	name = pathalg.NormalizeSeparators(name)
	return NewFile(pathalg.MergeOverlapping(d.meta.Path(), name, pathalg.Separator))
}
