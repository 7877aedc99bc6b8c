package entry

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/capfs/pkg/capfs/core"
	"github.com/arthur-debert/capfs/pkg/capfs/validation"
)

// File is a handle on one file. Like Directory, its metadata is resolved
// once and immutable.
type File struct {
	meta Metadata
}

// NewFile constructs a file entry for the supplied path. Construction is
// purely syntactic and never fails because the target does not exist.
func NewFile(supplied string) *File {
	return &File{meta: newMetadata(supplied)}
}

// Path returns the resolved absolute path.
func (f *File) Path() string { return f.meta.Path() }

// Name returns the file's base name.
func (f *File) Name() string { return f.meta.Base() }

// Stem returns the base name without its extension.
func (f *File) Stem() string { return f.meta.Stem() }

// Ext returns the extension including the leading dot, or "".
func (f *File) Ext() string { return f.meta.Ext() }

// Locator returns the file-scheme locator.
func (f *File) Locator() string { return f.meta.Locator() }

// Meta returns the frozen metadata.
func (f *File) Meta() Metadata { return f.meta }

// Directory returns an entry for the directory holding this file.
func (f *File) Directory() *Directory {
	return NewDirectory(f.meta.Dir())
}

// Exists reports whether the resolved path exists and is a regular file.
// Never fails.
func (f *File) Exists() bool {
	info, err := os.Stat(f.meta.platformPath())
	return err == nil && !info.IsDir()
}

// Size returns the file's size in bytes. The bool is false when the file
// cannot be stat'ed; probes never fail.
func (f *File) Size() (int64, bool) {
	info, err := os.Stat(f.meta.platformPath())
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), true
}

// Modified returns the file's modification time. The bool is false when
// the file cannot be stat'ed; probes never fail.
func (f *File) Modified() (time.Time, bool) {
	info, err := os.Stat(f.meta.platformPath())
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// CanRead reports whether the file can be opened for reading.
func (f *File) CanRead() bool {
	h, err := os.Open(f.meta.platformPath())
	if err != nil {
		return false
	}
	_ = h.Close()
	return true
}

// CanWrite reports whether the existing file can be opened for writing.
func (f *File) CanWrite() bool {
	h, err := os.OpenFile(f.meta.platformPath(), os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	_ = h.Close()
	return true
}

// Read returns the file's content as text. Fails NotFound when the
// target is absent.
func (f *File) Read() (string, error) {
	data, err := f.ReadBinary()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBinary returns the file's raw content. Fails NotFound when the
// target is absent, InvalidState for any other read failure.
func (f *File) ReadBinary() ([]byte, error) {
	data, err := os.ReadFile(f.meta.platformPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.NewNotFound(f.meta.Path(), "read file", err)
		}
		return nil, core.NewInvalidState(f.meta.Path(), "read file", err)
	}
	return data, nil
}

// Write stores text content. Fails InvalidState when the parent
// directory is missing.
func (f *File) Write(content string) error {
	if err := validation.Assert("content", content, validation.String, false); err != nil {
		return err
	}
	return f.writeBytes([]byte(content))
}

// WriteBinary stores raw content. The payload must be one of the
// recognized binary shapes ([]byte, *bytes.Buffer, io.Reader, or a raw
// string); anything else fails InvalidArgument. A missing parent
// directory fails InvalidState.
func (f *File) WriteBinary(data any) error {
	if err := validation.Assert("data", data, validation.BinaryPayload, false); err != nil {
		return err
	}
	var buf []byte
	switch v := data.(type) {
	case []byte:
		buf = v
	case *bytes.Buffer:
		buf = v.Bytes()
	case string:
		buf = []byte(v)
	case io.Reader:
		b, err := io.ReadAll(v)
		if err != nil {
			return core.NewInvalidArgument(f.meta.Path(), "reading binary payload", err)
		}
		buf = b
	}
	return f.writeBytes(buf)
}

func (f *File) writeBytes(data []byte) error {
	dir := f.Directory()
	if !dir.Exists() {
		return core.NewInvalidState(f.meta.Path(), "write file",
			fmt.Errorf("parent directory '%s' does not exist", f.meta.Dir()))
	}
	if err := os.WriteFile(f.meta.platformPath(), data, 0o644); err != nil {
		return core.NewInvalidState(f.meta.Path(), "write file", err)
	}
	return nil
}
