// Package validation provides the runtime argument checks performed at
// the boundary of every public capfs operation, before any I/O is
// attempted. It exposes a single operation: assert that a value matches
// a type descriptor, optionally disallowing empty values.
package validation

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/capfs/pkg/capfs/core"
)

// Descriptor names the shape an argument must have.
type Descriptor int

const (
	// String accepts any Go string.
	String Descriptor = iota
	// Path accepts a string usable as a path fragment.
	Path
	// Pattern accepts a string usable as a glob pattern.
	Pattern
	// DataType accepts a string naming a LoadData parser token.
	DataType
	// BinaryPayload accepts one of the recognized binary payload shapes:
	// a byte slice, a growable bytes.Buffer, an opaque io.Reader, or a
	// plain string of raw bytes.
	BinaryPayload
)

func (d Descriptor) String() string {
	switch d {
	case String:
		return "string"
	case Path:
		return "path"
	case Pattern:
		return "pattern"
	case DataType:
		return "data type"
	case BinaryPayload:
		return "binary payload"
	default:
		return fmt.Sprintf("descriptor(%d)", int(d))
	}
}

// Assert checks that value matches the descriptor. With disallowEmpty
// set, an empty string or zero-length payload is also rejected. The name
// identifies the argument in the failure message. All failures are
// InvalidArgument errors.
func Assert(name string, value any, d Descriptor, disallowEmpty bool) error {
	switch d {
	case String, Path, Pattern, DataType:
		s, ok := value.(string)
		if !ok {
			return core.NewInvalidArgument(name, fmt.Sprintf("expected a %s string, got %T", d, value), nil)
		}
		if disallowEmpty && strings.TrimSpace(s) == "" {
			return core.NewInvalidArgument(name, fmt.Sprintf("%s must not be empty", d), nil)
		}
		return nil
	case BinaryPayload:
		switch v := value.(type) {
		case []byte:
			if disallowEmpty && len(v) == 0 {
				return core.NewInvalidArgument(name, "binary payload must not be empty", nil)
			}
			return nil
		case *bytes.Buffer:
			if v == nil {
				return core.NewInvalidArgument(name, "binary payload buffer is nil", nil)
			}
			if disallowEmpty && v.Len() == 0 {
				return core.NewInvalidArgument(name, "binary payload must not be empty", nil)
			}
			return nil
		case string:
			if disallowEmpty && v == "" {
				return core.NewInvalidArgument(name, "binary payload must not be empty", nil)
			}
			return nil
		case io.Reader:
			if v == nil {
				return core.NewInvalidArgument(name, "binary payload reader is nil", nil)
			}
			return nil
		default:
			return core.NewInvalidArgument(name, fmt.Sprintf("unsupported binary payload type %T", value), nil)
		}
	default:
		return core.NewInvalidArgument(name, fmt.Sprintf("unknown descriptor %v", d), nil)
	}
}
