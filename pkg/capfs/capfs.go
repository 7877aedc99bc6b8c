// Package capfs is the top-level entry point of the confined
// filesystem-access layer. A process constructs a single cap, usually at
// its working directory, and performs all subsequent access through the
// virtual view it roots.
package capfs

import (
	"github.com/arthur-debert/capfs/pkg/capfs/virtual"
)

// New constructs the cap at the current working directory.
func New() *virtual.Directory {
	return NewAt("")
}

// NewAt constructs the cap at the given filesystem path.
func NewAt(path string) *virtual.Directory {
	root := virtual.NewCap(path)
	log := Logger()
	log.Debug().Str("real", root.RealPath()).Msg("cap constructed")
	return root
}
