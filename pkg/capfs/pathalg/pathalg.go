// Package pathalg provides the pure path algebra capfs is built on:
// separator normalization, file-scheme locator conversion, overlap-based
// merging, multi-strategy resolution, containment testing, and structural
// decomposition. Every function is stateless and performs no I/O.
package pathalg

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Separator is the canonical separator all paths are normalized to.
const Separator = "/"

// parentMarker starts a fragment that explicitly climbs out of its base.
const parentMarker = ".."

// NormalizeSeparators converts platform-specific separators to the
// canonical forward-slash form. Idempotent.
func NormalizeSeparators(p string) string {
	return strings.ReplaceAll(p, "\\", Separator)
}

// ToPlatform converts a canonical path back to the host's separator form.
func ToPlatform(p string) string {
	if filepath.Separator == '/' {
		return p
	}
	return strings.ReplaceAll(p, Separator, string(filepath.Separator))
}

// ToLocator converts an absolute path to a file-scheme locator. Used in
// best-effort display and loading contexts, so a path that cannot be
// converted is returned unchanged rather than failing.
func ToLocator(p string) string {
	p = NormalizeSeparators(p)
	if !strings.HasPrefix(p, Separator) {
		return p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// FromLocator converts a file-scheme locator back to a plain path. A
// string that is not a parseable file locator is returned unchanged.
func FromLocator(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.Scheme != "file" {
		return locator
	}
	return u.Path
}

// segments splits p on sep, dropping empty elements.
func segments(p, sep string) []string {
	var segs []string
	for _, s := range strings.Split(p, sep) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func equalSegments(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MergeOverlapping combines two paths by locating a shared segment
// between the tail of a and the head of b, so a caller can extend a known
// base with a fragment that restates part of it ("/tmp/project" merged
// with "project/src" yields "/tmp/project/src"). Scanning runs from the
// END of a and takes the LAST segment equal to b's first segment. When no
// overlap exists the result is plain concatenation. Identical segment
// sequences return a unchanged.
func MergeOverlapping(a, b, sep string) string {
	if sep == "" {
		sep = Separator
	}
	segsA := segments(a, sep)
	segsB := segments(b, sep)
	if equalSegments(segsA, segsB) {
		return a
	}
	if len(segsA) > 0 && len(segsB) > 0 {
		head := segsB[0]
		for i := len(segsA) - 1; i >= 0; i-- {
			if segsA[i] != head {
				continue
			}
			merged := append(append([]string{}, segsA[:i]...), segsB...)
			joined := strings.Join(merged, sep)
			if strings.HasPrefix(a, sep) {
				joined = sep + joined
			}
			return joined
		}
	}
	if strings.HasSuffix(a, sep) {
		return a + b
	}
	return a + sep + b
}

// Resolve combines a base path with a target using one of several
// strategies:
//
//   - identical inputs return as-is, and an empty side yields the other;
//   - an absolute target stands alone: the result is its absolute form
//     and the base is ignored;
//   - a target beginning with an explicit parent-directory marker is
//     joined lexically, so traversal is honored rather than clamped;
//   - anything else is an overlap merge against the base.
func Resolve(from, to string) string {
	from = NormalizeSeparators(from)
	to = NormalizeSeparators(to)
	if from == to {
		return from
	}
	if to == "" {
		return from
	}
	if from == "" {
		return to
	}
	if strings.HasPrefix(to, Separator) || filepath.IsAbs(ToPlatform(to)) {
		abs, err := filepath.Abs(ToPlatform(to))
		if err != nil {
			return to
		}
		return NormalizeSeparators(abs)
	}
	if to == parentMarker || strings.HasPrefix(to, parentMarker+Separator) {
		return NormalizeSeparators(path.Join(from, to))
	}
	return MergeOverlapping(from, to, Separator)
}

// Contains reports whether candidate is a descendant of container. The
// container is bounded with a trailing separator before the prefix test
// so that "/a/bc" is not mistaken for a child of "/a/b".
func Contains(container, candidate string) bool {
	if !strings.HasSuffix(container, Separator) {
		container += Separator
	}
	return strings.HasPrefix(candidate, container)
}

// RelativeByOverlap returns the part of to below the overlap with from:
// the FIRST segment of to equal to from's LAST segment anchors the
// overlap, and everything after it is returned. Equal inputs yield the
// empty string. The bool is false when no overlap exists.
//
// Note the deliberate asymmetry with MergeOverlapping, which anchors on
// the LAST matching segment.
func RelativeByOverlap(from, to, sep string) (string, bool) {
	if sep == "" {
		sep = Separator
	}
	if from == to {
		return "", true
	}
	segsFrom := segments(from, sep)
	segsTo := segments(to, sep)
	if len(segsFrom) == 0 || len(segsTo) == 0 {
		return "", false
	}
	anchor := segsFrom[len(segsFrom)-1]
	for i, s := range segsTo {
		if s == anchor {
			return strings.Join(segsTo[i+1:], sep), true
		}
	}
	return "", false
}

// CommonRoot returns the shared leading portion of from and to, anchored
// on the LAST segment of to equal to from's LAST segment. The bool is
// false when no overlap exists.
func CommonRoot(from, to, sep string) (string, bool) {
	if sep == "" {
		sep = Separator
	}
	segsFrom := segments(from, sep)
	segsTo := segments(to, sep)
	if len(segsFrom) == 0 || len(segsTo) == 0 {
		return "", false
	}
	anchor := segsFrom[len(segsFrom)-1]
	for i := len(segsTo) - 1; i >= 0; i-- {
		if segsTo[i] != anchor {
			continue
		}
		end := i + 1
		if end > len(segsFrom) {
			end = len(segsFrom)
		}
		joined := strings.Join(segsFrom[:end], sep)
		if strings.HasPrefix(from, sep) {
			joined = sep + joined
		}
		return joined, true
	}
	return "", false
}

// Parts is the structural decomposition of a path.
type Parts struct {
	Root string // leading separator for absolute paths, empty otherwise
	Dir  string // everything up to the final element
	Base string // the final element
	Stem string // Base without Ext
	Ext  string // substring after the final dot in Base, dot included
}

// Decompose splits a normalized path into its structural parts.
func Decompose(p string) Parts {
	p = NormalizeSeparators(p)
	var parts Parts
	if strings.HasPrefix(p, Separator) {
		parts.Root = Separator
	}
	parts.Dir = path.Dir(p)
	parts.Base = path.Base(p)
	if parts.Base == Separator || parts.Base == "." {
		parts.Base = ""
	}
	parts.Ext = path.Ext(parts.Base)
	parts.Stem = strings.TrimSuffix(parts.Base, parts.Ext)
	return parts
}
