// Package terms implements capability negotiation over terms documents:
// string-keyed trees loaded through the capped filesystem view, with
// file-reference indirections and key-by-key schema comparison.
package terms

import (
	"fmt"
	"path"
	"reflect"
	"sort"

	"github.com/gammazero/toposort"

	"github.com/arthur-debert/capfs/pkg/capfs/core"
	"github.com/arthur-debert/capfs/pkg/capfs/virtual"
)

// Document is a parsed terms tree.
type Document map[string]any

// RefKey marks a file-reference indirection: a map holding only this key
// is replaced by the resolved content of the referenced file, loaded
// relative to the referencing document's directory inside the cap.
const RefKey = "$ref"

// Conflict records one disagreement between two negotiated documents.
type Conflict struct {
	Key    string // dotted path of the conflicting key
	Ours   any
	Theirs any
}

// Load reads the named terms document from dir and resolves every
// file-reference indirection. Reference graphs are ordered and
// cycle-checked topologically; a reference cycle fails InvalidState, a
// document that is not a string-keyed tree fails ContentUnparseable.
func Load(dir *virtual.Directory, name string) (Document, error) {
	g := &graph{
		docs:     make(map[string]any),
		baseDirs: make(map[string]*virtual.Directory),
	}
	rootPath, err := g.gather(dir, name)
	if err != nil {
		return nil, err
	}

	sorted, err := toposort.Toposort(g.edges)
	if err != nil {
		return nil, core.NewInvalidState(rootPath, "resolve terms references", err)
	}

	resolved := make(map[string]any, len(g.docs))
	// Isolated documents carry no references and can resolve first.
	for p := range g.docs {
		if !g.inEdges[p] {
			resolved[p] = substitute(g.docs[p], g.baseDirs[p], resolved)
		}
	}
	for _, node := range sorted {
		p := node.(string)
		if _, done := resolved[p]; done {
			continue
		}
		resolved[p] = substitute(g.docs[p], g.baseDirs[p], resolved)
	}

	doc, ok := resolved[rootPath].(map[string]any)
	if !ok {
		return nil, core.NewContentUnparseable(rootPath, "terms", fmt.Errorf("document root is %T, not a map", resolved[rootPath]))
	}
	return Document(doc), nil
}

// graph accumulates the reference graph while gathering documents.
type graph struct {
	docs     map[string]any                // real path -> raw parsed tree
	baseDirs map[string]*virtual.Directory // real path -> directory refs resolve against
	edges    []toposort.Edge               // target before referrer
	inEdges  map[string]bool
}

// gather loads the document at fragment below dir, then recursively
// loads everything it references. Returns the document's real path.
func (g *graph) gather(dir *virtual.Directory, fragment string) (string, error) {
	file := dir.GetFile(fragment)
	key := file.Path()
	if _, seen := g.docs[key]; seen {
		return key, nil
	}
	raw, err := file.LoadData("any")
	if err != nil {
		return "", err
	}
	base := dir
	if sub := path.Dir(fragment); sub != "." && sub != "/" {
		base = dir.GetDirectory(sub)
	}
	g.docs[key] = raw
	g.baseDirs[key] = base

	for _, ref := range collectRefs(raw, nil) {
		target, err := g.gather(base, ref)
		if err != nil {
			return "", err
		}
		if g.inEdges == nil {
			g.inEdges = make(map[string]bool)
		}
		g.edges = append(g.edges, toposort.Edge{target, key})
		g.inEdges[target] = true
		g.inEdges[key] = true
	}
	return key, nil
}

// collectRefs returns every reference fragment inside v.
func collectRefs(v any, acc []string) []string {
	switch t := v.(type) {
	case map[string]any:
		if ref, ok := refFragment(t); ok {
			return append(acc, ref)
		}
		for _, val := range t {
			acc = collectRefs(val, acc)
		}
	case []any:
		for _, val := range t {
			acc = collectRefs(val, acc)
		}
	}
	return acc
}

// refFragment reports whether m is a pure indirection node.
func refFragment(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}
	ref, ok := m[RefKey].(string)
	return ref, ok
}

// substitute replaces every indirection node in v with its resolved
// target. Topological order guarantees targets resolve before referrers.
func substitute(v any, base *virtual.Directory, resolved map[string]any) any {
	switch t := v.(type) {
	case map[string]any:
		if ref, ok := refFragment(t); ok {
			return resolved[base.GetFile(ref).Path()]
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = substitute(val, base, resolved)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = substitute(val, base, resolved)
		}
		return out
	default:
		return v
	}
}

// Negotiate compares two resolved documents key-by-key. The returned
// document is the agreed subset: keys present in both sides whose values
// match, with matching subtrees merged recursively. Unequal scalar
// values for the same key are reported as conflicts.
func Negotiate(ours, theirs Document) (Document, []Conflict) {
	agreed := make(map[string]any)
	var conflicts []Conflict
	negotiate("", map[string]any(ours), map[string]any(theirs), agreed, &conflicts)
	return Document(agreed), conflicts
}

func negotiate(prefix string, ours, theirs, agreed map[string]any, conflicts *[]Conflict) {
	keys := make([]string, 0, len(ours))
	for k := range ours {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tv, shared := theirs[k]
		if !shared {
			continue
		}
		ov := ours[k]
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		om, oIsMap := ov.(map[string]any)
		tm, tIsMap := tv.(map[string]any)
		switch {
		case oIsMap && tIsMap:
			sub := make(map[string]any)
			negotiate(key, om, tm, sub, conflicts)
			agreed[k] = sub
		case reflect.DeepEqual(ov, tv):
			agreed[k] = ov
		default:
			*conflicts = append(*conflicts, Conflict{Key: key, Ours: ov, Theirs: tv})
		}
	}
}
