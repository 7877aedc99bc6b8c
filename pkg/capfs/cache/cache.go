// Package cache provides a small mtime-based read-through cache for
// parsed file contents. It handles read-time freshness only; it is not a
// mutual exclusion mechanism between writers.
package cache

import (
	"sync"
	"time"
)

// Source is the slice of a file entry the cache consumes. Both
// entry.File and virtual.File satisfy it.
type Source interface {
	// Path is the resolved real path; it keys the cache.
	Path() string
	// Modified returns the current mtime; false means the probe failed.
	Modified() (time.Time, bool)
	// LoadData reads and parses the content for the given type token.
	LoadData(typ string) (any, error)
}

type record struct {
	modified time.Time
	value    any
}

type key struct {
	path string
	typ  string
}

// Cache is a read-through cache keyed by (resolved path, type token), so
// loads of the same file under different tokens coexist. A hit requires
// the stored mtime to equal the file's current mtime; when the mtime
// probe fails the cache is bypassed entirely.
type Cache struct {
	mu      sync.RWMutex
	records map[key]record
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{records: make(map[key]record)}
}

// Load returns the parsed content of src, reusing the cached value while
// the file's mtime is unchanged.
func (c *Cache) Load(src Source, typ string) (any, error) {
	modified, ok := src.Modified()
	if !ok {
		return src.LoadData(typ)
	}
	k := key{path: src.Path(), typ: typ}

	c.mu.RLock()
	rec, hit := c.records[k]
	c.mu.RUnlock()
	if hit && rec.modified.Equal(modified) {
		return rec.value, nil
	}

	value, err := src.LoadData(typ)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.records[k] = record{modified: modified, value: value}
	c.mu.Unlock()
	return value, nil
}

// Invalidate drops every record for a resolved path, across all type
// tokens.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	for k := range c.records {
		if k.path == path {
			delete(c.records, k)
		}
	}
	c.mu.Unlock()
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
