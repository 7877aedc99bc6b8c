package cache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/capfs/pkg/capfs/entry"
)

// countingSource wraps a file entry and counts parse calls.
type countingSource struct {
	file  *entry.File
	loads int
}

func (s *countingSource) Path() string { return s.file.Path() }

func (s *countingSource) Modified() (time.Time, bool) { return s.file.Modified() }

func (s *countingSource) LoadData(typ string) (any, error) {
	s.loads++
	return s.file.LoadData(typ)
}

func chtimes(path string, at time.Time) error {
	return os.Chtimes(path, at, at)
}

func TestCacheReadThrough(t *testing.T) {
	dir := entry.NewDirectory(t.TempDir())
	f := dir.GetFile("config.json")
	require.NoError(t, f.Write(`{"a":1}`))

	src := &countingSource{file: f}
	c := New()

	first, err := c.Load(src, "json")
	require.NoError(t, err)
	second, err := c.Load(src, "json")
	require.NoError(t, err)

	assert.Equal(t, 1, src.loads, "second load should hit the cache")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCacheReloadsOnMtimeChange(t *testing.T) {
	dir := entry.NewDirectory(t.TempDir())
	f := dir.GetFile("config.json")
	require.NoError(t, f.Write(`{"a":1}`))

	src := &countingSource{file: f}
	c := New()

	_, err := c.Load(src, "json")
	require.NoError(t, err)

	// Rewrite and force a visibly different mtime.
	require.NoError(t, f.Write(`{"a":2}`))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, chtimes(f.Path(), future))

	v, err := c.Load(src, "json")
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, float64(2), m["a"])
	assert.Equal(t, 2, src.loads)
}

func TestCacheBypassesOnProbeFailure(t *testing.T) {
	dir := entry.NewDirectory(t.TempDir())
	ghost := dir.GetFile("ghost.json")

	c := New()
	_, err := c.Load(&countingSource{file: ghost}, "json")
	require.Error(t, err)
	assert.Equal(t, 0, c.Len(), "failed probe must not populate the cache")
}

func TestCacheDistinguishesTypes(t *testing.T) {
	dir := entry.NewDirectory(t.TempDir())
	f := dir.GetFile("config.json")
	require.NoError(t, f.Write(`{"a":1}`))

	src := &countingSource{file: f}
	c := New()

	_, err := c.Load(src, "json")
	require.NoError(t, err)
	_, err = c.Load(src, "any")
	require.NoError(t, err)
	assert.Equal(t, 2, src.loads, "a different type token must re-parse")
	assert.Equal(t, 2, c.Len(), "tokens cache side by side")

	// Alternating tokens must not evict one another.
	_, err = c.Load(src, "json")
	require.NoError(t, err)
	_, err = c.Load(src, "any")
	require.NoError(t, err)
	assert.Equal(t, 2, src.loads, "both tokens should now be cache hits")
}

func TestInvalidate(t *testing.T) {
	dir := entry.NewDirectory(t.TempDir())
	f := dir.GetFile("config.json")
	require.NoError(t, f.Write(`{"a":1}`))

	src := &countingSource{file: f}
	c := New()

	_, err := c.Load(src, "json")
	require.NoError(t, err)
	_, err = c.Load(src, "any")
	require.NoError(t, err)
	c.Invalidate(f.Path())
	assert.Equal(t, 0, c.Len(), "invalidation covers every token for the path")

	_, err = c.Load(src, "json")
	require.NoError(t, err)
	assert.Equal(t, 3, src.loads)
}
