package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newWithClock[V any](cfg Config) (*Cache[V], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	c := New[V](cfg)
	c.now = clock.now
	return c, clock
}

func TestCache_GetSet(t *testing.T) {
	c := New[string](Config{})

	_, ok := c.Get("Dune")
	assert.False(t, ok)

	c.Set("Dune", "Real info about Dune")
	v, ok := c.Get("Dune")
	require.True(t, ok)
	assert.Equal(t, "Real info about Dune", v)

	hits, misses, rate := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.InDelta(t, 50.0, rate, 0.001)
}

func TestCache_TTL(t *testing.T) {
	c, clock := newWithClock[int](Config{TTL: time.Minute})

	c.Set("a", 1)
	c.SetWithTTL("b", 2, 0)

	clock.t = clock.t.Add(2 * time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok, "expired entry must not be returned")
	v, ok := c.Get("b")
	assert.True(t, ok, "zero TTL never expires")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Size())
}

func TestCache_EvictsOldestInsertion(t *testing.T) {
	c := New[int](Config{MaxItems: 2})

	c.Set("first", 1)
	c.Set("second", 2)
	c.Set("first", 10) // overwrite does not evict
	assert.Equal(t, 2, c.Size())

	c.Set("third", 3)
	assert.Equal(t, 2, c.Size())

	_, ok := c.Get("second")
	assert.False(t, ok)
	v, ok := c.Get("first")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[string](Config{})
	calls := 0
	load := func() (string, error) {
		calls++
		return "loaded", nil
	}

	for range 3 {
		v, err := c.GetOrSet("k", load)
		require.NoError(t, err)
		assert.Equal(t, "loaded", v)
	}
	assert.Equal(t, 1, calls)

	_, err := c.GetOrSet("bad", func() (string, error) { return "", errors.New("boom") })
	require.Error(t, err)
	_, ok := c.Get("bad")
	assert.False(t, ok, "errors are not cached")
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[int](Config{})
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
