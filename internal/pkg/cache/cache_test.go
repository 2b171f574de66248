package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(start time.Time) (*Cache, *time.Time) {
	c := New()
	current := start
	c.now = func() time.Time { return current }
	return c, &current
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(time.Now())

	c.Set(Key("daily_hours", "2024-03"), 42, 10*time.Minute)

	v, ok := c.Get(Key("daily_hours", "2024-03"))
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = c.Get(Key("daily_hours", "2024-04"))
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c, now := newTestCache(time.Now())

	c.Set("k", "v", 10*time.Minute)
	*now = now.Add(11 * time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_NonPositiveTTLDisablesCaching(t *testing.T) {
	c, _ := newTestCache(time.Now())

	c.Set("k", "v", 0)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_Sweep(t *testing.T) {
	c, now := newTestCache(time.Now())

	c.Set("a", 1, 5*time.Minute)
	c.Set("b", 2, 30*time.Minute)
	*now = now.Add(10 * time.Minute)

	removed := c.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("b")
	assert.True(t, ok)
}

func TestGetOrCompute_MissThenHit(t *testing.T) {
	c, _ := newTestCache(time.Now())

	calls := 0
	compute := func() (int, error) {
		calls++
		return 7, nil
	}

	v, err := GetOrCompute(c, "working_days", "2024-03", 10*time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = GetOrCompute(c, "working_days", "2024-03", 10*time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls, "second call should be served from cache")
}

func TestGetOrCompute_ErrorNotCached(t *testing.T) {
	c, _ := newTestCache(time.Now())

	calls := 0
	boom := errors.New("storage down")
	compute := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 3, nil
	}

	_, err := GetOrCompute(c, "op", "2024-03", time.Minute, compute)
	require.ErrorIs(t, err, boom)

	v, err := GetOrCompute(c, "op", "2024-03", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_NilCacheAlwaysComputes(t *testing.T) {
	calls := 0
	compute := func() (string, error) {
		calls++
		return "x", nil
	}

	for i := 0; i < 3; i++ {
		v, err := GetOrCompute[string](nil, "op", "2024-03", time.Minute, compute)
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	}
	assert.Equal(t, 3, calls)
}
