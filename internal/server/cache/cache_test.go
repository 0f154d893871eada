package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_BasicOperations(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	t.Run("Set and Get", func(t *testing.T) {
		c.Set("203.0.113.7", 3)

		val, found := c.Get("203.0.113.7")
		require.True(t, found)
		assert.Equal(t, 3, val)
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		_, found := c.Get("nonexistent")
		assert.False(t, found)
	})

	t.Run("Set and Delete", func(t *testing.T) {
		c.Set("key2", "value2")
		c.Delete("key2")

		_, found := c.Get("key2")
		assert.False(t, found)
	})

	t.Run("Delete non-existent key", func(t *testing.T) {
		c.Delete("nonexistent")
	})
}

func TestCache_Add(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	assert.True(t, c.Add("ip", "first"))
	assert.False(t, c.Add("ip", "second"))

	val, _ := c.Get("ip")
	assert.Equal(t, "first", val)
}

func TestCache_AddReplacesExpired(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	c.SetWithTTL("ip", "stale", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	assert.True(t, c.Add("ip", "fresh"))
	val, _ := c.Get("ip")
	assert.Equal(t, "fresh", val)
}

func TestCache_SetWithTTL(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	c.SetWithTTL("short", "value", 10*time.Millisecond)
	_, found := c.Get("short")
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found = c.Get("short")
	assert.False(t, found, "expected entry to expire")
}

func TestCache_Clear(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	require.Equal(t, 2, c.ItemCount())

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
}

func TestCache_ConcurrentAdd(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Add("same", i) {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added, "exactly one Add should win")
	assert.Equal(t, 1, c.ItemCount())
}
