package cache_test

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthmonitor/internal/cache"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, time.Minute, testLogger()) // 2^10 = 1KB
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, time.Minute, testLogger()) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestCount_MissingKey(t *testing.T) {
	c, err := cache.New(10, time.Minute, testLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 0, c.Count("203.0.113.1"))
}

func TestStrike_Accumulates(t *testing.T) {
	c, err := cache.New(20, time.Minute, testLogger()) // 2^20 = 1MB
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 1, c.Strike("203.0.113.1"))
	assert.Equal(t, 2, c.Strike("203.0.113.1"))
	assert.Equal(t, 3, c.Strike("203.0.113.1"))
	assert.Equal(t, 3, c.Count("203.0.113.1"))
}

func TestStrike_SeparateKeys(t *testing.T) {
	c, err := cache.New(20, time.Minute, testLogger())
	require.NoError(t, err)
	defer c.Close()

	c.Strike("203.0.113.1")
	c.Strike("203.0.113.1")
	c.Strike("198.51.100.2")

	assert.Equal(t, 2, c.Count("203.0.113.1"))
	assert.Equal(t, 1, c.Count("198.51.100.2"))
}

func TestStrike_Concurrent(t *testing.T) {
	c, err := cache.New(20, time.Minute, testLogger())
	require.NoError(t, err)
	defer c.Close()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				c.Strike("203.0.113.1")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, c.Count("203.0.113.1"))
}

func TestStrike_ExpiresAfterTTL(t *testing.T) {
	c, err := cache.New(20, 50*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer c.Close()

	c.Strike("203.0.113.1")
	assert.Eventually(t, func() bool { return c.Count("203.0.113.1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestStats_AfterOperations(t *testing.T) {
	c, err := cache.New(20, time.Minute, testLogger())
	require.NoError(t, err)
	defer c.Close()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	// First strike misses, second hits.
	c.Strike("key1")
	c.Strike("key1")

	hits, misses, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 0.5, ratio)
}

func TestStrike_RejectedSetIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := cache.New(20, time.Minute, logger)
	require.NoError(t, err)
	c.Close()

	assert.Equal(t, 1, c.Strike("198.51.100.7"))
	assert.Equal(t, 1, c.Strike("198.51.100.7"))
	assert.Contains(t, buf.String(), "strike not admitted to cache")
	assert.Contains(t, buf.String(), "198.51.100.7")
}
