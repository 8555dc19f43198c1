package reconcile

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCache_Disabled(t *testing.T) {
	cache := NewReportCache(0)
	var builds int32
	build := func() (*Report, error) {
		atomic.AddInt32(&builds, 1)
		return &Report{}, nil
	}

	_, err := cache.GetOrBuild("all", build)
	require.NoError(t, err)
	_, err = cache.GetOrBuild("all", build)
	require.NoError(t, err)

	assert.False(t, cache.Enabled())
	assert.Equal(t, int32(2), builds)
}

func TestReportCache_TTL(t *testing.T) {
	cache := NewReportCache(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	var builds int32
	build := func() (*Report, error) {
		atomic.AddInt32(&builds, 1)
		return &Report{VerificationDate: fmt.Sprint(builds)}, nil
	}

	first, err := cache.GetOrBuild("all", build)
	require.NoError(t, err)
	second, err := cache.GetOrBuild("all", build)
	require.NoError(t, err)
	assert.Same(t, first, second)

	now = now.Add(2 * time.Minute)
	third, err := cache.GetOrBuild("all", build)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, int32(2), builds)

	cache.Invalidate("all")
	_, err = cache.GetOrBuild("all", build)
	require.NoError(t, err)
	assert.Equal(t, int32(3), builds)

	cache.Purge()
	_, err = cache.GetOrBuild("all", build)
	require.NoError(t, err)
	assert.Equal(t, int32(4), builds)
}

func TestReportCache_ErrorNotCached(t *testing.T) {
	cache := NewReportCache(time.Minute)

	_, err := cache.GetOrBuild("all", func() (*Report, error) {
		return nil, fmt.Errorf("fetch failed")
	})
	assert.EqualError(t, err, "fetch failed")

	report, err := cache.GetOrBuild("all", func() (*Report, error) {
		return &Report{IsFullySynced: true}, nil
	})
	require.NoError(t, err)
	assert.True(t, report.IsFullySynced)
}

func TestReportCache_Concurrent(t *testing.T) {
	cache := NewReportCache(time.Minute)
	var builds int32
	release := make(chan struct{})

	build := func() (*Report, error) {
		atomic.AddInt32(&builds, 1)
		<-release
		return &Report{}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetOrBuild("all", build)
			assert.NoError(t, err)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), builds)
}
