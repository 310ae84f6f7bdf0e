package connection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-manager/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads Once", func(t *testing.T) {
		cache := newSnapshotCache(time.Minute)
		var loads int32
		load := func(context.Context) (*catalog.Catalog, error) {
			atomic.AddInt32(&loads, 1)
			time.Sleep(10 * time.Millisecond)
			return discovered(usersStream("id")), nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c, err := cache.getOrLoad(ctx, "k", load)
				assert.NoError(t, err)
				assert.Equal(t, 1, c.Len())
			}()
		}
		wg.Wait()

		_, err := cache.getOrLoad(ctx, "k", load)
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
	})

	t.Run("Errors Are Not Cached", func(t *testing.T) {
		cache := newSnapshotCache(time.Minute)
		calls := 0
		load := func(context.Context) (*catalog.Catalog, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("boom")
			}
			return discovered(), nil
		}

		_, err := cache.getOrLoad(ctx, "k", load)
		assert.EqualError(t, err, "boom")
		_, err = cache.getOrLoad(ctx, "k", load)
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Zero TTL Disables Caching", func(t *testing.T) {
		cache := newSnapshotCache(0)
		calls := 0
		load := func(context.Context) (*catalog.Catalog, error) {
			calls++
			return discovered(), nil
		}

		_, _ = cache.getOrLoad(ctx, "k", load)
		_, _ = cache.getOrLoad(ctx, "k", load)
		assert.Equal(t, 2, calls)
	})

	t.Run("Invalidate And Sweep", func(t *testing.T) {
		cache := newSnapshotCache(time.Minute)
		load := func(context.Context) (*catalog.Catalog, error) { return discovered(), nil }
		_, _ = cache.getOrLoad(ctx, "a", load)
		_, _ = cache.getOrLoad(ctx, "b", load)

		cache.invalidate("a")
		_, ok := cache.lookup("a")
		assert.False(t, ok)

		cache.entries["b"].built = time.Now().Add(-2 * time.Minute)
		assert.Equal(t, 1, cache.sweep())
		assert.Empty(t, cache.entries)
	})
}
