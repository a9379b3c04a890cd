package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"remitabeg-landing/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls   int
	content models.Content
	err     error
}

func (s *countingSource) Load(context.Context) (models.Content, error) {
	s.calls++
	return s.content, s.err
}

func TestCached_ServesSnapshotUntilExpiry(t *testing.T) {
	src := &countingSource{content: Default()}
	cached := NewCached(src, nil, time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cached.now = func() time.Time { return now }

	ctx := context.Background()
	_, err := cached.Load(ctx)
	require.NoError(t, err)
	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	now = now.Add(2 * time.Minute)
	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCached_Invalidate(t *testing.T) {
	src := &countingSource{content: Default()}
	cached := NewCached(src, nil, time.Hour)
	ctx := context.Background()

	_, _ = cached.Load(ctx)
	cached.Invalidate(ctx)
	_, _ = cached.Load(ctx)

	assert.Equal(t, 2, src.calls)
}

func TestCached_ErrorNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("db down")}
	cached := NewCached(src, nil, time.Hour)
	ctx := context.Background()

	_, err := cached.Load(ctx)
	require.Error(t, err)

	src.err = nil
	src.content = Default()
	got, err := cached.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.FAQs, 6)
	assert.Equal(t, 2, src.calls)
}

// writeDuringLoad runs during before returning a snapshot, the way an admin
// write can land between the source read and the cache write.
type writeDuringLoad struct {
	calls   int
	content models.Content
	during  func()
}

func (s *writeDuringLoad) Load(context.Context) (models.Content, error) {
	s.calls++
	if s.during != nil {
		s.during()
		s.during = nil
	}
	return s.content, nil
}

func newRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCachedRedis_SharesSnapshot(t *testing.T) {
	mr, client := newRedisClient(t)
	src := &countingSource{content: Default()}
	ctx := context.Background()

	first := NewCached(src, client, time.Minute)
	second := NewCached(src, client, time.Minute)

	_, err := first.Load(ctx)
	require.NoError(t, err)
	got, err := second.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Len(t, got.FAQs, 6)
	assert.True(t, mr.Exists(cacheKey))
	assert.Equal(t, time.Minute, mr.TTL(cacheKey))
}

func TestCachedRedis_InvalidateDuringLoadKeepsStaleOut(t *testing.T) {
	mr, client := newRedisClient(t)
	ctx := context.Background()

	src := &writeDuringLoad{content: Default()}
	cached := NewCached(src, client, time.Hour)
	src.during = func() { cached.Invalidate(ctx) }

	_, err := cached.Load(ctx)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cacheKey), "snapshot read before invalidate must not be cached")

	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	assert.True(t, mr.Exists(cacheKey))

	_, err = cached.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCachedRedis_InvalidateDropsSnapshot(t *testing.T) {
	mr, client := newRedisClient(t)
	src := &countingSource{content: Default()}
	cached := NewCached(src, client, time.Hour)
	ctx := context.Background()

	_, _ = cached.Load(ctx)
	require.True(t, mr.Exists(cacheKey))

	cached.Invalidate(ctx)
	assert.False(t, mr.Exists(cacheKey))

	_, _ = cached.Load(ctx)
	assert.Equal(t, 2, src.calls)
}
