package content

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"remitabeg-landing/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "landing:content"
	// cacheGenKey is bumped by every Invalidate. A snapshot is only written
	// back if the generation it was read under is still current.
	cacheGenKey = "landing:content:gen"
)

var errStaleSnapshot = errors.New("content: snapshot outdated by invalidate")

const DefaultCacheTTL = 5 * time.Minute

// Cached wraps a Source with a snapshot cache. With a Redis client the
// snapshot is shared between instances; without one it lives in process.
type Cached struct {
	next   Source
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	snapshot *models.Content
	expires  time.Time
}

func NewCached(next Source, client *redis.Client, ttl time.Duration) *Cached {
	return &Cached{
		next:   next,
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *Cached) Load(ctx context.Context) (models.Content, error) {
	if c.client != nil {
		return c.loadRedis(ctx)
	}
	return c.loadLocal(ctx)
}

func (c *Cached) loadLocal(ctx context.Context) (models.Content, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.now().Before(c.expires) {
		return *c.snapshot, nil
	}

	fresh, err := c.next.Load(ctx)
	if err != nil {
		return models.Content{}, err
	}
	c.snapshot = &fresh
	c.expires = c.now().Add(c.ttl)
	return fresh, nil
}

func (c *Cached) loadRedis(ctx context.Context) (models.Content, error) {
	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var cached models.Content
		jsonErr := json.Unmarshal(raw, &cached)
		if jsonErr == nil {
			return cached, nil
		}
		log.Printf("[content] cache entry rusak, reload: %v", jsonErr)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[content] redis get error: %v", err)
	}

	gen, genErr := c.generation(ctx)

	fresh, err := c.next.Load(ctx)
	if err != nil {
		return models.Content{}, err
	}

	if genErr != nil {
		log.Printf("[content] redis gen error, snapshot tidak di-cache: %v", genErr)
		return fresh, nil
	}
	c.storeRedis(ctx, gen, fresh)
	return fresh, nil
}

func (c *Cached) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, cacheGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// storeRedis writes fresh under WATCH on the generation key, so a load that
// raced with Invalidate never puts its older snapshot back.
func (c *Cached) storeRedis(ctx context.Context, gen int64, fresh models.Content) {
	payload, err := json.Marshal(fresh)
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, cacheGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, cacheKey, payload, c.ttl)
			return nil
		})
		return err
	}, cacheGenKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		log.Println("[content] konten berubah saat load, snapshot tidak di-cache")
	default:
		log.Printf("[content] redis set error: %v", err)
	}
}

// Invalidate drops the cached snapshot so the next Load reads the source.
func (c *Cached) Invalidate(ctx context.Context) {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()

	if c.client != nil {
		_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Incr(ctx, cacheGenKey)
			p.Del(ctx, cacheKey)
			return nil
		})
		if err != nil {
			log.Printf("[content] redis invalidate error: %v", err)
		}
	}
}
