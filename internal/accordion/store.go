package accordion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an idle visitor's selection is kept.
const DefaultTTL = 24 * time.Hour

// Store persists selections per visitor session and accordion instance.
type Store interface {
	// Load returns the saved selection; found is false when nothing was saved.
	Load(ctx context.Context, session, accordionID string) (s Selection, found bool, err error)
	Save(ctx context.Context, session, accordionID string, s Selection) error
}

func storeKey(session, accordionID string) string {
	return fmt.Sprintf("landing:accordion:%s:%s", accordionID, session)
}

/*
|--------------------------------------------------------------------------
| Memory store
|--------------------------------------------------------------------------
*/

// MemoryStore keeps selections in process memory. Used when Redis is not
// configured and in tests.
type MemoryStore struct {
	mu         sync.RWMutex
	selections map[string]Selection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{selections: make(map[string]Selection)}
}

func (m *MemoryStore) Load(_ context.Context, session, accordionID string) (Selection, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.selections[storeKey(session, accordionID)]
	return s, ok, nil
}

func (m *MemoryStore) Save(_ context.Context, session, accordionID string, s Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selections[storeKey(session, accordionID)] = s
	return nil
}

/*
|--------------------------------------------------------------------------
| Redis store
|--------------------------------------------------------------------------
*/

// RedisStore keeps selections in Redis with a sliding TTL so abandoned
// sessions expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context, session, accordionID string) (Selection, bool, error) {
	raw, err := r.client.Get(ctx, storeKey(session, accordionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return None(), false, nil
	}
	if err != nil {
		return None(), false, fmt.Errorf("load selection: %w", err)
	}

	var s Selection
	if err := json.Unmarshal(raw, &s); err != nil {
		return None(), false, fmt.Errorf("decode selection: %w", err)
	}
	return s, true, nil
}

func (r *RedisStore) Save(ctx context.Context, session, accordionID string, s Selection) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, storeKey(session, accordionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}
