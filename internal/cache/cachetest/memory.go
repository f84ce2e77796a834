package cachetest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type item struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-memory stand-in for redis used by tests
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]item
	Now   func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]item), Now: time.Now}
}

func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := item{value: toString(value)}
	if expiration > 0 {
		it.expiresAt = s.Now().Add(expiration)
	}
	s.items[key] = it

	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (s *MemoryStore) Get(ctx context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := redis.NewStringCmd(ctx)
	it, ok := s.items[key]
	if !ok || s.expired(it) {
		delete(s.items, key)
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(it.value)
	return cmd
}

func (s *MemoryStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for _, key := range keys {
		if it, ok := s.items[key]; ok {
			delete(s.items, key)
			if !s.expired(it) {
				removed++
			}
		}
	}

	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(removed)
	return cmd
}

// Len returns the number of live keys
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range s.items {
		if !s.expired(it) {
			n++
		}
	}
	return n
}

func (s *MemoryStore) expired(it item) bool {
	return !it.expiresAt.IsZero() && !s.Now().Before(it.expiresAt)
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
