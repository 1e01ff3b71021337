package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store keeps per-page view state for a session. Only the current page's state is ever kept:
// callers Clear a session when it navigates to another page.
type Store interface {
	// Load decodes the saved state of page into v and reports whether there was any.
	Load(ctx context.Context, sessionID string, page Page, v any) (bool, error)
	Save(ctx context.Context, sessionID string, page Page, v any) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	pages     map[Page][]byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Entries idle for longer than the TTL are forgotten.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	entries   map[string]*memoryEntry
	lastSweep time.Time
}

// NewMemoryStore creates an in-process Store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string, page Page, v any) (bool, error) {
	s.mu.Lock()
	entry, ok := s.entries[sessionID]
	if ok && s.expired(entry) {
		delete(s.entries, sessionID)
		ok = false
	}
	var raw []byte
	if ok {
		raw, ok = entry.pages[page]
	}
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s state: %w", page, err)
	}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, page Page, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", page, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &memoryEntry{pages: make(map[Page][]byte)}
		s.entries[sessionID] = entry
	}
	entry.pages[page] = raw
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// Len returns the number of sessions holding state.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) expired(entry *memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)
}

// sweep runs at most once per TTL. Callers hold mu.
func (s *MemoryStore) sweep() {
	if s.ttl <= 0 || s.now().Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = s.now()
	for id, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, id)
		}
	}
}

// RedisStore keeps each session's page state in one hash so Clear is a single DEL.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Store backed by client. Keys are "<prefix>:state:<session id>".
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + ":state:" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string, page Page, v any) (bool, error) {
	raw, err := s.client.HGet(ctx, s.key(sessionID), string(page)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s state: %w", page, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s state: %w", page, err)
	}
	return true, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, page Page, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", page, err)
	}

	key := s.key(sessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, string(page), raw)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s state: %w", page, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
