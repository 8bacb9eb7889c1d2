package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Cache is an explicit key→entry response cache with prefix invalidation.
// Entries expire after the configured staleness window. Cache failures are
// never fatal: a broken backend behaves like a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, keyPrefix string)
}

// Memory is the in-process Cache backend
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory creates an in-process cache whose entries go stale after ttl
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get returns the cached value for key, if present and fresh
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the staleness window as TTL
func (m *Memory) Set(ctx context.Context, key string, value []byte) {
	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
}

// Invalidate drops every entry whose key starts with keyPrefix
func (m *Memory) Invalidate(ctx context.Context, keyPrefix string) {
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, keyPrefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}

// Len reports the number of live entries, expired or not
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
