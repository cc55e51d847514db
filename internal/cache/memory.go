// Package cache provides an in-process key/value store with per-entry expiry.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is a concurrency-safe map with lazy expiry. Expired entries are
// removed when they are read, never in the background.
type Memory[V any] struct {
	mu    sync.Mutex
	items map[string]entry[V]
	now   func() time.Time
}

type options struct {
	now func() time.Time
}

// Option configures a Memory cache.
type Option func(*options)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates an empty cache.
func New[V any](opts ...Option) *Memory[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Memory[V]{
		items: make(map[string]entry[V]),
		now:   o.now,
	}
}

// Set stores value under key until now+ttl, overwriting any previous entry.
func (m *Memory[V]) Set(key string, value V, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = entry[V]{value: value, expiresAt: m.now().Add(ttl)}
}

// Get returns the value for key if it has not expired. An expired entry is
// deleted as a side effect.
func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.items[key]
	if !ok {
		return zero, false
	}
	if m.now().After(e.expiresAt) {
		delete(m.items, key)
		return zero, false
	}
	return e.value, true
}

// Delete removes key and reports whether it was present.
func (m *Memory[V]) Delete(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	return true
}

// DeleteMatching removes every key that contains substr as a literal
// substring and returns how many were removed. Matching is not anchored:
// "user_posts_7" also matches "user_posts_70".
func (m *Memory[V]) DeleteMatching(substr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for key := range m.items {
		if strings.Contains(key, substr) {
			delete(m.items, key)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, including expired ones not yet read.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.items)
}
