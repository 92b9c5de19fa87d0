// Package cache provides the in-memory translation cache. Each operation is
// a single critical section, so concurrent writers to different keys cannot
// lose updates.
package cache

import (
	"sync"
	"time"

	"lingua-proxy/domain/entity"
)

// Memory is a TTL-bounded, fingerprint-keyed translation store. Expired
// entries are purged lazily on the read that observes them; there is no
// background sweep.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entity.CacheEntry
	now     func() time.Time
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entity.CacheEntry),
		now:     time.Now,
	}
}

// Get returns the translation for key. An entry past its TTL is deleted as a
// side effect of the read and reported absent.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if entry.Expired(m.now()) {
		delete(m.entries, key)
		return "", false, nil
	}
	return entry.Translation, true, nil
}

// Put stores a translation under key with a fresh timestamp, overwriting any
// existing entry.
func (m *Memory) Put(key, translation string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entity.CacheEntry{
		Translation: translation,
		CreatedAt:   m.now(),
	}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// SetClock replaces the cache's time source. Tests use this to age entries.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Contains reports whether key is physically present in the store,
// regardless of expiry. Tests use this to observe lazy purging.
func (m *Memory) Contains(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}
