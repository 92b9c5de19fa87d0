package entity

import (
	"fmt"
	"time"
)

// CacheTTL is the maximum age of a cached translation.
const CacheTTL = 24 * time.Hour

// CacheEntry is one stored translation, keyed by fingerprint.
type CacheEntry struct {
	Translation string
	CreatedAt   time.Time
}

// Expired reports whether the entry's age exceeds the TTL at the given time.
func (e CacheEntry) Expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) >= CacheTTL
}

// Fingerprint builds the cache key for a translate request. Two requests are
// cache-equivalent iff kind, target and trimmed text are identical.
func Fingerprint(kind Kind, target, text string) string {
	return fmt.Sprintf("%s|%s|%s", kind, target, text)
}
