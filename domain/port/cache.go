package port

// TranslationCache is the fingerprint-keyed store for translate results.
// Implementations must make each operation atomic; readers of an expired
// entry observe absence and the entry is purged as a side effect.
type TranslationCache interface {
	// Get returns the cached translation for key, or ok=false when absent
	// or expired. A non-nil error is a backing-store failure; callers treat
	// it as a miss.
	Get(key string) (translation string, ok bool, err error)
	// Put stores a translation under key with a fresh timestamp,
	// overwriting any existing entry.
	Put(key, translation string) error
}
