package store

import "context"

// Well-known keys in the persistence gateway. The whole collection of card
// sets lives under a single key as one serialized blob, mirroring the
// original browser-local-storage layout; the theme preference has its own key.
const (
	CollectionKey = "flashcard_sets"
	ThemeKey      = "theme"
)

// KV is the persistence gateway: an opaque key-value store. Implementations
// must return ErrKeyNotFound (possibly wrapped) from Get when the key has
// never been written.
type KV interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}
