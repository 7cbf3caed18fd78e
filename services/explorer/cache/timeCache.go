package cache

import (
	"sync"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("cache")

type cacheEntry struct {
	payload   any
	createdAt time.Time
}

// timeCache memoizes operation results for a fixed time-to-live. Expired
// entries read as misses and are overwritten by the next successful call.
// There is no size bound: the key space is limited by the finite catalog of
// databases, indicators and regions touched in one session.
type timeCache struct {
	mut     sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewTimeCache creates a new TTL cache instance
func NewTimeCache(ttl time.Duration) *timeCache {
	return &timeCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Get returns the cached payload for the key, treating expired entries as
// absent
func (tc *timeCache) Get(key string) (any, bool) {
	tc.mut.RLock()
	entry, found := tc.entries[key]
	tc.mut.RUnlock()

	if !found {
		return nil, false
	}
	if tc.nowFunc().Sub(entry.createdAt) >= tc.ttl {
		return nil, false
	}

	return entry.payload, true
}

// Put stores the payload under the key, overwriting any stale entry
func (tc *timeCache) Put(key string, payload any) {
	tc.mut.Lock()
	tc.entries[key] = cacheEntry{
		payload:   payload,
		createdAt: tc.nowFunc(),
	}
	tc.mut.Unlock()
}

// Reset drops all entries
func (tc *timeCache) Reset() {
	tc.mut.Lock()
	tc.entries = make(map[string]cacheEntry)
	tc.mut.Unlock()
}

// Purge removes the entries past their time-to-live so an idle process does
// not hold stale payloads indefinitely
func (tc *timeCache) Purge() {
	now := tc.nowFunc()

	tc.mut.Lock()
	numRemoved := 0
	for key, entry := range tc.entries {
		if now.Sub(entry.createdAt) >= tc.ttl {
			delete(tc.entries, key)
			numRemoved++
		}
	}
	numRemaining := len(tc.entries)
	tc.mut.Unlock()

	if numRemoved > 0 {
		log.Debug("purged expired cache entries", "removed", numRemoved, "remaining", numRemaining)
	}
}

// Len returns the number of stored entries, expired ones included
func (tc *timeCache) Len() int {
	tc.mut.RLock()
	defer tc.mut.RUnlock()

	return len(tc.entries)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (tc *timeCache) IsInterfaceNil() bool {
	return tc == nil
}
