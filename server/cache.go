package server

import (
	"bytes"
	"time"

	"github.com/bluele/gcache"
)

// responseCache memoizes rendered response bodies per normalized query.
// LRU eviction bounds the entry count and the TTL ages out queries that
// stop recurring.
type responseCache struct {
	entries gcache.Cache
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	return &responseCache{entries: gcache.New(size).LRU().Expiration(ttl).Build()}
}

func (rc *responseCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (rc *responseCache) get(key string) ([]byte, bool) {
	v, err := rc.entries.Get(key)
	if err != nil {
		return nil, false
	}
	buf, ok := v.([]byte)
	return buf, ok
}

func (rc *responseCache) set(key string, buf []byte) {
	_ = rc.entries.Set(key, buf)
}
