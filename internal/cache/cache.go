// Package cache stores fetched corpus documents so repeated compare and tune
// runs do not hammer the upstream host.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-blob store with per-entry TTLs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a document URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "forceval:v1:" + hex.EncodeToString(sum[:])
}
