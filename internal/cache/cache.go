package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// QuestionKey generates the cache key for an item's verification questions
func QuestionKey(itemID string) string {
	hash := sha256.Sum256([]byte(itemID))
	return "reclaim:v1:questions:" + hex.EncodeToString(hash[:])
}
