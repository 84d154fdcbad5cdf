package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// CacheKey derives a stable identifier for an upstream request from its
// fully-qualified URL. The key is the first 16 hex characters of the
// SHA-256 digest, which is plenty for a single-instance cache table.
func CacheKey(url string) string {
	hasher := sha256.New()
	hasher.Write([]byte(url))
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}
