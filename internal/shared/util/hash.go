package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashCallerKey derives a stable, filesystem-safe directory name from an API
// key so raw keys never appear in storage paths.
func HashCallerKey(key string) string {
	digest := sha256.Sum256([]byte(key))
	return hex.EncodeToString(digest[:])
}
