package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSource creates a SHA256 hash of an analyzed source (URL or inline
// HTML). This gives consistent, safe keys for Redis and stable identifiers
// for inline documents.
func HashSource(source string) string {
	h := sha256.New()
	h.Write([]byte(source))
	return hex.EncodeToString(h.Sum(nil))
}
