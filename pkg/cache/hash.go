package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the full 64-character hex SHA-256 of data. Results are
// addressed by graph content, so the digest is never truncated: a
// collision would silently hand one graph another graph's clique.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a "prefix:digest" cache key from the given components.
// Each part is JSON-encoded into the digest separately (the encoder's
// newline acts as a separator), so ("ab", "c") and ("a", "bc") never
// produce the same key.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, part := range parts {
		_ = enc.Encode(part)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}
