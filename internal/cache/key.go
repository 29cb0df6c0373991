package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key derives a short content-hash key from the given text, so cached
// results survive identical re-submissions without storing the text
// itself as the map key.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:16]
}
