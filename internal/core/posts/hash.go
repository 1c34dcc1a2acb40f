package posts

import (
	"crypto/md5"
	"encoding/hex"
)

// ContentHash computes the change fingerprint for a post: the hex MD5 digest
// of title concatenated with content (no separator). This is a change
// detector, not a security primitive; correctness never depends on collision
// resistance.
func ContentHash(title, content string) string {
	sum := md5.Sum([]byte(title + content))
	return hex.EncodeToString(sum[:])
}
