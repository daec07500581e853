package hash

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Password returns the hex digest stored for a credential. Verification
// recomputes the digest and compares, so it must stay deterministic: no
// salt and no work factor. Changing the scheme invalidates every stored
// digest at once.
func Password(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// CheckPassword reports whether plaintext digests to the stored value.
func CheckPassword(digest, plaintext string) bool {
	return Password(plaintext) == digest
}

// EmailKey folds an email address into its storage lookup key. Keys are
// case-insensitive: "A@x.com" and "a@x.com" collapse to the same entry.
func EmailKey(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
