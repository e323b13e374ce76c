package util

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint hashes the given parts into a short stable identifier, used to
// tell dataset snapshots apart and to key cached views.
func Fingerprint(parts ...string) string {
	return hashString(strings.Join(parts, "|"))
}

// HashString returns the MD5 hash of an arbitrary string.
func HashString(input string) string {
	return hashString(strings.TrimSpace(strings.ToLower(input)))
}

func hashString(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
