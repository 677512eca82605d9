package utils

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call, since the key differs per
// issuer.
//
// Example usage:
//
//	signature := utils.HashString("secret1700000000000", "secret")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// EqualHash compares two hex digests in constant time.
// Comparison time depends only on the length of the inputs.
func EqualHash(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// ContentMD5 returns the hex-encoded MD5 checksum of data. It is used for the
// content checksum header of HEAD responses, not for anything secret.
func ContentMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
