package utils

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_MatchesHMACSHA256(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("s"))
	mac.Write([]byte("s1700000000000"))
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, HashString("s1700000000000", "s"))
}

func TestHashString_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, HashString("data", "key-1"), HashString("data", "key-2"))
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("data", "key"), HashString("data", "key"))
	assert.Len(t, HashString("data", "key"), 64)
}

func TestEqualHash(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal", "abcdef", "abcdef", true},
		{"one char differs", "abcdef", "abcdeg", false},
		{"different length", "abcdef", "abcde", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualHash(tt.a, tt.b))
		})
	}
}

func TestContentMD5(t *testing.T) {
	sum := md5.Sum([]byte(`{"id":1}`))
	assert.Equal(t, hex.EncodeToString(sum[:]), ContentMD5([]byte(`{"id":1}`)))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ContentMD5(nil))
}
