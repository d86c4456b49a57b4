package id

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// InstanceIDLength is the length of ids returned by Instance.
const InstanceIDLength = 12

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UUID generates a UUID v4 (random).
func UUID() string {
	return uuid.NewString()
}

// Instance generates an id for a new MCP instance.
func Instance() string {
	return Alphanumeric(InstanceIDLength)
}

// unbiased is the largest multiple of len(alphanumeric) that fits in a byte.
// Bytes at or above it are discarded so every character is equally likely.
const unbiased = 256 - 256%len(alphanumeric)

// Alphanumeric generates a random string of letters and digits. A length
// of zero or less yields "".
func Alphanumeric(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)
	for len(b) < length {
		// crypto/rand.Read always fills buf and never returns an error.
		_, _ = rand.Read(buf)
		for _, r := range buf {
			if int(r) >= unbiased {
				continue
			}
			b = append(b, alphanumeric[int(r)%len(alphanumeric)])
			if len(b) == length {
				break
			}
		}
	}
	return string(b)
}
