package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16
	// TokenLen is the length of issued tokens, ~238 bits of entropy.
	TokenLen = 40
)

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters. It panics if the system random source fails.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	// bytes above limit are rejected so every char has the same probability
	limit := 255 - (256 % len(StdChars))
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) > limit {
				continue
			}

			out = append(out, StdChars[int(b)%len(StdChars)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
