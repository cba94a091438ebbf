package cipher

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/cryptodet/internal/model"
)

const latinSize = 26

// CaesarASCII shifts Latin letters by shift, keeping their case. Everything
// else, including non-Latin letters, is copied unchanged.
func CaesarASCII(text string, shift int) string {
	shift = mod(shift, latinSize)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		base, ok := latinBase(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(base + rune(mod(int(r-base)+shift, latinSize)))
	}
	return b.String()
}

// CaesarASCIIDecrypt reverses CaesarASCII for the same shift.
func CaesarASCIIDecrypt(text string, shift int) string {
	return CaesarASCII(text, latinSize-mod(shift, latinSize))
}

// VigenereASCII encrypts Latin letters with a repeating key of Latin letters,
// keeping case. Non-letters do not consume a key position.
func VigenereASCII(text, key string) (string, error) {
	return vigenereASCII(text, key, 1)
}

// VigenereASCIIDecrypt reverses VigenereASCII.
func VigenereASCIIDecrypt(text, key string) (string, error) {
	return vigenereASCII(text, key, -1)
}

func vigenereASCII(text, key string, sign int) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: key is empty", model.ErrInvalidArgument)
	}
	shifts := make([]int, 0, len(key))
	for _, r := range key {
		base, ok := latinBase(r)
		if !ok {
			return "", fmt.Errorf("%w: key letter %q is not a Latin letter", model.ErrInvalidArgument, r)
		}
		shifts = append(shifts, int(r-base))
	}
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, r := range text {
		base, ok := latinBase(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		shift := sign * shifts[pos%len(shifts)]
		b.WriteRune(base + rune(mod(int(r-base)+shift, latinSize)))
		pos++
	}
	return b.String(), nil
}

func latinBase(r rune) (rune, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a', true
	case r >= 'A' && r <= 'Z':
		return 'A', true
	default:
		return 0, false
	}
}
