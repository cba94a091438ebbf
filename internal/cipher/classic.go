package cipher

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/cryptodet/internal/model"
)

// Caesar shifts every alphabet letter of text by shift positions. Letters come
// out in lower case; characters outside the alphabet are copied unchanged.
// A negative shift decrypts.
func Caesar(text string, shift int, alphabet *Alphabet) (string, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return "", fmt.Errorf("%w: alphabet is empty", model.ErrInvalidArgument)
	}
	shift = mod(shift, alphabet.Len())
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		idx, ok := alphabet.Index(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(alphabet.at(idx + shift))
	}
	return b.String(), nil
}

// CaesarDecrypt reverses Caesar for the same shift and alphabet.
func CaesarDecrypt(text string, shift int, alphabet *Alphabet) (string, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return "", fmt.Errorf("%w: alphabet is empty", model.ErrInvalidArgument)
	}
	return Caesar(text, alphabet.Len()-mod(shift, alphabet.Len()), alphabet)
}

// Vigenere encrypts text with a repeating key. Only alphabet letters consume a
// key position; punctuation and spaces are copied and leave the key where it was.
func Vigenere(text, key string, alphabet *Alphabet) (string, error) {
	return vigenere(text, key, alphabet, 1)
}

// VigenereDecrypt reverses Vigenere for the same key and alphabet.
func VigenereDecrypt(text, key string, alphabet *Alphabet) (string, error) {
	return vigenere(text, key, alphabet, -1)
}

func vigenere(text, key string, alphabet *Alphabet, sign int) (string, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return "", fmt.Errorf("%w: alphabet is empty", model.ErrInvalidArgument)
	}
	shifts, err := keyShifts(key, alphabet)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, r := range text {
		idx, ok := alphabet.Index(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(alphabet.at(idx + sign*shifts[pos%len(shifts)]))
		pos++
	}
	return b.String(), nil
}

func keyShifts(key string, alphabet *Alphabet) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is empty", model.ErrInvalidArgument)
	}
	shifts := make([]int, 0, len(key))
	for _, r := range key {
		idx, ok := alphabet.Index(r)
		if !ok {
			return nil, fmt.Errorf("%w: key letter %q is not in alphabet %q", model.ErrInvalidArgument, r, alphabet.Code())
		}
		shifts = append(shifts, idx)
	}
	return shifts, nil
}
