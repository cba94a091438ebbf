// Package cipher implements Caesar and Vigenère substitution over ordered alphabets.
package cipher

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/cryptodet/internal/model"
)

const (
	// RussianLetters is the 33-letter Cyrillic alphabet, ё included.
	RussianLetters = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
	// EnglishLetters is the 26-letter Latin alphabet.
	EnglishLetters = "abcdefghijklmnopqrstuvwxyz"
)

// Alphabet is an immutable ordered set of lower-case letters.
type Alphabet struct {
	code    string
	letters []rune
	index   map[rune]int
}

var (
	// Russian is the Cyrillic alphabet used by the detective game.
	Russian = mustAlphabet("ru", RussianLetters)
	// English is the Latin alphabet used by the detective game.
	English = mustAlphabet("en", EnglishLetters)
)

// NewAlphabet builds an alphabet from letters. Letters are folded to lower case;
// an empty set or a repeated letter is rejected.
func NewAlphabet(code, letters string) (*Alphabet, error) {
	runes := []rune(letters)
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: alphabet %q is empty", model.ErrInvalidArgument, code)
	}
	a := &Alphabet{
		code:    code,
		letters: make([]rune, 0, len(runes)),
		index:   make(map[rune]int, len(runes)),
	}
	for _, r := range runes {
		r = unicode.ToLower(r)
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%w: alphabet %q repeats %q", model.ErrInvalidArgument, code, r)
		}
		a.index[r] = len(a.letters)
		a.letters = append(a.letters, r)
	}
	return a, nil
}

func mustAlphabet(code, letters string) *Alphabet {
	a, err := NewAlphabet(code, letters)
	if err != nil {
		panic(err)
	}
	return a
}

// AlphabetByCode returns the built-in alphabet for "ru" or "en".
func AlphabetByCode(code string) (*Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ru":
		return Russian, nil
	case "en":
		return English, nil
	default:
		return nil, fmt.Errorf("%w: unknown alphabet %q (available: ru, en)", model.ErrInvalidArgument, code)
	}
}

// Code returns the short alphabet identifier.
func (a *Alphabet) Code() string { return a.code }

// Len returns the number of letters.
func (a *Alphabet) Len() int { return len(a.letters) }

// Letters returns the letters in order.
func (a *Alphabet) Letters() string { return string(a.letters) }

// Index returns the position of r, compared in lower case.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[unicode.ToLower(r)]
	return i, ok
}

// Contains reports whether every letter of s belongs to the alphabet, ignoring spaces.
func (a *Alphabet) Contains(s string) bool {
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if _, ok := a.Index(r); !ok {
			return false
		}
	}
	return true
}

func (a *Alphabet) at(i int) rune {
	return a.letters[mod(i, len(a.letters))]
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
