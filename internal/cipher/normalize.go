package cipher

import "golang.org/x/text/unicode/norm"

// Normalize composes decomposed input (for example "и" followed by a combining
// breve) so that every letter maps to a single alphabet rune.
func Normalize(text string) string {
	return norm.NFC.String(text)
}
