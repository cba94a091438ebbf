// Package password generates random passwords with guaranteed character-class
// coverage, optionally run through an ASCII Caesar or Vigenère transform.
//
// Obfuscation is a novelty: the transform is public and keyed by values the
// user typed, so it adds no entropy and must not be treated as protection.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/model"
)

// Character sets for each class.
const (
	UpperSet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerSet  = "abcdefghijklmnopqrstuvwxyz"
	DigitSet  = "0123456789"
	SymbolSet = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Obfuscation modes.
const (
	ObfuscateNone     = "none"
	ObfuscateCaesar   = "caesar"
	ObfuscateVigenere = "vigenere"
)

// Spec describes the password to generate.
type Spec struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool

	Obfuscate string
	Shift     int
	Key       string
}

// Classes returns the character sets enabled by the spec, in a fixed order.
func (s Spec) Classes() []string {
	classes := make([]string, 0, 4)
	if s.Upper {
		classes = append(classes, UpperSet)
	}
	if s.Lower {
		classes = append(classes, LowerSet)
	}
	if s.Digits {
		classes = append(classes, DigitSet)
	}
	if s.Symbols {
		classes = append(classes, SymbolSet)
	}
	return classes
}

// Validate checks the spec without generating anything.
func (s Spec) Validate() error {
	classes := s.Classes()
	if len(classes) == 0 {
		return fmt.Errorf("%w: select at least one character class", model.ErrInvalidArgument)
	}
	if s.Length < len(classes) {
		return fmt.Errorf("%w: length %d is shorter than the %d selected classes", model.ErrInvalidArgument, s.Length, len(classes))
	}
	switch s.Obfuscate {
	case "", ObfuscateNone, ObfuscateCaesar:
	case ObfuscateVigenere:
		if s.Key == "" {
			return fmt.Errorf("%w: vigenere obfuscation needs a key", model.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown obfuscation %q (available: none, caesar, vigenere)", model.ErrInvalidArgument, s.Obfuscate)
	}
	return nil
}

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Generator produces passwords from a random source.
type Generator struct {
	rnd Source
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rnd: cryptoSource{}}
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src Source) *Generator {
	return &Generator{rnd: src}
}

// Generate builds a password with at least one character from each enabled
// class, then applies the requested obfuscation.
func (g *Generator) Generate(spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	classes := spec.Classes()
	union := strings.Join(classes, "")

	out := make([]byte, 0, spec.Length)
	for _, class := range classes {
		out = append(out, class[g.rnd.Intn(len(class))])
	}
	for len(out) < spec.Length {
		out = append(out, union[g.rnd.Intn(len(union))])
	}
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return Obfuscate(string(out), spec)
}

// Obfuscate applies the spec's ASCII transform to pw. Letters stay letters of
// the same case, so class coverage is preserved.
func Obfuscate(pw string, spec Spec) (string, error) {
	switch spec.Obfuscate {
	case "", ObfuscateNone:
		return pw, nil
	case ObfuscateCaesar:
		return cipher.CaesarASCII(pw, spec.Shift), nil
	case ObfuscateVigenere:
		return cipher.VigenereASCII(pw, spec.Key)
	default:
		return "", fmt.Errorf("%w: unknown obfuscation %q", model.ErrInvalidArgument, spec.Obfuscate)
	}
}

type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}
