package password

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/cryptodet/internal/model"
)

func TestGenerateCoversEveryClass(t *testing.T) {
	gen := NewWithSource(rand.New(rand.NewSource(1)))
	specs := []Spec{
		{Length: 4, Upper: true, Lower: true, Digits: true, Symbols: true},
		{Length: 16, Upper: true, Lower: true, Digits: true, Symbols: true},
		{Length: 8, Digits: true},
		{Length: 12, Lower: true, Symbols: true},
		{Length: 20, Upper: true, Digits: true, Obfuscate: ObfuscateCaesar, Shift: 7},
		{Length: 20, Upper: true, Lower: true, Digits: true, Obfuscate: ObfuscateVigenere, Key: "Lemon"},
	}
	for _, spec := range specs {
		for i := 0; i < 50; i++ {
			pw, err := gen.Generate(spec)
			require.NoError(t, err)
			assert.Len(t, pw, spec.Length)
			for _, class := range spec.Classes() {
				assert.True(t, strings.ContainsAny(pw, class), "password %q misses class %q", pw, class)
			}
			for _, r := range pw {
				assert.True(t, strings.ContainsRune(strings.Join(spec.Classes(), ""), r), "password %q has foreign rune %q", pw, r)
			}
		}
	}
}

func TestGenerateWithCryptoSource(t *testing.T) {
	pw, err := New().Generate(Spec{Length: 32, Upper: true, Lower: true, Digits: true, Symbols: true})
	require.NoError(t, err)
	assert.Len(t, pw, 32)
}

func TestGenerateRejectsInvalidSpecs(t *testing.T) {
	gen := New()
	cases := []Spec{
		{Length: 12},
		{Length: 3, Upper: true, Lower: true, Digits: true, Symbols: true},
		{Length: 0, Lower: true},
		{Length: 8, Lower: true, Obfuscate: ObfuscateVigenere},
		{Length: 8, Lower: true, Obfuscate: "rot13"},
		{Length: 8, Lower: true, Obfuscate: ObfuscateVigenere, Key: "k3y"},
	}
	for _, spec := range cases {
		_, err := gen.Generate(spec)
		require.ErrorIs(t, err, model.ErrInvalidArgument, "spec %+v", spec)
	}
}

func TestGenerateShufflesSeeds(t *testing.T) {
	gen := NewWithSource(rand.New(rand.NewSource(42)))
	spec := Spec{Length: 2, Upper: true, Digits: true}
	firstUpper := 0
	for i := 0; i < 200; i++ {
		pw, err := gen.Generate(spec)
		require.NoError(t, err)
		if strings.ContainsRune(UpperSet, rune(pw[0])) {
			firstUpper++
		}
	}
	assert.Greater(t, firstUpper, 50)
	assert.Less(t, firstUpper, 150)
}

func TestObfuscate(t *testing.T) {
	out, err := Obfuscate("Ab1!", Spec{Obfuscate: ObfuscateCaesar, Shift: 1})
	require.NoError(t, err)
	assert.Equal(t, "Bc1!", out)

	out, err = Obfuscate("ATTACK1AT", Spec{Obfuscate: ObfuscateVigenere, Key: "LEMON"})
	require.NoError(t, err)
	assert.Equal(t, "LXFOPV1EF", out)

	out, err = Obfuscate("same", Spec{})
	require.NoError(t, err)
	assert.Equal(t, "same", out)
}
