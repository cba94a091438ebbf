package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/model"
)

func TestGenerateDecryptsBack(t *testing.T) {
	gen := NewWithSeed(7)
	for _, alphabet := range []*cipher.Alphabet{cipher.Russian, cipher.English} {
		for _, m := range Missions() {
			c, err := gen.Generate(m, alphabet)
			require.NoError(t, err)
			assert.NotEqual(t, c.Plaintext, c.Ciphertext)

			var plain string
			switch m.Kind {
			case KindCaesar:
				assert.GreaterOrEqual(t, c.Shift, 1)
				assert.LessOrEqual(t, c.Shift, 5)
				plain, err = cipher.Caesar(c.Ciphertext, -c.Shift, alphabet)
			case KindVigenere:
				plain, err = cipher.VigenereDecrypt(c.Ciphertext, c.Key, alphabet)
			case KindMixed:
				var inner string
				inner, err = cipher.Caesar(c.Ciphertext, -c.Shift, alphabet)
				require.NoError(t, err)
				plain, err = cipher.VigenereDecrypt(inner, c.Key, alphabet)
			}
			require.NoError(t, err)
			assert.Equal(t, c.Plaintext, plain)
			assert.True(t, c.Check(plain))
			assert.NotEmpty(t, c.Hint())
		}
	}
}

func TestCheckIsLenient(t *testing.T) {
	c := Challenge{Plaintext: "разгадай тайну"}
	assert.True(t, c.Check("  РАЗГАДАЙ   Тайну "))
	assert.True(t, c.Check("разгадай тайну"))
	assert.False(t, c.Check("разгадай"))
}

func TestCaesarHintMatchesOriginalWording(t *testing.T) {
	c := Challenge{Mission: Mission{Kind: KindCaesar}, Shift: 3}
	assert.Equal(t, "Шифр Цезаря со сдвигом 3", c.Hint())
}

func TestUsePhrases(t *testing.T) {
	gen := NewWithSeed(1)
	gen.UsePhrases("en", []string{"follow the money"})
	m, _ := MissionByID(2)
	c, err := gen.Generate(m, cipher.English)
	require.NoError(t, err)
	assert.Equal(t, "follow the money", c.Plaintext)

	gen.UsePhrases("en", nil)
	c, err = gen.Generate(m, cipher.English)
	require.NoError(t, err)
	assert.Contains(t, defaultPhrases["en"][KindVigenere], c.Plaintext)
}

func TestGenerateRejectsUnknownInputs(t *testing.T) {
	gen := NewWithSeed(1)
	_, err := gen.Generate(Mission{Kind: "rot13"}, cipher.English)
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	custom, err := cipher.NewAlphabet("gr", "αβγ")
	require.NoError(t, err)
	_, err = gen.Generate(Mission{Kind: KindCaesar}, custom)
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}
