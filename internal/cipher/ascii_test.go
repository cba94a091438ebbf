package cipher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/cryptodet/internal/model"
)

func TestVigenereASCIIReferenceVector(t *testing.T) {
	out, err := VigenereASCII("ATTACKATDAWN", "LEMON")
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", out)

	out, err = VigenereASCII("AttackAtDawn", "lemon")
	require.NoError(t, err)
	assert.Equal(t, "LxfopvEfRnhr", out)
}

func TestVigenereASCIINonLettersKeepKeyPosition(t *testing.T) {
	out, err := VigenereASCII("ATTACK-AT-DAWN", "LEMON")
	require.NoError(t, err)
	assert.Equal(t, "LXFOPV-EF-RNHR", out)
}

func TestVigenereASCIIRoundTrip(t *testing.T) {
	for _, text := range []string{"Pa55w0rd!", "zZ-aA", "Привет, Bob"} {
		enc, err := VigenereASCII(text, "Key")
		require.NoError(t, err)
		dec, err := VigenereASCIIDecrypt(enc, "Key")
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	}
}

func TestVigenereASCIIRejectsBadKeys(t *testing.T) {
	_, err := VigenereASCII("abc", "")
	require.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = VigenereASCII("abc", "k y")
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestCaesarASCIIPreservesCase(t *testing.T) {
	assert.Equal(t, "Khoor, Zruog! 42", CaesarASCII("Hello, World! 42", 3))
	assert.Equal(t, "Hello, World! 42", CaesarASCII("Khoor, Zruog! 42", -3))
	assert.Equal(t, "aB", CaesarASCII("zA", 27))
	assert.Equal(t, CaesarASCII("Shift", 5), CaesarASCII("Shift", 5-26*4))
}

func TestCaesarASCIIExtremeShifts(t *testing.T) {
	assert.Equal(t, "Olssv", CaesarASCII("Hello", math.MaxInt))
	for _, shift := range []int{math.MaxInt, math.MinInt, math.MinInt + 1} {
		assert.Equal(t, CaesarASCII("Hello", mod(shift, latinSize)), CaesarASCII("Hello", shift), "shift %d", shift)
		assert.Equal(t, "Hello", CaesarASCIIDecrypt(CaesarASCII("Hello", shift), shift), "shift %d", shift)
	}
	assert.Equal(t, "Hello", CaesarASCII(CaesarASCII("Hello", math.MaxInt), -math.MaxInt))
}
