package hamming_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infocode/hamming"
)

// TestEncodeByte_Layout checks the nibble split on 0xD0, the first UTF-8
// byte of 'Б'.
func TestEncodeByte_Layout(t *testing.T) {
	word := hamming.EncodeByte(0xD0)
	assert.Equal(t, "1010101", word.High.String(), "high nibble 1101")
	assert.Equal(t, "0000000", word.Low.String(), "low nibble 0000")
	assert.Equal(t, "10101010000000", word.String())
	assert.Equal(t, byte(0xD0), word.Data())

	bits := word.Bits()
	assert.Equal(t, uint8(1), bits[0])
	assert.Equal(t, uint8(0), bits[13])
}

// TestCorrectByte_AllSingleFlips flips each of the 14 positions of every
// byte value and expects full recovery.
func TestCorrectByte_AllSingleFlips(t *testing.T) {
	for v := 0; v < 256; v++ {
		word := hamming.EncodeByte(byte(v))
		for pos := 1; pos <= hamming.ByteCodeBits; pos++ {
			bad, err := word.Flip(pos)
			require.NoError(t, err)

			fix := hamming.CorrectByte(bad)
			require.Equal(t, word, fix.Corrected, "byte %#x pos %d", v, pos)
			require.Equal(t, byte(v), fix.Corrected.Data())
			require.True(t, fix.Changed())
		}
	}
}

// TestCorrectByte_OneErrorPerHalf shows that the halves are independent:
// one error in each half is two single errors, both repaired.
func TestCorrectByte_OneErrorPerHalf(t *testing.T) {
	word := hamming.EncodeByte('A')
	bad, _ := word.Flip(3)
	bad, _ = bad.Flip(12)

	fix := hamming.CorrectByte(bad)
	assert.Equal(t, word, fix.Corrected)
	assert.Equal(t, hamming.Syndrome(3), fix.High)
	assert.Equal(t, hamming.Syndrome(5), fix.Low)
}

// TestCodeword14_Flip rejects positions outside 1..14.
func TestCodeword14_Flip(t *testing.T) {
	var word hamming.Codeword14
	_, err := word.Flip(0)
	assert.ErrorIs(t, err, hamming.ErrPosition)
	_, err = word.Flip(15)
	assert.ErrorIs(t, err, hamming.ErrPosition)
}

// TestEncodeBytes_Rune protects both UTF-8 bytes of a Cyrillic letter.
func TestEncodeBytes_Rune(t *testing.T) {
	words := hamming.EncodeBytes([]byte("Б"))
	require.Len(t, words, 2)

	words[1], _ = words[1].Flip(9)
	data, fixes := hamming.CorrectBytes(words)
	assert.Equal(t, "Б", string(data))
	assert.False(t, fixes[0].Changed())
	assert.True(t, fixes[1].Changed())
	assert.Equal(t, hamming.Syndrome(2), fixes[1].Low)
}

// TestParseCodeword14 round-trips the string form.
func TestParseCodeword14(t *testing.T) {
	word := hamming.EncodeByte(0x5A)
	parsed, err := hamming.ParseCodeword14(word.String())
	require.NoError(t, err)
	if diff := cmp.Diff(word, parsed); diff != "" {
		t.Errorf("parse mismatch (-want +got):\n%s", diff)
	}

	_, err = hamming.ParseCodeword14("0101")
	assert.ErrorIs(t, err, hamming.ErrInvalidLength)
}
