package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infocode/bitstream"
	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/huffman"
	"github.com/katalvlaran/infocode/shannonfano"
)

// TestRoundTrip_ShannonFano encodes a text with its own Shannon–Fano code
// and decodes it back.
func TestRoundTrip_ShannonFano(t *testing.T) {
	text := []rune("Артём Ермолов: теория информации")
	r, err := frequency.Analyze(text)
	require.NoError(t, err)
	table, err := shannonfano.Build(r)
	require.NoError(t, err)

	p, err := bitstream.Encode(text, table)
	require.NoError(t, err)
	assert.Equal(t, (p.Bits+7)/8, len(p.Data), "last byte is padded")

	avg := shannonfano.AverageLength(r, table)
	assert.InDelta(t, avg*float64(len(text)), float64(p.Bits), 1e-6, "bit count matches the average length")

	back, err := bitstream.Decode(p, table)
	require.NoError(t, err)
	assert.Equal(t, text, back)
}

// TestRoundTrip_Huffman reuses the same machinery with the baseline code.
func TestRoundTrip_Huffman(t *testing.T) {
	msg := []byte("she sells sea shells by the sea shore")
	r, err := frequency.Analyze(msg)
	require.NoError(t, err)
	table, err := huffman.Build(r)
	require.NoError(t, err)

	p, err := bitstream.Encode(msg, table)
	require.NoError(t, err)
	back, err := bitstream.Decode(p, table)
	require.NoError(t, err)
	assert.Equal(t, msg, back)
}

// TestEncode_Bits checks the exact bit string of the dyadic scenario.
func TestEncode_Bits(t *testing.T) {
	table := shannonfano.Table[string]{"A": "0", "B": "10", "C": "11"}
	p, err := bitstream.Encode([]string{"A", "B", "C", "A"}, table)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Bits)
	assert.Equal(t, "010110", p.String())
	assert.Equal(t, []byte{0b01011000}, p.Data)
}

// TestPacked_StringClamps renders only the bits the buffer holds.
func TestPacked_StringClamps(t *testing.T) {
	p := bitstream.Packed{Data: []byte{0b10100000}, Bits: 12}
	assert.NotPanics(t, func() { _ = p.String() })
	assert.Equal(t, "10100000", p.String())
	assert.Empty(t, bitstream.Packed{Bits: 3}.String())
	assert.Empty(t, bitstream.Packed{Data: []byte{0xff}, Bits: -1}.String())
}

// TestEncode_UnknownSymbol rejects symbols missing from the table.
func TestEncode_UnknownSymbol(t *testing.T) {
	_, err := bitstream.Encode([]string{"A", "Z"}, shannonfano.Table[string]{"A": "0"})
	assert.ErrorIs(t, err, bitstream.ErrUnknownSymbol)
}

// TestDecode_Errors covers ambiguous tables and broken streams.
func TestDecode_Errors(t *testing.T) {
	table := shannonfano.Table[string]{"A": "0", "B": "10", "C": "11"}

	_, err := bitstream.Decode(bitstream.Packed{Data: []byte{0}, Bits: 1}, shannonfano.Table[string]{"A": "0", "B": "01"})
	assert.ErrorIs(t, err, bitstream.ErrInvalidTable)
	assert.ErrorIs(t, err, shannonfano.ErrNotPrefixFree, "validation cause is kept")

	// "1" alone is the start of B or C
	_, err = bitstream.Decode(bitstream.Packed{Data: []byte{0b10000000}, Bits: 1}, table)
	assert.ErrorIs(t, err, bitstream.ErrTruncated)

	_, err = bitstream.Decode(bitstream.Packed{Data: []byte{0}, Bits: 9}, table)
	assert.ErrorIs(t, err, bitstream.ErrTruncated)

	// a table that does not cover "1…" paths
	_, err = bitstream.Decode(bitstream.Packed{Data: []byte{0b10000000}, Bits: 2}, shannonfano.Table[string]{"A": "0"})
	assert.ErrorIs(t, err, bitstream.ErrUnknownSymbol)
}

// TestRoundTrip_SingleSymbol: the "0" code keeps a one-letter text decodable.
func TestRoundTrip_SingleSymbol(t *testing.T) {
	msg := []rune("ooooo")
	r, _ := frequency.Analyze(msg)
	table, err := shannonfano.Build(r)
	require.NoError(t, err)

	p, err := bitstream.Encode(msg, table)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Bits)
	back, err := bitstream.Decode(p, table)
	require.NoError(t, err)
	assert.Equal(t, msg, back)
}
