// SPDX-License-Identifier: MIT

package hamming

// EncodeByte splits b into its high nibble (first four bits of the 8-bit
// MSB-first representation) and low nibble and encodes each on its own.
//
//	EncodeByte(0xD0) // High = code(1101) = 1010101, Low = code(0000) = 0000000
//
// Complexity: O(1).
func EncodeByte(b byte) Codeword14 {
	return Codeword14{High: encodeNibble(b >> 4), Low: encodeNibble(b & 0xF)}
}

// CorrectByte runs Correct on each half independently. An error in one
// half never affects the other.
//
// Complexity: O(1).
func CorrectByte(c Codeword14) ByteCorrection {
	high := Correct(c.High)
	low := Correct(c.Low)

	return ByteCorrection{
		Received:  c,
		Corrected: Codeword14{High: high.Corrected, Low: low.Corrected},
		High:      high.Syndrome,
		Low:       low.Syndrome,
	}
}

// EncodeBytes encodes every byte of data, e.g. the UTF-8 form of a
// character that does not fit in one byte.
func EncodeBytes(data []byte) []Codeword14 {
	out := make([]Codeword14, len(data))
	for i, b := range data {
		out[i] = EncodeByte(b)
	}

	return out
}

// CorrectBytes corrects every codeword and returns the recovered bytes
// together with the per-byte outcomes.
func CorrectBytes(words []Codeword14) ([]byte, []ByteCorrection) {
	data := make([]byte, len(words))
	fixes := make([]ByteCorrection, len(words))
	for i, w := range words {
		fixes[i] = CorrectByte(w)
		data[i] = fixes[i].Corrected.Data()
	}

	return data, fixes
}
