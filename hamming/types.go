// SPDX-License-Identifier: MIT

package hamming

import "strings"

// Codeword sizes.
const (
	DataBits     = 4
	CodeBits     = 7
	ByteCodeBits = 2 * CodeBits
)

// Codeword7 is a Hamming(7,4) codeword. Index 0 holds position 1.
// Each element is 0 or 1.
type Codeword7 [CodeBits]uint8

// Bit returns the bit at 1-based position pos; pos must be in 1..7.
func (c Codeword7) Bit(pos int) uint8 { return c[pos-1] }

// String renders the bits in position order, e.g. "0110011".
func (c Codeword7) String() string {
	var b strings.Builder
	b.Grow(CodeBits)
	for _, bit := range c {
		b.WriteByte('0' + bit&1)
	}

	return b.String()
}

// Data returns the data bits d0..d3 as a nibble, d0 most significant.
func (c Codeword7) Data() uint8 {
	return c[2]&1<<3 | c[4]&1<<2 | c[5]&1<<1 | c[6]&1
}

// Flip returns a copy of c with the bit at 1-based position pos inverted.
// It is the corruption step used to exercise Correct.
func (c Codeword7) Flip(pos int) (Codeword7, error) {
	if pos < 1 || pos > CodeBits {
		return c, ErrPosition
	}
	c[pos-1] ^= 1

	return c, nil
}

// Syndrome is the 3-bit parity-check result of a received Codeword7.
// Zero means no detected error; otherwise it is the 1-based position the
// single-error hypothesis blames.
type Syndrome uint8

// Position returns the blamed position, or 0 for a clean word.
func (s Syndrome) Position() int { return int(s) }

// Correction describes one Correct call.
//
// A nonzero Syndrome is a single-error hypothesis: with two or more flipped
// bits in Received, Corrected is a valid codeword that differs from the one
// that was sent.
type Correction struct {
	Received  Codeword7
	Corrected Codeword7
	Syndrome  Syndrome
}

// Changed reports whether Correct flipped a bit.
func (c Correction) Changed() bool { return c.Syndrome != 0 }

// Codeword14 protects one byte: High codes bits 7..4, Low codes bits 3..0.
type Codeword14 struct {
	High Codeword7
	Low  Codeword7
}

// Bits returns the 14 bits, High first; index 0 holds position 1.
func (c Codeword14) Bits() [ByteCodeBits]uint8 {
	var out [ByteCodeBits]uint8
	copy(out[:CodeBits], c.High[:])
	copy(out[CodeBits:], c.Low[:])

	return out
}

// String renders the 14 bits, High first.
func (c Codeword14) String() string { return c.High.String() + c.Low.String() }

// Data returns the protected byte.
func (c Codeword14) Data() byte { return c.High.Data()<<4 | c.Low.Data() }

// Flip returns a copy of c with 1-based position pos (1..14) inverted.
// Positions 1..7 fall in High, 8..14 in Low.
func (c Codeword14) Flip(pos int) (Codeword14, error) {
	var err error
	switch {
	case pos >= 1 && pos <= CodeBits:
		c.High, err = c.High.Flip(pos)
	case pos > CodeBits && pos <= ByteCodeBits:
		c.Low, err = c.Low.Flip(pos - CodeBits)
	default:
		err = ErrPosition
	}

	return c, err
}

// ByteCorrection describes one CorrectByte call; each half is corrected
// on its own, so a single error per half is always repaired.
type ByteCorrection struct {
	Received  Codeword14
	Corrected Codeword14
	High      Syndrome
	Low       Syndrome
}

// Changed reports whether either half was modified.
func (c ByteCorrection) Changed() bool { return c.High != 0 || c.Low != 0 }
