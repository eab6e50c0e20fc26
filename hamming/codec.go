// SPDX-License-Identifier: MIT

package hamming

import "fmt"

// Encode returns the codeword of the data bits d = (d0, d1, d2, d3).
//
// Errors: ErrInvalidBit when any element is not 0 or 1.
//
// Complexity: O(1).
func Encode(d [DataBits]uint8) (Codeword7, error) {
	for i, bit := range d {
		if bit > 1 {
			return Codeword7{}, fmt.Errorf("%w: d%d=%d", ErrInvalidBit, i, bit)
		}
	}

	return encode(d[0], d[1], d[2], d[3]), nil
}

// EncodeBits is Encode over a slice, as produced by parsing a bit string.
//
// Errors: ErrInvalidLength unless len(bits) == 4, ErrInvalidBit.
func EncodeBits(bits []uint8) (Codeword7, error) {
	if len(bits) != DataBits {
		return Codeword7{}, fmt.Errorf("%w: want %d data bits, got %d", ErrInvalidLength, DataBits, len(bits))
	}

	return Encode([DataBits]uint8(bits))
}

// EncodeNibble encodes the low four bits of n, most significant bit as d0,
// so EncodeNibble(0b1011) codes d = (1,0,1,1).
//
// Errors: ErrNibbleRange when n > 0xF.
func EncodeNibble(n uint8) (Codeword7, error) {
	if n > 0xF {
		return Codeword7{}, fmt.Errorf("%w: %#x", ErrNibbleRange, n)
	}

	return encodeNibble(n), nil
}

func encodeNibble(n uint8) Codeword7 {
	return encode(n>>3&1, n>>2&1, n>>1&1, n&1)
}

func encode(d0, d1, d2, d3 uint8) Codeword7 {
	p1 := d0 ^ d1 ^ d3
	p2 := d0 ^ d2 ^ d3
	p3 := d1 ^ d2 ^ d3

	return Codeword7{p1, p2, d0, p3, d1, d2, d3}
}

// Syndrome recomputes the three parity checks over c using the encoder's
// coverage sets and returns c1 + 2·c2 + 4·c3.
func (c Codeword7) Syndrome() Syndrome {
	c1 := (c[0] ^ c[2] ^ c[4] ^ c[6]) & 1
	c2 := (c[1] ^ c[2] ^ c[5] ^ c[6]) & 1
	c3 := (c[3] ^ c[4] ^ c[5] ^ c[6]) & 1

	return Syndrome(c1 | c2<<1 | c3<<2)
}

// Correct flips the bit named by the syndrome of received, if any, and
// returns the outcome. It corrects at most one bit and keeps no state
// between calls. See Correction for the multi-error caveat.
//
// Classification: syndrome decoding, single-error-correcting, no
// double-error detection.
//
// Usage:
//
//	fix := hamming.Correct(received)
//	if fix.Changed() {
//	  // bit fix.Syndrome.Position() was flipped back
//	}
//
// Complexity: O(1) time and memory.
func Correct(received Codeword7) Correction {
	s := received.Syndrome()
	corrected := received
	if s != 0 {
		corrected[s-1] ^= 1
	}

	return Correction{Received: received, Corrected: corrected, Syndrome: s}
}

// ParseCodeword7 reads a 7-character string of '0' and '1'.
//
// Errors: ErrInvalidLength, ErrInvalidBit.
func ParseCodeword7(s string) (Codeword7, error) {
	var c Codeword7
	if err := parseBits(s, c[:]); err != nil {
		return Codeword7{}, err
	}

	return c, nil
}

// ParseCodeword14 reads a 14-character string, High half first.
//
// Errors: ErrInvalidLength, ErrInvalidBit.
func ParseCodeword14(s string) (Codeword14, error) {
	var bits [ByteCodeBits]uint8
	if err := parseBits(s, bits[:]); err != nil {
		return Codeword14{}, err
	}

	return Codeword14{High: Codeword7(bits[:CodeBits]), Low: Codeword7(bits[CodeBits:])}, nil
}

func parseBits(s string, dst []uint8) error {
	if len(s) != len(dst) {
		return fmt.Errorf("%w: want %d bits, got %d", ErrInvalidLength, len(dst), len(s))
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			dst[i] = 0
		case '1':
			dst[i] = 1
		default:
			return fmt.Errorf("%w: %q at position %d", ErrInvalidBit, s[i], i+1)
		}
	}

	return nil
}
