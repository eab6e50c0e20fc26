// SPDX-License-Identifier: MIT

package hamming

import "errors"

var (
	// ErrInvalidLength is returned when a bit sequence has the wrong width:
	// 4 data bits, 7 codeword bits or 14 combined bits.
	ErrInvalidLength = errors.New("hamming: invalid bit length")

	// ErrInvalidBit is returned when a bit is neither 0 nor 1.
	ErrInvalidBit = errors.New("hamming: bit must be 0 or 1")

	// ErrNibbleRange is returned by EncodeNibble for values above 0xF.
	ErrNibbleRange = errors.New("hamming: nibble out of range")

	// ErrPosition is returned by Flip for a position outside the codeword.
	ErrPosition = errors.New("hamming: bit position out of range")
)
