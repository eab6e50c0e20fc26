// SPDX-License-Identifier: MIT

// Package hamming implements the systematic Hamming(7,4) code and a byte
// adapter that protects each nibble of a byte independently.
//
// 🚀 Codeword layout (positions 1..7):
//
//	pos:  1   2   3   4   5   6   7
//	bit:  p1  p2  d0  p3  d1  d2  d3
//
//	p1 = d0 ⊕ d1 ⊕ d3   covers 1,3,5,7
//	p2 = d0 ⊕ d2 ⊕ d3   covers 2,3,6,7
//	p3 = d1 ⊕ d2 ⊕ d3   covers 4,5,6,7
//
// The syndrome c1 + 2·c2 + 4·c3 recomputed over a received word is 0 for a
// valid codeword and otherwise names the 1-based position of a single
// flipped bit.
//
// ⚠️ Limitation: the code corrects ONE error. Two flipped bits produce a
// nonzero syndrome that points at a third, untouched position; Correct
// then flips it and returns a valid but wrong codeword. Three or more
// flips may even yield syndrome 0. Nothing in this package can tell these
// cases apart from a genuine single error; Correction reports what was
// done, not whether the result is the transmitted word.
//
// ⚙️ Usage:
//
//	cw, _ := hamming.EncodeNibble(0b1011)  // 0110011
//	bad, _ := cw.Flip(5)
//	fix := hamming.Correct(bad)            // fix.Syndrome == 5
//	fix.Corrected.Data()                   // 0b1011
//
//	word := hamming.EncodeByte('A')        // two codewords, high nibble first
//
// All functions are pure and safe for concurrent use. Every operation is O(1).
package hamming
