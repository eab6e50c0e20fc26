// SPDX-License-Identifier: MIT

package shannonfano

import "errors"

var (
	// ErrEmptyAlphabet is returned when Build receives no symbols.
	ErrEmptyAlphabet = errors.New("shannonfano: empty alphabet")

	// ErrDuplicateSymbol is returned when a ranking lists a symbol twice;
	// a code table needs exactly one entry per symbol.
	ErrDuplicateSymbol = errors.New("shannonfano: duplicate symbol in ranking")

	// ErrDegenerateAlphabet is the warning for a one-symbol alphabet.
	// It is never returned by Build: the symbol is coded as RootCode and the
	// table stays usable. Callers obtain it from Warning.
	ErrDegenerateAlphabet = errors.New("shannonfano: degenerate one-symbol alphabet")

	// ErrEmptyCode signals a table entry with an empty code string.
	ErrEmptyCode = errors.New("shannonfano: empty code")

	// ErrNonBinaryCode signals a code containing characters other than '0'/'1'.
	ErrNonBinaryCode = errors.New("shannonfano: code is not binary")

	// ErrNotPrefixFree signals that one code is a prefix of another.
	ErrNotPrefixFree = errors.New("shannonfano: code is not prefix-free")
)
