// SPDX-License-Identifier: MIT

package frequency

import "errors"

var (
	// ErrEmptyInput is returned when there are no symbols to model.
	ErrEmptyInput = errors.New("frequency: empty input")

	// ErrLengthMismatch is returned by FromProbabilities when the symbol
	// and probability slices differ in length.
	ErrLengthMismatch = errors.New("frequency: symbols and probabilities differ in length")

	// ErrBadProbability signals a probability outside (0,1], a NaN, or a
	// distribution whose sum is not 1 within SumTolerance.
	ErrBadProbability = errors.New("frequency: invalid probability distribution")

	// ErrDuplicateSymbol is returned by FromProbabilities when a symbol
	// appears twice.
	ErrDuplicateSymbol = errors.New("frequency: duplicate symbol")
)
