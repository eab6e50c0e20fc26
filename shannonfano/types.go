// SPDX-License-Identifier: MIT

package shannonfano

import (
	"github.com/katalvlaran/infocode/frequency"
)

// RootCode is the code given to the only symbol of a one-symbol alphabet.
const RootCode = "0"

// KraftEpsilon absorbs floating-point error in the Kraft sum.
const KraftEpsilon = 1e-9

// Table maps every symbol of an alphabet to its binary code string.
// Tables built by this package are prefix-free and never contain "".
type Table[S comparable] map[S]string

// Code returns the code of s.
func (t Table[S]) Code(s S) (string, bool) {
	c, ok := t[s]

	return c, ok
}

// Lengths returns the code lengths in unspecified order.
func (t Table[S]) Lengths() []int {
	out := make([]int, 0, len(t))
	for _, c := range t {
		out = append(out, len(c))
	}

	return out
}

// InRankOrder returns the codes of r's symbols in rank order; symbols
// missing from t yield "".
func (t Table[S]) InRankOrder(r frequency.Ranked[S]) []string {
	out := make([]string, len(r))
	for i, e := range r {
		out[i] = t[e.Symbol]
	}

	return out
}

// Degenerate reports whether t codes a one-symbol alphabet.
func (t Table[S]) Degenerate() bool {
	return len(t) == 1
}

// KraftResult is the verdict of the Kraft inequality Σ 2^−len ≤ 1.
type KraftResult struct {
	Sum       float64
	Satisfied bool
}

// String renders the verdict for tables and logs.
func (k KraftResult) String() string {
	if k.Satisfied {
		return "satisfied"
	}

	return "violated"
}
