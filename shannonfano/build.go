// SPDX-License-Identifier: MIT

package shannonfano

import (
	"fmt"

	"github.com/katalvlaran/infocode/frequency"
)

// Build assigns a Shannon–Fano code to every symbol of r.
//
// Algorithm:
//  1. |r| == 1 at the root: the symbol gets RootCode ("0").
//  2. Otherwise split r at Split(r): r[:k+1] is the left part and gets
//     prefix+"0", r[k+1:] gets prefix+"1".
//  3. A part of one symbol adds no bits; its accumulated prefix is its code.
//  4. Each call returns its own table fragment; the caller merges the two
//     disjoint fragments.
//
// r is expected in rank order (frequency.Ranked); Build never modifies it.
//
// Errors: ErrEmptyAlphabet, ErrDuplicateSymbol.
//
// Complexity:
//   - Time:   O(K·D) for K symbols and recursion depth D ≤ K−1; each level
//     re-sums its sub-lists and extends their prefixes.
//   - Memory: O(K·D) for the code strings plus O(D) stack.
func Build[S comparable](r frequency.Ranked[S]) (Table[S], error) {
	if len(r) == 0 {
		return nil, ErrEmptyAlphabet
	}
	seen := make(map[S]struct{}, len(r))
	for _, e := range r {
		if _, dup := seen[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSymbol, e.Symbol)
		}
		seen[e.Symbol] = struct{}{}
	}

	if len(r) == 1 {
		return Table[S]{r[0].Symbol: RootCode}, nil
	}

	return partition(r, ""), nil
}

// partition codes the sub-list r under prefix. len(r) ≥ 1.
func partition[S comparable](r frequency.Ranked[S], prefix string) Table[S] {
	if len(r) == 1 {
		return Table[S]{r[0].Symbol: prefix}
	}

	k := Split(r)
	left := partition(r[:k+1], prefix+"0")
	right := partition(r[k+1:], prefix+"1")
	for s, c := range right {
		left[s] = c
	}

	return left
}

// Split returns the index of the last symbol of the left part of r: the
// first index at which the cumulative probability reaches half of r's mass.
// The crossing symbol is part of the left half.
//
// For len(r) ≥ 2 the result is clamped to len(r)−2 so the right part is
// never empty; on a descending ranking the clamp only matters when rounding
// keeps the running sum a hair below the threshold.
//
// Usage:
//
//	k := shannonfano.Split(r) // r[:k+1] is coded "…0", r[k+1:] "…1"
//
// Complexity: O(len(r)) time, O(1) memory.
func Split[S comparable](r frequency.Ranked[S]) int {
	if len(r) < 2 {
		return 0
	}

	half := r.Mass() / 2
	cum := 0.0
	k := len(r) - 2
	for i, e := range r {
		cum += e.Probability
		if cum >= half {
			k = i
			break
		}
	}
	if k > len(r)-2 {
		k = len(r) - 2
	}

	return k
}

// Warning returns ErrDegenerateAlphabet for a one-symbol table and nil
// otherwise.
func Warning[S comparable](t Table[S]) error {
	if t.Degenerate() {
		return ErrDegenerateAlphabet
	}

	return nil
}
