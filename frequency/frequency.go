// SPDX-License-Identifier: MIT

package frequency

import (
	"fmt"
	"math"
	"sort"
)

// Analyze counts every distinct symbol of symbols and returns the ranked
// alphabet.
//
// Algorithm:
//  1. One pass records each symbol's count and the index of its first
//     occurrence (insertion order slice + index map).
//  2. Probability = count / len(symbols).
//  3. Stable sort by probability descending; the slice is already in
//     first-seen order, so exact ties keep that order.
//
// Returns ErrEmptyInput when len(symbols) == 0.
//
// Complexity: O(N + K·log K) time, O(K) memory.
func Analyze[S comparable](symbols []S) (Ranked[S], error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	index := make(map[S]int)
	ranked := make(Ranked[S], 0)
	for _, s := range symbols {
		if i, ok := index[s]; ok {
			ranked[i].Count++
			continue
		}
		index[s] = len(ranked)
		ranked = append(ranked, Entry[S]{Symbol: s, Count: 1})
	}

	total := float64(len(symbols))
	for i := range ranked {
		ranked[i].Probability = float64(ranked[i].Count) / total
	}

	// Counts share the denominator, so ordering by count is ordering by
	// probability without float comparisons.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked, nil
}

// AnalyzeText is Analyze over the runes of text.
func AnalyzeText(text string, opts ...Option) (Ranked[rune], error) {
	var cfg textConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.normalize {
		text = cfg.form.String(text)
	}

	return Analyze([]rune(text))
}

// FromProbabilities builds a ranking from an explicit distribution.
// probs[i] is the probability of symbols[i]; entries are stably sorted
// descending, so equal probabilities keep their argument order.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrDuplicateSymbol and
// ErrBadProbability (value outside (0,1], NaN, or Σp ≠ 1 within
// SumTolerance).
//
// Complexity: O(K·log K) time, O(K) memory.
func FromProbabilities[S comparable](symbols []S, probs []float64) (Ranked[S], error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}
	if len(symbols) != len(probs) {
		return nil, fmt.Errorf("%w: %d symbols, %d probabilities", ErrLengthMismatch, len(symbols), len(probs))
	}

	seen := make(map[S]struct{}, len(symbols))
	ranked := make(Ranked[S], len(symbols))
	sum := 0.0
	for i, s := range symbols {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSymbol, s)
		}
		seen[s] = struct{}{}

		p := probs[i]
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return nil, fmt.Errorf("%w: p[%d]=%v", ErrBadProbability, i, p)
		}
		sum += p
		ranked[i] = Entry[S]{Symbol: s, Probability: p}
	}
	if math.Abs(sum-1) > SumTolerance {
		return nil, fmt.Errorf("%w: sum=%v", ErrBadProbability, sum)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability > ranked[j].Probability
	})

	return ranked, nil
}
