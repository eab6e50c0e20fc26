// SPDX-License-Identifier: MIT

package frequency

// SumTolerance bounds |Σp − 1| for a valid distribution.
const SumTolerance = 1e-9

// Entry is one symbol of a modelled alphabet.
//
// Count is zero when the entry was built from a bare distribution
// (FromProbabilities) rather than from observed data.
type Entry[S comparable] struct {
	Symbol      S
	Count       int
	Probability float64
}

// Ranked is an alphabet sorted by Probability, descending, with exact ties
// in first-seen order. Later stages read it and never reorder it.
type Ranked[S comparable] []Entry[S]

// Total returns the number of observed symbols the ranking was built from.
// It is zero for rankings built by FromProbabilities.
func (r Ranked[S]) Total() int {
	total := 0
	for _, e := range r {
		total += e.Count
	}

	return total
}

// Symbols returns the symbols in rank order.
func (r Ranked[S]) Symbols() []S {
	out := make([]S, len(r))
	for i, e := range r {
		out[i] = e.Symbol
	}

	return out
}

// Probability returns the probability of s, or 0 if s is not in the alphabet.
func (r Ranked[S]) Probability(s S) float64 {
	for _, e := range r {
		if e.Symbol == s {
			return e.Probability
		}
	}

	return 0
}

// Mass returns Σ Probability over r. For a full alphabet it is 1 up to
// rounding; for a sub-list it is the sub-list's share of the mass.
func (r Ranked[S]) Mass() float64 {
	sum := 0.0
	for _, e := range r {
		sum += e.Probability
	}

	return sum
}

// Clone returns an independent copy of r.
func (r Ranked[S]) Clone() Ranked[S] {
	out := make(Ranked[S], len(r))
	copy(out, r)

	return out
}
