// SPDX-License-Identifier: MIT

package shannonfano

import "github.com/katalvlaran/infocode/frequency"

// AverageLength returns Σ p·len(code) over r, the expected number of code
// bits per source symbol. Symbols missing from t count as length 0.
func AverageLength[S comparable](r frequency.Ranked[S], t Table[S]) float64 {
	avg := 0.0
	for _, e := range r {
		avg += e.Probability * float64(len(t[e.Symbol]))
	}

	return avg
}

// CodeRedundancy returns 1 − H/L̄, the share of code bits that carry no
// information. It is 0 when the average length is 0.
func CodeRedundancy[S comparable](r frequency.Ranked[S], t Table[S]) float64 {
	avg := AverageLength(r, t)
	if avg == 0 {
		return 0
	}

	return 1 - frequency.Entropy(r)/avg
}
