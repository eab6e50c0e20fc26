// SPDX-License-Identifier: MIT

package frequency

import "math"

// Entropy returns the Shannon entropy H = −Σ p·log2 p of r in bits per
// symbol. Zero-probability entries contribute nothing.
func Entropy[S comparable](r Ranked[S]) float64 {
	h := 0.0
	for _, e := range r {
		if e.Probability > 0 {
			h -= e.Probability * math.Log2(e.Probability)
		}
	}

	return h
}

// MaxEntropy returns log2 of the alphabet size, the entropy of a uniform
// source over the same symbols. It is 0 for alphabets of size 0 or 1.
func MaxEntropy[S comparable](r Ranked[S]) float64 {
	if len(r) < 2 {
		return 0
	}

	return math.Log2(float64(len(r)))
}

// Redundancy returns the alphabet redundancy 1 − H/Hmax.
// A one-symbol alphabet has Hmax = 0 and is reported as 0.
func Redundancy[S comparable](r Ranked[S]) float64 {
	hmax := MaxEntropy(r)
	if hmax == 0 {
		return 0
	}

	return 1 - Entropy(r)/hmax
}
