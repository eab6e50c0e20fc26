// SPDX-License-Identifier: MIT

// Package frequency turns a symbol sequence into a probability-ranked
// alphabet, the input of every prefix-code builder in infocode.
//
// 🚀 What does it compute?
//
//	For every distinct symbol of the input:
//	  • Count       — number of occurrences
//	  • Probability — Count / len(input)
//	and returns the entries sorted by probability, most probable first.
//	Exact ties keep the order in which the symbols were first seen, so the
//	ranking never depends on map iteration order.
//
// ✨ Also included:
//   - Entropy      — H = −Σ p·log2 p
//   - MaxEntropy   — log2 of the alphabet size
//   - Redundancy   — 1 − H/Hmax, how far the source is from uniform
//
// ⚙️ Usage:
//
//	ranked, err := frequency.AnalyzeText("abracadabra")
//	if err != nil {
//	  // ErrEmptyInput
//	}
//	fmt.Println(ranked[0].Symbol, ranked[0].Probability) // 'a' 0.4545…
//
// Symbols are any comparable type: runes for text, bytes for binary data.
//
// Complexity:
//
//   - Time:   O(N + K·log K) for N symbols and K distinct symbols
//   - Memory: O(K)
package frequency
