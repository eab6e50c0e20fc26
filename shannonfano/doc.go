// SPDX-License-Identifier: MIT

// Package shannonfano builds Shannon–Fano prefix codes from a ranked
// alphabet and checks them against the Kraft inequality.
//
// 🚀 How does Shannon–Fano work?
//
//	Take the alphabet sorted by probability, most probable first. Walk it
//	left to right accumulating probability; the first symbol at which the
//	running sum reaches half of the list's mass closes the LEFT half (that
//	symbol belongs to the left). Left symbols get a "0", right symbols a
//	"1", and both halves are split again until every part holds one symbol.
//
//	    {A:.5, B:.25, C:.25}
//	        ├─0─ A               → "0"
//	        └─1─ {B, C}
//	               ├─0─ B        → "10"
//	               └─1─ C        → "11"
//
// ✨ Guarantees:
//   - every code is non-empty and the table is prefix-free (leaves of a
//     binary tree);
//   - a one-symbol alphabet is coded as "0", never as the empty string;
//   - Σ 2^−len ≤ 1 (Kraft), checked by Kraft;
//   - the result is deterministic for a given ranking.
//
// Shannon–Fano is not minimum-redundancy; see package huffman for the
// optimal baseline built over the same ranking.
//
// ⚙️ Usage:
//
//	ranked, _ := frequency.AnalyzeText(text)
//	table, err := shannonfano.Build(ranked)
//	if err != nil {
//	  // ErrEmptyAlphabet or ErrDuplicateSymbol
//	}
//	if res := shannonfano.Kraft(table); !res.Satisfied {
//	  // a builder bug, not a runtime condition
//	}
//
// Complexity:
//
//   - Time:   O(K·D) for K symbols and recursion depth D (D ≤ K−1)
//   - Memory: O(K·D) for the code strings
package shannonfano
