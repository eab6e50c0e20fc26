// SPDX-License-Identifier: MIT

// Package app wires the codec packages into the pipelines the CLI runs:
//
//   - Analyzer: text → ranking → Shannon–Fano and Huffman tables → Kraft
//     checks → packed bitstream round trip → Summary
//   - Protect: text → UTF-8 bytes → Hamming(7,4) per nibble → injected
//     flips → correction
//
// Codec packages never log; this layer reports warnings (degenerate
// alphabet) and defects (Kraft violation, failed round trip) through zap.
package app
