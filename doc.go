// Package infocode is a small toolkit for source coding and channel coding
// of text: measure an alphabet, give it a prefix code, pack it into bits and
// protect bytes against single bit errors.
//
// 🚀 What is infocode?
//
//	A generic, allocation-light library plus a CLI that brings together:
//		• Frequency models: stable descending ranking, entropy, redundancy
//		• Shannon-Fano codes: recursive half-mass split, Kraft check
//		• Huffman codes: optimal baseline for comparison
//		• Bit streams: pack and unpack coded messages
//		• Hamming(7,4): encode, syndrome, single-bit correction
//		• Reports: console tables, histograms and UTF-8 CSV
//
// ✨ Why choose infocode?
//
//   - Generic – any comparable symbol type, runes by default
//   - Deterministic – equal input always yields identical code tables
//   - Safe for concurrency – every operation is a pure function
//
// Under the hood, everything is organized in these subpackages:
//
//	frequency/   — Ranked alphabets, Analyze, Entropy, Redundancy
//	shannonfano/ — Table, Build, Split, Kraft, Validate, AverageLength
//	huffman/     — Build over the same Ranked input
//	bitstream/   — Encode/Decode packed messages
//	hamming/     — Codeword7, Codeword14, Encode, Correct, EncodeByte
//	report/      — rows, lipgloss tables, CSV writers
//
// Quick ASCII example (Shannon-Fano split of A:.5 B:.3 C:.2):
//
//	      {A B C}
//	     0/     \1
//	    {A}    {B C}
//	          0/   \1
//	         {B}   {C}
//
//	gives A=0, B=10, C=11.
//
//	go install github.com/katalvlaran/infocode/cmd/infocode@latest
package infocode
