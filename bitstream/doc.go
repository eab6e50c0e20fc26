// SPDX-License-Identifier: MIT

// Package bitstream packs a symbol sequence into bytes using a prefix code
// table and unpacks it again.
//
// Codes are written most significant bit first with github.com/icza/bitio;
// the last byte is zero padded and Packed.Bits records how many bits are
// meaningful. Decoding walks a binary trie built from the table, which is
// where prefix-freeness pays off: every leaf is reached without look-ahead.
//
//	t, _ := shannonfano.Build(ranked)
//	p, _ := bitstream.Encode([]rune(text), t)
//	back, _ := bitstream.Decode(p, t)   // == []rune(text)
//
// The whole message is held in memory.
package bitstream
