// SPDX-License-Identifier: MIT

package huffman

import (
	"errors"
	"fmt"
	"math"

	"github.com/icza/huffman"

	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/shannonfano"
)

var (
	// ErrEmptyAlphabet is returned when Build receives no symbols.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrDuplicateSymbol is returned when a ranking lists a symbol twice.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol in ranking")
)

// weightScale turns a bare probability into an integer leaf weight when the
// ranking carries no observed counts.
const weightScale = 1 << 30

// Build returns a Huffman code table for r. The table type is shared with
// package shannonfano so both codes go through the same Kraft, metric and
// bitstream helpers.
//
// Leaves are weighted by Entry.Count. Rankings built from a bare
// distribution (any Count == 0) are weighted by round(p·2^30), at least 1.
//
// Errors: ErrEmptyAlphabet, ErrDuplicateSymbol.
//
// Complexity: O(K·log K) time, O(K) memory.
func Build[S comparable](r frequency.Ranked[S]) (shannonfano.Table[S], error) {
	if len(r) == 0 {
		return nil, ErrEmptyAlphabet
	}

	seen := make(map[S]struct{}, len(r))
	counted := true
	for _, e := range r {
		if _, dup := seen[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSymbol, e.Symbol)
		}
		seen[e.Symbol] = struct{}{}
		if e.Count <= 0 {
			counted = false
		}
	}
	if len(r) == 1 {
		return shannonfano.Table[S]{r[0].Symbol: shannonfano.RootCode}, nil
	}

	leaves := make([]*huffman.Node, len(r))
	for i, e := range r {
		leaves[i] = &huffman.Node{Value: huffman.ValueType(i), Count: weight(e, counted)}
	}
	// Build sorts its argument in place; leaves keeps rank order.
	huffman.Build(append([]*huffman.Node(nil), leaves...))

	table := make(shannonfano.Table[S], len(r))
	for i, leaf := range leaves {
		table[r[i].Symbol] = codeString(leaf.Code())
	}

	return table, nil
}

func weight[S comparable](e frequency.Entry[S], counted bool) int {
	if counted {
		return e.Count
	}
	w := int(math.Round(e.Probability * weightScale))
	if w < 1 {
		w = 1
	}

	return w
}

// codeString renders the bits returned by Node.Code, whose least
// significant bit is the edge nearest the leaf, root edge first.
func codeString(code uint64, bits byte) string {
	out := make([]byte, bits)
	for i := range out {
		out[i] = '0' + byte(code>>(int(bits)-1-i)&1)
	}

	return string(out)
}
