// SPDX-License-Identifier: MIT

package bitstream

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"

	"github.com/katalvlaran/infocode/shannonfano"
)

var (
	// ErrUnknownSymbol is returned by Encode for a symbol without a code.
	ErrUnknownSymbol = errors.New("bitstream: symbol has no code")

	// ErrTruncated is returned by Decode when the bits end inside a code
	// or the buffer holds fewer bits than Packed.Bits.
	ErrTruncated = errors.New("bitstream: truncated stream")

	// ErrInvalidTable wraps the shannonfano validation error of a table
	// that cannot be decoded unambiguously.
	ErrInvalidTable = errors.New("bitstream: invalid code table")
)

// Packed is an encoded message.
type Packed struct {
	Data []byte
	Bits int
}

// String renders the meaningful bits as '0'/'1' characters. A Bits value
// beyond the buffer is clamped to 8·len(Data).
func (p Packed) String() string {
	n := min(max(p.Bits, 0), 8*len(p.Data))
	out := make([]byte, n)
	for i := range out {
		out[i] = '0' + p.Data[i/8]>>(7-uint(i%8))&1
	}

	return string(out)
}

// Encode writes the code of every symbol of msg.
//
// Errors: ErrUnknownSymbol, and any write error reported by bitio.
func Encode[S comparable](msg []S, t shannonfano.Table[S]) (Packed, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	n := 0
	for i, s := range msg {
		code, ok := t[s]
		if !ok {
			return Packed{}, fmt.Errorf("%w: %v at index %d", ErrUnknownSymbol, s, i)
		}
		for j := 0; j < len(code); j++ {
			if err := w.WriteBool(code[j] == '1'); err != nil {
				return Packed{}, fmt.Errorf("bitstream: write: %w", err)
			}
		}
		n += len(code)
	}
	if err := w.Close(); err != nil {
		return Packed{}, fmt.Errorf("bitstream: flush: %w", err)
	}

	return Packed{Data: buf.Bytes(), Bits: n}, nil
}

// trie is a binary tree stored as a slice; node 0 is the root.
type trie[S comparable] struct {
	next   [][2]int // child indexes, 0 = absent
	leaf   []bool
	symbol []S
}

func newTrie[S comparable](t shannonfano.Table[S]) *trie[S] {
	tr := &trie[S]{next: make([][2]int, 1), leaf: make([]bool, 1), symbol: make([]S, 1)}
	for s, code := range t {
		at := 0
		for j := 0; j < len(code); j++ {
			b := code[j] - '0'
			if tr.next[at][b] == 0 {
				tr.next = append(tr.next, [2]int{})
				tr.leaf = append(tr.leaf, false)
				tr.symbol = append(tr.symbol, *new(S))
				tr.next[at][b] = len(tr.next) - 1
			}
			at = tr.next[at][b]
		}
		tr.leaf[at] = true
		tr.symbol[at] = s
	}

	return tr
}

// Decode reads p.Bits bits and returns the decoded symbols.
//
// Errors: ErrInvalidTable (wrapping the shannonfano validation error),
// ErrTruncated, and ErrUnknownSymbol for a bit path no code starts with.
func Decode[S comparable](p Packed, t shannonfano.Table[S]) ([]S, error) {
	if err := shannonfano.Validate(t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if p.Bits < 0 || p.Bits > 8*len(p.Data) {
		return nil, fmt.Errorf("%w: %d bits in %d bytes", ErrTruncated, p.Bits, len(p.Data))
	}

	tr := newTrie(t)
	r := bitio.NewReader(bytes.NewReader(p.Data))
	out := make([]S, 0)
	at := 0
	for i := 0; i < p.Bits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		b := 0
		if bit {
			b = 1
		}
		at = tr.next[at][b]
		if at == 0 {
			return nil, fmt.Errorf("%w: no code matches bits ending at %d", ErrUnknownSymbol, i+1)
		}
		if tr.leaf[at] {
			out = append(out, tr.symbol[at])
			at = 0
		}
	}
	if at != 0 {
		return nil, fmt.Errorf("%w: stream ends inside a code", ErrTruncated)
	}

	return out, nil
}
