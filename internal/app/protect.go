// SPDX-License-Identifier: MIT

package app

import (
	"fmt"

	"github.com/katalvlaran/infocode/hamming"
)

// Protection is the Hamming run over one text.
type Protection struct {
	Text  string
	Bytes []byte
	Fixes []hamming.ByteCorrection
}

// Recovered returns the bytes after correction as a string.
func (p Protection) Recovered() string {
	out := make([]byte, len(p.Fixes))
	for i, f := range p.Fixes {
		out[i] = f.Corrected.Data()
	}

	return string(out)
}

// Protect encodes the UTF-8 bytes of text, flips the given 1-based
// positions (1..14) in every byte's codeword and corrects each word.
// Two flips in the same half exceed the code and are miscorrected; the
// result then differs from text, which Recovered makes visible.
func Protect(text string, flips []int) (Protection, error) {
	data := []byte(text)
	words := hamming.EncodeBytes(data)
	for i := range words {
		for _, pos := range flips {
			w, err := words[i].Flip(pos)
			if err != nil {
				return Protection{}, fmt.Errorf("app: flip %d: %w", pos, err)
			}
			words[i] = w
		}
	}
	_, fixes := hamming.CorrectBytes(words)

	return Protection{Text: text, Bytes: data, Fixes: fixes}, nil
}
