// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"unicode"

	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/hamming"
	"github.com/katalvlaran/infocode/shannonfano"
)

// CodeRow is one symbol of a code table.
type CodeRow struct {
	Symbol      string
	Count       int
	Probability float64
	ShannonFano string
	Huffman     string
}

// CodeRows lists r in rank order with both codes. hf may be nil, in which
// case the Huffman column stays empty.
func CodeRows(r frequency.Ranked[rune], sf, hf shannonfano.Table[rune]) []CodeRow {
	rows := make([]CodeRow, len(r))
	for i, e := range r {
		rows[i] = CodeRow{
			Symbol:      DisplaySymbol(e.Symbol),
			Count:       e.Count,
			Probability: e.Probability,
			ShannonFano: sf[e.Symbol],
			Huffman:     hf[e.Symbol],
		}
	}

	return rows
}

// DisplaySymbol makes whitespace and control runes visible: '\n' is shown
// as `\n`, a space as "␣", other non-printing runes as U+XXXX.
func DisplaySymbol(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case ' ':
		return "␣"
	}
	if !unicode.IsPrint(r) {
		return "U+" + strconv.FormatInt(int64(r), 16)
	}

	return string(r)
}

// BitRow is one position of a Hamming-protected byte.
type BitRow struct {
	Index     int
	Encoded   uint8
	Corrected uint8
}

// HammingRows lists the 14 positions of fix, received word against the
// corrected one.
func HammingRows(fix hamming.ByteCorrection) []BitRow {
	enc := fix.Received.Bits()
	cor := fix.Corrected.Bits()
	rows := make([]BitRow, hamming.ByteCodeBits)
	for i := range rows {
		rows[i] = BitRow{Index: i + 1, Encoded: enc[i], Corrected: cor[i]}
	}

	return rows
}

// Summary collects the information-theoretic figures of one text.
type Summary struct {
	Name       string
	Length     int
	Alphabet   int
	Entropy    float64
	MaxEntropy float64
	Redundancy float64

	ShannonFanoAvg        float64
	ShannonFanoRedundancy float64
	ShannonFanoKraft      shannonfano.KraftResult

	HuffmanAvg        float64
	HuffmanRedundancy float64
	HuffmanKraft      shannonfano.KraftResult
}

// Summarize computes the Summary of one ranked text and its two codes.
func Summarize(name string, r frequency.Ranked[rune], sf, hf shannonfano.Table[rune]) Summary {
	return Summary{
		Name:       name,
		Length:     r.Total(),
		Alphabet:   len(r),
		Entropy:    frequency.Entropy(r),
		MaxEntropy: frequency.MaxEntropy(r),
		Redundancy: frequency.Redundancy(r),

		ShannonFanoAvg:        shannonfano.AverageLength(r, sf),
		ShannonFanoRedundancy: shannonfano.CodeRedundancy(r, sf),
		ShannonFanoKraft:      shannonfano.Kraft(sf),

		HuffmanAvg:        shannonfano.AverageLength(r, hf),
		HuffmanRedundancy: shannonfano.CodeRedundancy(r, hf),
		HuffmanKraft:      shannonfano.Kraft(hf),
	}
}
