// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/infocode/frequency"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	changedBit  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("9"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

// RenderCodes draws the code table.
func RenderCodes(rows []CodeRow) string {
	t := newTable("Symbol", "Frequency", "Probability", "Shannon-Fano", "Huffman")
	for _, r := range rows {
		t.Row(r.Symbol, strconv.Itoa(r.Count), fmt.Sprintf("%.6f", r.Probability), r.ShannonFano, r.Huffman)
	}

	return t.Render()
}

// RenderHamming draws the 14-bit table; rows where the correction changed
// the bit are highlighted.
func RenderHamming(rows []BitRow) string {
	t := newTable("Bit", "Encoded", "Corrected")
	for _, r := range rows {
		t.Row(strconv.Itoa(r.Index), strconv.Itoa(int(r.Encoded)), strconv.Itoa(int(r.Corrected)))
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row >= 0 && row < len(rows) && rows[row].Encoded != rows[row].Corrected:
			return changedBit
		}

		return cellStyle
	})

	return t.Render()
}

// RenderSummaries draws one column per text, one row per figure.
func RenderSummaries(sums []Summary) string {
	headers := []string{"Parameter"}
	for _, s := range sums {
		headers = append(headers, s.Name)
	}
	t := newTable(headers...)

	add := func(name string, value func(Summary) string) {
		row := []string{name}
		for _, s := range sums {
			row = append(row, value(s))
		}
		t.Row(row...)
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

	add("Length", func(s Summary) string { return strconv.Itoa(s.Length) })
	add("Alphabet size", func(s Summary) string { return strconv.Itoa(s.Alphabet) })
	add("Entropy H", func(s Summary) string { return f(s.Entropy) })
	add("Max entropy", func(s Summary) string { return f(s.MaxEntropy) })
	add("Alphabet redundancy", func(s Summary) string { return f(s.Redundancy) })
	add("Shannon-Fano avg length", func(s Summary) string { return f(s.ShannonFanoAvg) })
	add("Shannon-Fano redundancy", func(s Summary) string { return f(s.ShannonFanoRedundancy) })
	add("Shannon-Fano Kraft", func(s Summary) string {
		return fmt.Sprintf("%s (%.6f)", s.ShannonFanoKraft, s.ShannonFanoKraft.Sum)
	})
	add("Huffman avg length", func(s Summary) string { return f(s.HuffmanAvg) })
	add("Huffman redundancy", func(s Summary) string { return f(s.HuffmanRedundancy) })
	add("Huffman Kraft", func(s Summary) string {
		return fmt.Sprintf("%s (%.6f)", s.HuffmanKraft, s.HuffmanKraft.Sum)
	})

	return t.Render()
}

// Histogram draws one horizontal bar per symbol, longest bar = width
// cells. limit > 0 keeps only the limit most probable symbols.
func Histogram(r frequency.Ranked[rune], width, limit int) string {
	if len(r) == 0 || width <= 0 {
		return ""
	}
	if limit > 0 && limit < len(r) {
		r = r[:limit]
	}

	maxP := r[0].Probability
	label := 0
	for _, e := range r {
		if n := lipgloss.Width(DisplaySymbol(e.Symbol)); n > label {
			label = n
		}
	}

	var b strings.Builder
	for _, e := range r {
		n := int(e.Probability / maxP * float64(width))
		if n == 0 {
			n = 1
		}
		sym := DisplaySymbol(e.Symbol)
		b.WriteString(sym)
		b.WriteString(strings.Repeat(" ", label-lipgloss.Width(sym)+1))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		fmt.Fprintf(&b, " %.4f\n", e.Probability)
	}

	return b.String()
}
