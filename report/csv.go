// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// bom lets spreadsheet tools detect UTF-8 (Cyrillic symbols would
// otherwise be read in the system code page).
const bom = "\ufeff"

// Column headers.
var (
	CodeHeader    = []string{"symbol", "frequency", "probability", "shannon_fano", "huffman"}
	HammingHeader = []string{"bit", "encoded", "corrected"}
)

// WriteCodesCSV writes rows with CodeHeader, prefixed by a UTF-8 BOM.
func WriteCodesCSV(w io.Writer, rows []CodeRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, CodeHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Symbol,
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Probability, 'f', -1, 64),
			r.ShannonFano,
			r.Huffman,
		})
	}

	return writeCSV(w, records)
}

// WriteHammingCSV writes rows with HammingHeader, prefixed by a UTF-8 BOM.
func WriteHammingCSV(w io.Writer, rows []BitRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, HammingHeader)
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(int(r.Encoded)),
			strconv.Itoa(int(r.Corrected)),
		})
	}

	return writeCSV(w, records)
}

func writeCSV(w io.Writer, records [][]string) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return err
	}

	return cw.Error()
}
