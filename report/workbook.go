// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name spreadsheet applications accept.
const maxSheetName = 31

// Sheet is one text's code table inside a workbook.
type Sheet struct {
	Name string
	Rows []CodeRow
}

// WriteCodesWorkbook writes an .xlsx workbook with one sheet per text,
// CodeHeader in the first row. Code strings are stored as text so leading
// zeros survive. Sheet names are cut to 31 characters and characters
// Excel forbids (: \ / ? * [ ]) become '_'.
func WriteCodesWorkbook(w io.Writer, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, s := range sheets {
		name := SheetName(s.Name)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return fmt.Errorf("report: sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("report: sheet %q: %w", name, err)
		}
		if err := fillSheet(f, name, s.Rows); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	return f.Write(w)
}

func fillSheet(f *excelize.File, sheet string, rows []CodeRow) error {
	header := make([]any, len(CodeHeader))
	for i, h := range CodeHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("report: sheet %q header: %w", sheet, err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Symbol, r.Count, r.Probability, r.ShannonFano, r.Huffman}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("report: sheet %q row %d: %w", sheet, i+2, err)
		}
	}

	return f.SetColWidth(sheet, "D", "E", 18)
}

// SheetName returns name in a form accepted as a worksheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}

		return r
	}, name)
	if name == "" {
		name = "_"
	}
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}

	return name
}
