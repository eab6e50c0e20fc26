// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/infocode/hamming"
	"github.com/katalvlaran/infocode/report"
)

// WriteCodes writes <dir>/<name>_codes.csv and returns its path.
func WriteCodes(dir string, a *Analysis) (string, error) {
	path := filepath.Join(dir, a.Name+"_codes.csv")
	err := writeFile(path, func(f *os.File) error {
		return report.WriteCodesCSV(f, report.CodeRows(a.Ranked, a.ShannonFano, a.Huffman))
	})

	return path, err
}

// WriteHamming writes <dir>/hamming_code.csv with one 14-row block per
// byte and returns its path.
func WriteHamming(dir string, p Protection) (string, error) {
	path := filepath.Join(dir, "hamming_code.csv")
	rows := make([]report.BitRow, 0, hamming.ByteCodeBits*len(p.Fixes))
	for i, fix := range p.Fixes {
		for _, r := range report.HammingRows(fix) {
			r.Index += hamming.ByteCodeBits * i
			rows = append(rows, r)
		}
	}
	err := writeFile(path, func(f *os.File) error {
		return report.WriteHammingCSV(f, rows)
	})

	return path, err
}

// WriteWorkbook writes <dir>/<file> with one sheet of codes per analysis,
// in the order given, and returns its path.
func WriteWorkbook(dir, file string, results []*Analysis) (string, error) {
	path := filepath.Join(dir, file)
	sheets := make([]report.Sheet, len(results))
	for i, a := range results {
		sheets[i] = report.Sheet{Name: a.Name, Rows: report.CodeRows(a.Ranked, a.ShannonFano, a.Huffman)}
	}
	err := writeFile(path, func(f *os.File) error {
		return report.WriteCodesWorkbook(f, sheets)
	})

	return path, err
}

func writeFile(path string, fill func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("app: write %s: %w", path, err)
	}

	return f.Close()
}
