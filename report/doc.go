// SPDX-License-Identifier: MIT

// Package report turns codec results into rows and renders them: CSV files
// for spreadsheets, console tables and a probability histogram.
//
// The codec packages only produce values; every formatting decision (column
// names, number precision, how a newline symbol is shown, the UTF-8 BOM
// spreadsheet tools expect) lives here.
package report
