// SPDX-License-Identifier: MIT

// Package mat - diagnostic formatting and CSV export.
//
// Purpose:
//   - One row-dump implementation shared by every EntryReadable's String.
//   - A thin CSV writer for offline inspection of any EntryReadable.

package mat

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Formatting literals shared by formatRows.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// sliceNormMax returns the maximum absolute value in data.
// Complexity: O(len(data)).
func sliceNormMax(data []float64) float64 {
	var maxAbs float64
	for _, v := range data {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs
}

// formatRows renders m as "[a, b]\n" lines, one per row.
// In-band zeros and implicit zeros render identically.
// Complexity: O(rows*cols).
func formatRows(m EntryReadable) string {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j) // indices are in range by construction
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(fmt.Sprintf("%g", v))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Format renders m as "[a, b]\n" lines, one per row; the shared String
// implementation for EntryReadable types across the module.
// Complexity: O(rows*cols).
func Format(m EntryReadable) string { return formatRows(m) }

// WriteCSV writes m row-by-row as CSV records, formatting entries with
// strconv.FormatFloat in the shortest round-trippable form.
// Complexity: O(rows*cols).
func WriteCSV(w io.Writer, m EntryReadable) error {
	cw := csv.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
