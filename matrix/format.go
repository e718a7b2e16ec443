// SPDX-License-Identifier: MIT

// Package matrix - formatted output.
//
// Layout (row-major):
//   - one line per row, elements rendered as "%+1.<precision>f" and separated
//     by a single space;
//   - a blank line after the last row.
//
// Values are formatted through float64, so output is locale independent and
// identical for every element type holding the same number.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = ' '
	_fmtRowEnd  = '\n'
	_fmtElement = "%+1.*f"
)

// Fprint writes m to w with the given number of decimals.
// A negative precision selects DefaultPrecision.
// Returns the first write error, if any.
// Complexity: O(r*c).
func (m *Dense[T]) Fprint(w io.Writer, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	bw := bufio.NewWriter(w)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				_ = bw.WriteByte(_fmtSep)
			}
			_, _ = fmt.Fprintf(bw, _fmtElement, precision, float64(m.data[base+j]))
		}
		_ = bw.WriteByte(_fmtRowEnd)
	}
	_ = bw.WriteByte(_fmtRowEnd) // trailing blank line

	// bufio keeps the first error; Flush reports it.
	return bw.Flush()
}

// Print writes m to standard output; see Fprint.
func (m *Dense[T]) Print(precision int) error {
	return m.Fprint(os.Stdout, precision)
}

// String renders m with DefaultPrecision, in the Fprint layout.
func (m *Dense[T]) String() string {
	var b strings.Builder
	_ = m.Fprint(&b, DefaultPrecision) // strings.Builder never fails

	return b.String()
}
