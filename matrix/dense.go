// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer whole-row and whole-column sweeps for selection tables, where an
//     algorithm reads a row as a probability vector and zeroes a column at once.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     Row: O(1) (aliasing slice); RowSum/FillRow: O(c); FillCol: O(r); Fill: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag for row accessors
	ctxFillRow = "FillRow" // method tag for row fills
	ctxFillCol = "FillCol" // method tag for column fills
	ctxFill    = "Fill"    // method tag for whole-matrix fills
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". The sentinel is preserved for errors.Is.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewSquare creates an n×n matrix whose off-diagonal entries equal off and whose
// diagonal entries equal diag. It is the natural seed for selection tables where
// self-selection is excluded (diag=0, off=1).
//
// Errors: ErrInvalidDimensions for n<=0; ErrNaNInf for non-finite inputs.
//
// Complexity: O(n²).
func NewSquare(n int, diag, off float64) (*Dense, error) {
	if !isFinite(diag) || !isFinite(off) {
		return nil, ErrNaNInf
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j, base int
	for i = 0; i < n; i++ { // row sweep
		base = i * n
		for j = 0; j < n; j++ { // column sweep
			if i == j {
				m.data[base+j] = diag
				continue
			}
			m.data[base+j] = off
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Errors: ErrOutOfRange (wrapped with call-site context), ErrNilMatrix.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns value v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns the i-th row as a slice aliasing the backing buffer.
// Mutations through the slice are visible in the matrix; callers that need an
// independent copy must copy it themselves.
//
// Complexity: O(1), no allocation.
func (m *Dense) Row(i int) ([]float64, error) {
	if _, err := m.indexOf(i, 0); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// RowSum returns the sum of the i-th row.
//
// Complexity: O(c).
func (m *Dense) RowSum(i int) (float64, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}

	var (
		s float64
		v float64
	)
	for _, v = range row {
		s += v
	}

	return s, nil
}

// FillRow sets every entry of row i to v.
//
// Complexity: O(c).
func (m *Dense) FillRow(i int, v float64) error {
	if !isFinite(v) {
		return denseErrorf(ctxFillRow, i, 0, ErrNaNInf)
	}
	row, err := m.Row(i)
	if err != nil {
		return denseErrorf(ctxFillRow, i, 0, err)
	}

	var j int
	for j = range row {
		row[j] = v
	}

	return nil
}

// FillCol sets every entry of column j to v.
//
// Complexity: O(r).
func (m *Dense) FillCol(j int, v float64) error {
	if _, err := m.indexOf(0, j); err != nil {
		return denseErrorf(ctxFillCol, 0, j, err)
	}
	if !isFinite(v) {
		return denseErrorf(ctxFillCol, 0, j, ErrNaNInf)
	}

	var i int
	for i = 0; i < m.r; i++ { // stride by c through the flat buffer
		m.data[i*m.c+j] = v
	}

	return nil
}

// Fill sets every entry to v.
//
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !isFinite(v) {
		return denseErrorf(ctxFill, 0, 0, ErrNaNInf)
	}

	var k int
	for k = range m.data {
		m.data[k] = v
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
//
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone without the interface round-trip.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and bitwise-identical entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
//
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
