// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a generic row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every structural transform (Transpose, WithoutRowAndCol) copy-based so the
//     receiver is never mutated; only Set/SetMatrix/Assign write in place.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set: O(1); Clone/Equal/Transpose: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"               // method tag used in error wrappers
	ctxSet       = "Set"              // method tag used in error wrappers
	ctxSetMatrix = "SetMatrix"        // bulk setter tag
	ctxAssign    = "Assign"           // assignment tag
	ctxWithout   = "WithoutRowAndCol" // minor extraction tag
	ctxCopy      = "NewCopy"          // copy-constructor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over element type T.
//   - r,c hold dimensions (both > 0 for every Dense reachable through the public API).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates an r×c matrix with every element set to T's zero value
// (0 for numbers, false for bool).
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	// Validate shape before allocating anything.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Element](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewFromRows builds a matrix from a rectangular slice of rows.
// The input is copied; later changes to values do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when values is empty, a row is empty, or rows are ragged.
func NewFromRows[T Element](values [][]T) (*Dense[T], error) {
	if len(values) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense[T](len(values), len(values[0]))
	if err != nil {
		return nil, err
	}
	if err = m.SetMatrix(values); err != nil {
		return nil, err
	}

	return m, nil
}

// NewCopy returns a deep copy of other (copy constructor).
//
// Errors:
//   - ErrNilMatrix when other is nil.
func NewCopy[T Element](other *Dense[T]) (*Dense[T], error) {
	if other == nil {
		return nil, fmt.Errorf("%s: %w", ctxCopy, ErrNilMatrix)
	}

	return other.Clone(), nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// SetMatrix replaces every element from values, which must be exactly
// Rows() rows of Cols() elements each.
//
// Behavior highlights:
//   - All-or-nothing: the shape is validated before the first write, so a
//     rejected call leaves the matrix untouched.
//
// Errors:
//   - ErrInvalidDimensions when the row count or any row length differs.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) SetMatrix(values [][]T) error {
	if len(values) != m.r {
		return fmt.Errorf("Dense.%s: got %d rows, want %d: %w", ctxSetMatrix, len(values), m.r, ErrInvalidDimensions)
	}
	for i, row := range values {
		if len(row) != m.c {
			return fmt.Errorf("Dense.%s: row %d has %d cols, want %d: %w", ctxSetMatrix, i, len(row), m.c, ErrInvalidDimensions)
		}
	}
	for i, row := range values {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return nil
}

// Matrix returns the elements as a freshly allocated slice of rows.
// Mutating the result does not affect m.
// Complexity: O(r*c).
func (m *Dense[T]) Matrix() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Assign replaces m's shape and contents with a deep copy of src.
// The destination may change shape freely.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func (m *Dense[T]) Assign(src *Dense[T]) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil // self-assignment
	}
	m.r, m.c = src.r, src.c
	m.data = make([]T, len(src.data))
	copy(m.data, src.data)

	return nil
}

// Equal reports whether m and other have the same shape and pairwise equal
// elements. Shape mismatch is not an error, just inequality. Two nil
// matrices are equal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Dense[T]) NotEqual(other *Dense[T]) bool { return !m.Equal(other) }

// WithoutRowAndCol returns a new (r-1)×(c-1) matrix built by deleting row i
// and column j (0-indexed). The receiver is not modified.
//
// Errors:
//   - ErrOutOfRange when i or j is outside the matrix.
//   - ErrInvalidDimensions when the result would have no rows or columns.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense[T]) WithoutRowAndCol(i, j int) (*Dense[T], error) {
	if _, err := m.indexOf(i, j); err != nil {
		return nil, denseErrorf(ctxWithout, i, j, err)
	}
	res, err := NewDense[T](m.r-1, m.c-1)
	if err != nil {
		return nil, denseErrorf(ctxWithout, i, j, err)
	}

	// Deterministic copy skipping row i and column j.
	var src, dst, col, base int
	for src = 0; src < m.r; src++ {
		if src == i {
			continue
		}
		base = src * m.c
		for col = 0; col < m.c; col++ {
			if col == j {
				continue
			}
			res.data[dst] = m.data[base+col]
			dst++
		}
	}

	return res, nil
}

// Transpose returns a new c×r matrix with res(i,j) = m(j,i).
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String renders one bracketed row per line, values formatted with %v.
// Intended for diagnostics and the calculator's text output.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
