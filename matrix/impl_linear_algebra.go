// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic kernels on Dense matrices of numeric
// element types: element-wise addition and subtraction, matrix
// multiplication and scalar scaling. All functions perform strict fail-fast
// validation and return tagged sentinels on dimension mismatches.
//
// Notes:
//   - Operands are never mutated; every kernel allocates a fresh result.
//   - Cofactor-based kernels (Determinant/Adjugate/Inverse) live in impl_cofactor.go.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opIdentity    = "Identity"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opRandom      = "NewRandom"
	opToGonum     = "ToGonum"
	opFromGonum   = "FromGonum"
	opDetLU       = "DeterminantLU"
	opInverseLU   = "InverseLU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b.
// Internal helper for Add/Sub to share validation, allocation and the loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop over the row-major buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	if subtract {
		for k := range res.data {
			res.data[k] = a.data[k] - b.data[k]
		}
	} else {
		for k := range res.data {
			res.data[k] = a.data[k] + b.data[k]
		}
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns the element-wise difference a − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul returns the matrix product a × b of shape a.Rows() × b.Cols().
// Each result element is the dot product of a row of a and a column of b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: i→k→j loop order so the inner loop walks both b and the result
//     row contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	res := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}

	var i, k, j int
	var aik T
	var resBase, bBase int
	for i = 0; i < rows; i++ {
		resBase = i * cols
		for k = 0; k < inner; k++ {
			aik = a.data[i*inner+k]
			bBase = k * cols
			for j = 0; j < cols; j++ {
				res.data[resBase+j] += aik * b.data[bBase+j]
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	id, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}
