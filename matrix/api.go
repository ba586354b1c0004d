// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points under the names used by the classic textbook
//     exercise (Alliance, Reverse, ...) next to the canonical Go names.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized r×c matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Element](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
//
// Errors:
//   - ErrNilMatrix.
func ZerosLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// Alliance is an alias for Adjugate (the "allied" matrix of cofactors).
func Alliance[T Number](m *Dense[T]) (*Dense[T], error) { return Adjugate(m) }

// Reverse is an alias for Inverse (the "reverse" matrix); integer element
// types keep the truncating division documented on Inverse.
func Reverse[T Number](m *Dense[T]) (*Dense[T], error) { return Inverse(m) }

// Minor returns det(m without row i and column j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrInvalidDimensions (1×1 input).
func Minor[T Number](m *Dense[T], i, j int) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opMinor, err)
	}
	sub, err := m.WithoutRowAndCol(i, j)
	if err != nil {
		return zero, matrixErrorf(opMinor, err)
	}

	return determinant(sub), nil
}

// Cofactor returns (-1)^(i+j) · Minor(m, i, j).
func Cofactor[T Number](m *Dense[T], i, j int) (T, error) {
	mn, err := Minor(m, i, j)
	if err != nil {
		return mn, err
	}

	return sign[T](i+j) * mn, nil
}

// AllClose reports whether a and b have identical shapes and
// |a-b| ≤ atol + rtol·|b| element-wise. Shape mismatch reports false.
// AI-Hints: use for float results of Inverse/InverseLU in tests.
func AllClose[T Float](a, b *Dense[T], rtol, atol T) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	var d, bv T
	for k := range a.data {
		d, bv = a.data[k]-b.data[k], b.data[k]
		if d < 0 {
			d = -d
		}
		if bv < 0 {
			bv = -bv
		}
		if d > atol+rtol*bv || d != d { // d != d catches NaN
			return false
		}
	}

	return true
}
