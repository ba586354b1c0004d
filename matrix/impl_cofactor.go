// SPDX-License-Identifier: MIT

// Package matrix - cofactor kernels: Determinant, Adjugate, Inverse.
//
// Purpose:
//   - Exact-value linear algebra for small matrices via Laplace expansion.
//   - Integer matrices never leave their element type, so results carry no
//     floating-point drift.
//
// Complexity:
//   - Determinant is O(n!) (recursive expansion along row 0); Adjugate and
//     Inverse call it n² times on (n-1)×(n-1) minors. Use DeterminantLU /
//     InverseLU (gonum) for anything beyond teaching-scale float64 matrices.

package matrix

// sign returns (-1)^k as an element of T.
func sign[T Number](k int) T {
	if k%2 == 0 {
		return 1
	}
	var one T = 1

	return -one
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - 1×1: the sole element.
//   - n×n: Σ_j (-1)^j · m(0,j) · det(minor(0,j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Determinant[T Number](m *Dense[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return determinant(m), nil
}

// determinant assumes a square, non-nil m.
func determinant[T Number](m *Dense[T]) T {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var det T
	for j := 0; j < n; j++ {
		if m.data[j] == 0 {
			continue // zero term, skip the minor
		}
		minor, _ := m.WithoutRowAndCol(0, j) // indices valid and n>=3 by construction
		det += sign[T](j) * m.data[j] * determinant(minor)
	}

	return det
}

// Adjugate returns the classical adjugate of m: the transposed matrix of
// signed cofactors, res(j,i) = (-1)^(i+j) · det(minor(i,j)).
// The adjugate of a 1×1 matrix is [[1]].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjugate[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adjugate(m), nil
}

// adjugate assumes a square, non-nil m.
func adjugate[T Number](m *Dense[T]) *Dense[T] {
	n := m.r
	res := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	if n == 1 {
		res.data[0] = 1
		return res
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minor, _ := m.WithoutRowAndCol(i, j)
			res.data[j*n+i] = sign[T](i+j) * determinant(minor)
		}
	}

	return res
}

// Inverse returns adj(m) / det(m), element by element.
//
// Behavior highlights:
//   - For integer element types the division truncates toward zero, so the
//     result is generally NOT the true inverse; e.g. an adjugate entry smaller
//     in magnitude than det becomes 0. Use a float type (or InverseLU) when the
//     mathematical inverse is needed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (det == 0).
func Inverse[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := determinant(m)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	res := adjugate(m)
	for k := range res.data {
		res.data[k] /= det
	}

	return res, nil
}
