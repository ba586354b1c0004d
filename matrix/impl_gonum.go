// SPDX-License-Identifier: MIT

// Package matrix - gonum interop and LU-based float64 kernels.
//
// Purpose:
//   - Move float64 matrices to and from gonum's mat.Dense without aliasing.
//   - Offer O(n³) LU alternatives to the cofactor kernels for float64 inputs.
//     Results are subject to rounding; the cofactor kernels remain the
//     exact-value reference for integer matrices.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix.
func ToGonum(m *Dense[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense[float64].
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrInvalidDimensions for an empty (0×0) gonum matrix.
func FromGonum(a mat.Matrix) (*Dense[float64], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	res, err := NewDense[float64](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			res.data[i*c+j] = a.At(i, j)
		}
	}

	return res, nil
}

// DeterminantLU returns det(m) through gonum's partially pivoted LU.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func DeterminantLU(m *Dense[float64]) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}

	return mat.Det(g), nil
}

// InverseLU returns m⁻¹ through gonum's LU-based inversion.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when gonum reports the matrix singular (or so ill-conditioned
//     that the result is meaningless).
func InverseLU(m *Dense[float64]) (*Dense[float64], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseLU, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(opInverseLU, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, matrixErrorf(opInverseLU, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return FromGonum(&inv)
}
