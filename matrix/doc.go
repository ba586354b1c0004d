// Package matrix offers a dense, generic, row-major 2D matrix and the
// classic small-matrix linear algebra built on it.
//
// The matrix package provides:
//
//   - Dense[T] over integer, floating-point or boolean elements, created
//     zero-filled (NewDense), value-filled (NewFilled), randomly filled from a
//     closed interval (NewRandom, seedable via WithSeed/WithRand), from rows
//     (NewFromRows) or as a deep copy (NewCopy/Clone).
//   - Safe accessors (At/Set/SetMatrix/Matrix) that return sentinel errors
//     instead of panicking, plus Equal/Assign/Transpose/WithoutRowAndCol.
//   - Numeric kernels Add, Sub, Mul, Scale and the cofactor family
//     Determinant, Adjugate (Alliance), Inverse (Reverse).
//   - gonum interop (ToGonum/FromGonum) and LU-based DeterminantLU/InverseLU
//     for float64 matrices that outgrow cofactor expansion.
//
// Every operation except the explicit setters returns a new matrix; inputs
// are never mutated. Errors are package sentinels (ErrInvalidDimensions,
// ErrDimensionMismatch, ErrNonSquare, ErrSingular, ErrOutOfRange, ...) and
// must be matched with errors.Is.
//
// Cofactor expansion is exponential in n and meant for teaching-scale
// matrices. For integer element types Inverse divides with Go's truncating
// integer division, so it is exact only when det divides every cofactor.
package matrix
