// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Fail fast (t.Fatalf) so each test body can assume valid inputs.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/matrix"
)

// Fixtures with hand-checked results.
var (
	// fixtureDet has determinant -353.
	fixtureDet = [][]int{{-2, 3, 4}, {5, 1, -7}, {8, 0, 9}}

	// fixtureAdj has determinant 72 and adjugate fixtureAdjWant.
	fixtureAdj     = [][]int{{2, 6, 5}, {-1, 9, 8}, {8, 0, 2}}
	fixtureAdjWant = [][]int{{18, -12, 3}, {66, -36, -21}, {-72, 48, 24}}
)

// MustRows builds a matrix from rows or fails the test.
func MustRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Element](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// mustRandom draws a seeded r×c float64 matrix in [-10, 10].
func mustRandom(tb testing.TB, r, c int, seed uint64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewRandom(r, c, -10.0, 10.0, matrix.WithSeed(seed))
	if err != nil {
		tb.Fatalf("NewRandom(%d,%d): %v", r, c, err)
	}

	return m
}
