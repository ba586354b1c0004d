// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic seeded fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tmatrix/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustRandom(b, n, n, 1337)
			y := mustRandom(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkDeterminant contrasts cofactor expansion with gonum's LU.
func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 6, 8} {
		x := mustRandom(b, n, n, uint64(n))
		b.Run(fmt.Sprintf("cofactor/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
		b.Run(fmt.Sprintf("lu/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d, err := matrix.DeterminantLU(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
