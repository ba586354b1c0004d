// Package matrix_test contains unit tests for NewRandom and its options.
package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tmatrix/matrix"
)

func TestNewRandom_WithinInterval(t *testing.T) {
	m, err := matrix.NewRandom(3, 3, -8, 10, matrix.WithSeed(42))
	require.NoError(t, err)
	m.Do(func(i, j, v int) bool {
		require.GreaterOrEqual(t, v, -8)
		require.LessOrEqual(t, v, 10)
		return true
	})

	f, err := matrix.NewRandom(10, 10, -0.5, 0.25, matrix.WithSeed(42))
	require.NoError(t, err)
	f.Do(func(i, j int, v float64) bool {
		require.GreaterOrEqual(t, v, -0.5)
		require.LessOrEqual(t, v, 0.25)
		return true
	})
}

func TestNewRandom_SameSeedSameMatrix(t *testing.T) {
	a, err := matrix.NewRandom(4, 5, -100, 100, matrix.WithSeed(7))
	require.NoError(t, err)
	b, err := matrix.NewRandom(4, 5, -100, 100, matrix.WithSeed(7))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := matrix.NewRandom(4, 5, -100, 100, matrix.WithSeed(8))
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

func TestNewRandom_CoversWholeIntegerRange(t *testing.T) {
	m, err := matrix.NewRandom(50, 50, int8(-2), int8(2), matrix.WithSeed(3))
	require.NoError(t, err)
	seen := map[int8]bool{}
	m.Do(func(i, j int, v int8) bool {
		seen[v] = true
		return true
	})
	require.Equal(t, map[int8]bool{-2: true, -1: true, 0: true, 1: true, 2: true}, seen)
}

func TestNewRandom_ExtremeRanges(t *testing.T) {
	// int8 full span would overflow a naive high-low.
	m, err := matrix.NewRandom(8, 8, int8(-128), int8(127), matrix.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, 8, m.Rows())

	u, err := matrix.NewRandom(4, 4, uint64(0), ^uint64(0), matrix.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, 4, u.Cols())

	// low == high degenerates to a constant fill
	k, err := matrix.NewRandom(2, 3, 5, 5)
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 5, 5}, {5, 5, 5}}, k.Matrix())

	// the widest finite float interval must not overflow to ±Inf
	f, err := matrix.NewRandom(4, 8, -math.MaxFloat64, math.MaxFloat64, matrix.WithSeed(1))
	require.NoError(t, err)
	f.Do(func(_, _ int, v float64) bool {
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v), "got %v", v)
		require.GreaterOrEqual(t, v, -math.MaxFloat64)
		require.LessOrEqual(t, v, math.MaxFloat64)
		return true
	})

	g, err := matrix.NewRandom(2, 2, float32(-math.MaxFloat32), float32(math.MaxFloat32), matrix.WithSeed(2))
	require.NoError(t, err)
	g.Do(func(_, _ int, v float32) bool {
		require.False(t, math.IsInf(float64(v), 0), "got %v", v)
		return true
	})
}

func TestNewRandom_NonFiniteBounds(t *testing.T) {
	for _, tc := range []struct {
		name      string
		low, high float64
	}{
		{"nan low", math.NaN(), 1},
		{"nan high", 0, math.NaN()},
		{"inf high", 0, math.Inf(1)},
		{"inf low", math.Inf(-1), 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewRandom(1, 2, tc.low, tc.high, matrix.WithSeed(1))
			require.ErrorIs(t, err, matrix.ErrInvalidRange)
		})
	}
}

func TestNewRandom_InvalidRange(t *testing.T) {
	_, err := matrix.NewRandom(2, 2, 10, -8, matrix.WithSeed(1))
	require.ErrorIs(t, err, matrix.ErrInvalidRange)
}

func TestWithRand_SharedStream(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	a, err := matrix.NewRandom(3, 3, 0, 1000, matrix.WithRand(rng))
	require.NoError(t, err)
	b, err := matrix.NewRandom(3, 3, 0, 1000, matrix.WithRand(rng))
	require.NoError(t, err)
	require.False(t, a.Equal(b), "a shared stream must advance between draws")

	require.Panics(t, func() { matrix.WithRand(nil) })
}

func TestNewRandom_Unseeded(t *testing.T) {
	m, err := matrix.NewRandom(3, 3, -8, 10)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
}
