// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Real is the set of element types NewRandom can draw from an interval.
type Real interface {
	Integer | Float
}

// NewRandom creates an r×c matrix whose elements are drawn independently
// from the closed interval [low, high].
//
// Behavior highlights:
//   - Integers: uniform over every integer in [low, high], including the
//     full range of the type.
//   - Floats: low·(1-U) + high·U with U uniform in [0, 1], so both ends
//     are reachable and no finite interval overflows.
//   - Reproducible only with WithSeed/WithRand; the default seed is random.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrInvalidRange when low > high or a float bound is NaN or ±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom[T Real](rows, cols int, low, high T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if low > high || !finite(low) || !finite(high) {
		return nil, matrixErrorf(opRandom, fmt.Errorf("[%v, %v]: %w", low, high, ErrInvalidRange))
	}
	cfg := gatherOptions(opts...)

	draw := drawInteger[T]
	if isFloat[T]() {
		draw = drawFloat[T]
	}
	for k := range m.data {
		m.data[k] = draw(cfg.rng, low, high)
	}

	return m, nil
}

// isFloat reports whether T has a fractional part (1/2 != 0).
func isFloat[T Real]() bool {
	var one, two T = 1, 2

	return one/two != 0
}

// drawInteger picks uniformly from [low, high] using modular uint64
// arithmetic, so the span of signed types (e.g. int8 -100..100) is computed
// without overflow.
func drawInteger[T Real](rng *rand.Rand, low, high T) T {
	span := uint64(high) - uint64(low)
	var off uint64
	if span == ^uint64(0) {
		off = rng.Uint64() // full 64-bit range
	} else {
		off = rng.Uint64N(span + 1)
	}

	return T(uint64(low) + off)
}

// unitMax is the largest value rand.Float64 returns.
const unitMax = 1 - 0x1p-53

// finite reports whether v is neither NaN nor infinite; integers always are.
func finite[T Real](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// drawFloat picks low·(1-U) + high·U with U ∈ [0,1]. The weighted form
// stays finite for any finite bounds; the clamp absorbs rounding at the ends.
func drawFloat[T Real](rng *rand.Rand, low, high T) T {
	lo, hi := float64(low), float64(high)
	u := rng.Float64() / unitMax
	v := lo*(1-u) + hi*u
	if v < lo {
		v = lo
	} else if v > hi {
		v = hi
	}

	return T(v)
}
