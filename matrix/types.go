// SPDX-License-Identifier: MIT

// Package matrix: element type constraints.
// This file intentionally contains ONLY the type sets used to parameterize
// Dense and the numeric kernels.
package matrix

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types.
// Cofactor signs wrap modulo 2^n for these types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of element types that support + - * / arithmetic.
// Integer division truncates toward zero (Go semantics), which Inverse
// relies on for integer matrices.
type Number interface {
	Integer | Float
}

// Element is the set of all element types a Dense may hold.
// Booleans are storable and comparable; arithmetic kernels require Number.
type Element interface {
	Number | ~bool
}
