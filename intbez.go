/*
Package intbez implements integer points and the arithmetic needed to
evaluate cubic Bézier curves at a 10-bit parameter resolution.

Curves themselves live in sub-package cubic, polygons built from them in
sub-package polygon.

Points are pure values: none of the arithmetic operations changes its
receiver or its argument. Whenever a float factor is applied to an integer
coordinate, the result is truncated toward zero. Float factors are float32,
which is what the parameter resolution calls for and which makes results
reproducible to the bit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package intbez

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'intbez'
func tracer() tracing.Trace {
	return tracing.Select("intbez")
}

// === Curve Parameter =======================================================

// Resolution is the bit width of the curve parameter t.
const Resolution = 10

// MaxT is the largest regular curve parameter. A parameter t denotes the
// fraction t/MaxT.
const MaxT = 1<<Resolution - 1

var (
	// ErrDivisionByZero is returned by DivF for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFinite is returned when a float factor is NaN or infinite.
	ErrNonFinite = errors.New("float factor is not finite")
)

// Fraction returns the float32 fraction t/MaxT. t is not checked against
// [0,MaxT]; values outside yield fractions outside [0,1], which callers use
// for extrapolation.
func Fraction(t int) float32 {
	return float32(t) / MaxT
}

// trunc narrows a float32 to int, rounding toward zero.
func trunc(f float32) int {
	return int(math32.Trunc(f))
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
