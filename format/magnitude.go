// Package format - order-of-magnitude extraction and exponent reduction.
//
// This file contains the small, side-effect free helpers that decompose a
// raw (value, uncertainty) pair into the transient record consumed by the
// mode composers:
//  1. Sign extraction and absolute values.
//  2. floor(log10) magnitudes, with zero guarded (log10(0) is never taken).
//  3. Optional factoring-out of a shared power of ten in multiples of the
//     configured step width.
package format

import "math"

// decomposition is the transient per-call record produced by decompose and
// consumed by exactly one composer. It is never shared or retained; the
// caller's floats are copied, not mutated.
type decomposition struct {
	negative   bool    // sign of the original value
	value      float64 // |value|, rescaled when power != 0
	uncert     float64 // uncertainty, rescaled when power != 0
	valueDigit int     // floor(log10(value)) after rescaling; 0 for value == 0
	errDigit   int     // floor(log10(uncert)) after rescaling; 0 for uncert == 0
	power      int     // factored-out power of ten (multiple of the step)
}

// orderOfMagnitude returns floor(log10(|x|)), the decimal position of the
// first significant digit, and 0 for x == 0 (log10 is never evaluated at
// zero).
//
// Complexity: O(1).
func orderOfMagnitude(x float64) int {
	if x == 0 {
		return 0
	}

	return int(math.Floor(math.Log10(math.Abs(x))))
}

// floorDiv returns floor(a/b) for b > 0, i.e. integer division rounding
// toward negative infinity (Go's / truncates toward zero).
//
// Complexity: O(1).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}

// decompose extracts sign and magnitudes from the raw pair and, when
// step > 0, factors out the largest power of ten that is a multiple of step
// and does not exceed the value's magnitude:
//
//	power = floor(valueDigit/step) * step
//
// so that the reduced valueDigit lands in [0, step). Both numbers and both
// digit positions are rescaled by the same power. step == 0, or a computed
// power of 0, leaves the pair untouched.
//
// Contracts:
//   - value, uncertainty finite; uncertainty ≥ 0; step ≥ 0 (validated upstream).
//
// Complexity: O(1).
func decompose(value, uncertainty float64, step int) decomposition {
	d := decomposition{
		negative: value < 0,
		value:    math.Abs(value),
		uncert:   uncertainty,
	}
	d.valueDigit = orderOfMagnitude(d.value)
	d.errDigit = orderOfMagnitude(d.uncert)

	if step > 0 {
		if power := floorDiv(d.valueDigit, step) * step; power != 0 {
			scale := math.Pow(10, float64(power))
			d.value /= scale
			d.uncert /= scale
			d.valueDigit -= power
			d.errDigit -= power
			d.power = power
		}
	}

	return d
}
