// Package format - significant-digit rounding with floating-point noise
// resistance.
//
// Two rounding roles exist in this package:
//   - values round half-up (round to nearest, ties away from zero), and
//   - uncertainties round away from zero, so a reported error never
//     understates itself.
//
// Round-up is where representation noise bites: 0.1+0.2 is
// 0.30000000000000004, and a naive ceil of the scaled digit turns it into
// 0.4 — a whole displayed digit of inflation from 4e-17 of noise.
// roundUpResistant therefore consults nearest-rounding first and only
// rounds up when the input is genuinely away from a digit boundary.
package format

import "math"

// noiseTolerance is the relative tolerance under which an input and its
// nearest-rounding are considered the same number, the difference being
// attributed to floating-point representation noise.
const noiseTolerance = 1e-14

// roundMode selects the tie/direction policy of roundSig.
type roundMode int

const (
	// roundHalfUp rounds to the nearest digit boundary, ties away from zero.
	roundHalfUp roundMode = iota

	// roundAway always rounds away from zero (up, for positive input).
	roundAway
)

// roundSig rounds num to sdigits significant digits using the given mode:
// shift so the retained digits sit left of the decimal point, round, and
// shift back. Returns 0 for num == 0 (its magnitude is undefined).
//
// Complexity: O(1).
func roundSig(num float64, sdigits int, mode roundMode) float64 {
	if num == 0 {
		return 0
	}

	mult := math.Pow(10, float64(sdigits-1-orderOfMagnitude(num)))
	scaled := num * mult

	var rounded float64
	switch mode {
	case roundAway:
		if scaled < 0 {
			rounded = math.Floor(scaled)
		} else {
			rounded = math.Ceil(scaled)
		}
	default:
		// math.Round is round-half-away-from-zero, i.e. half-up for the
		// non-negative magnitudes this package rounds.
		rounded = math.Round(scaled)
	}

	return rounded / mult
}

// roundUpResistant rounds num up (away from zero) to sdigits significant
// digits, unless num already sits on a digit boundary up to floating-point
// noise — in that case the nearest-rounding is authoritative and is
// returned as-is.
//
// The check is relative: with nearest = roundSig(num, sdigits, roundHalfUp),
// |num − nearest| / (num + nearest) < noiseTolerance accepts nearest.
// Examples at sdigits = 2:
//
//	1.9999999999999998 → 2.0   (boundary noise, not 1.9)
//	0.2900000000000001 → 0.29  (boundary noise, not 0.30)
//	0.123              → 0.13  (genuinely above 0.12, rounds up)
//
// num == 0 short-circuits to 0 before the division, which would otherwise
// be the ambiguous 0/0.
//
// Complexity: O(1).
func roundUpResistant(num float64, sdigits int) float64 {
	if num == 0 {
		return 0
	}

	nearest := roundSig(num, sdigits, roundHalfUp)
	if rel := (num - nearest) / (num + nearest); math.Abs(rel) < noiseTolerance {
		return nearest
	}

	return roundSig(num, sdigits, roundAway)
}
