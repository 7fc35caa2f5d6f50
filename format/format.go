// Package format - the Format entry point: validate, decompose, dispatch.
//
// Design principles:
//   - Strict sentinels: invalid input fails fast with errors from types.go;
//     no fmt.Errorf where a sentinel suffices.
//   - Pure router: Format holds no rounding logic of its own — it validates,
//     decomposes, and hands the record to exactly one composer.
//   - Total over the documented domain: finite inputs with non-negative
//     uncertainty and valid options never return an error.
package format

import "math"

// Format renders the (value, uncertainty) pair as a display string according
// to opts.
//
// Steps: extract sign and magnitudes (zero inputs contribute magnitude 0,
// log10 is never evaluated at zero); factor out a shared power of ten in
// multiples of opts.ExponentStep when the step is positive; route to the
// composer of opts.Mode.
//
// Contracts:
//   - value and uncertainty must be finite (else ErrNonFinite).
//   - uncertainty must be ≥ 0 (else ErrNegativeUncertainty).
//   - opts.ExponentStep must be ≥ 0 (else ErrNegativeStep).
//   - opts.Mode must be one of the five modes (else ErrUnknownMode).
//
// Safe for concurrent use; allocates only the handful of short-lived
// strings composing the result.
//
// Complexity: O(1) plus the digits produced.
func Format(value, uncertainty float64, opts Options) (string, error) {
	if err := validate(value, uncertainty, opts); err != nil {
		return "", err
	}

	d := decompose(value, uncertainty, opts.ExponentStep)

	switch opts.Mode {
	case TwoDigits:
		return composeParenthetical(d, 2), nil
	case OneDigit:
		return composeParenthetical(d, 1), nil
	case Scientific:
		return composeParenthetical(d, scientificDigits(d)), nil
	case ScientificConst:
		return composeCompact(d), nil
	case Full:
		return composeFull(d), nil
	default:
		// Unreachable after validate; kept so the dispatch stays exhaustive.
		return "", ErrUnknownMode
	}
}

// FormatDefault renders the pair with DefaultOptions: engineering-notation
// grouping (step 3) and the TwoDigits convention.
func FormatDefault(value, uncertainty float64) (string, error) {
	return Format(value, uncertainty, DefaultOptions())
}

// validate checks inputs and options against the Format contracts.
// Deterministic, side-effect free; only sentinel errors from types.go.
//
// Complexity: O(1).
func validate(value, uncertainty float64, opts Options) error {
	if math.IsNaN(value) || math.IsInf(value, 0) ||
		math.IsNaN(uncertainty) || math.IsInf(uncertainty, 0) {
		return ErrNonFinite
	}
	if uncertainty < 0 {
		return ErrNegativeUncertainty
	}
	if opts.ExponentStep < 0 {
		return ErrNegativeStep
	}

	switch opts.Mode {
	case TwoDigits, OneDigit, Scientific, ScientificConst, Full:
		// ok
	default:
		return ErrUnknownMode
	}

	return nil
}
