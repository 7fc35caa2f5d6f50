// Package uncert renders measured values together with their uncertainties
// as publication-ready strings — significant-digit rounding, conservative
// error rounding, and engineering-notation exponent grouping included.
//
// 🚀 What is uncert?
//
//	A small, thread-safe, zero-dependency library that turns a raw
//	(value, uncertainty) pair of float64s into the string a physicist
//	would write by hand:
//		• Uncertainty rounded up to 1 or 2 significant digits — never down
//		• Value rounded half-up so its last digit lines up with the error's
//		• Shared power of ten factored out in configurable steps (default 3)
//		• Trailing zeros padded so precision is visible at a glance
//		• Five display conventions, from "(1.235 ± 0.013) * 10^3" to "91.2(14)"
//
// ✨ Why choose uncert?
//
//   - Noise-resistant – floating-point artifacts near digit boundaries
//     (0.1+0.2 → 0.30000000000000004) never flip a displayed digit
//   - Rock-solid guarantees – pure functions, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Tiny surface – one Format call, one Options struct
//
// Everything lives in a single subpackage:
//
//	format/ — display modes, rounding, exponent reduction & composition
//
// Quick example:
//
//	s, err := format.FormatDefault(1234.5, 12.3)
//	// s == "(1.235 ± 0.013) * 10^3"
//
// Dive into format's package docs for the full mode catalogue and the
// rounding conventions behind it.
//
//	go get github.com/katalvlaran/uncert/format
package uncert
