// Package format turns a (value, uncertainty) pair of float64s into a
// human-readable string following standard uncertainty-reporting practice.
//
// What:
//
//   - Rounds the uncertainty *up* to a fixed number of significant digits
//     (a reported error must never understate itself).
//   - Rounds the value half-up to the precision that makes its last digit
//     line up positionally with the uncertainty's last digit.
//   - Optionally factors out a shared power of ten in steps of a
//     configurable width (default 3, i.e. engineering notation).
//   - Pads trailing zeros so the displayed precision is explicit.
//   - Offers five display conventions selected via Options.Mode.
//
// Why:
//
//   - Lab reports & papers: "(1.235 ± 0.013) * 10^3" straight from raw floats.
//   - Tables: the compact "91.2(14)" convention for dense columns.
//   - Dashboards: consistent digit counts regardless of magnitude.
//
// Modes:
//
//   - TwoDigits       — "(v ± e)", uncertainty to 2 significant digits.
//   - OneDigit        — "(v ± e)", uncertainty to 1 significant digit.
//   - Scientific      — 2 digits when the error's leading digit is 1 or 2,
//     else 1 (the conventional rule; errors starting with 1.x or 2.x need
//     the second digit to carry useful precision).
//   - ScientificConst — compact "v(ee)" with the error's last two
//     significant digits appended in parentheses.
//   - Full            — no rounding; both numbers at full precision,
//     zero-padded to equal string length.
//
// Floating-point noise:
//
//	Rounding away from zero amplifies representation noise: 0.29*100 is
//	28.999999999999996, and a naive round-up would display 0.29 as 0.3 in
//	one mode and 29 as 30 in another. The rounder therefore first rounds to
//	nearest; when the input and the nearest rounding agree within a relative
//	1e-14, the nearest result is authoritative and round-up is skipped.
//
// Errors (sentinel):
//
//   - ErrNonFinite           — value or uncertainty is NaN or ±Inf.
//   - ErrNegativeUncertainty — uncertainty < 0.
//   - ErrNegativeStep        — Options.ExponentStep < 0.
//   - ErrUnknownMode         — Options.Mode outside the five known modes.
//
// All functions are pure and safe for concurrent use; no state is shared
// or retained across calls.
package format
