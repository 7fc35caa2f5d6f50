// Package format - string composition: stringification, zero padding,
// exponent suffix, and the per-mode composers that assemble the final
// display string from a decomposition record.
package format

import (
	"math"
	"strconv"
	"strings"
)

// plusMinus separates value and uncertainty in the parenthetical and full
// display conventions.
const plusMinus = " ± "

// decimal renders x in its shortest decimal form and reports whether
// strconv chose exponential notation. The flag is determined once here and
// carried through the pipeline; downstream padding trusts it instead of
// re-inspecting the text.
//
// Integral floats gain a trailing ".0" ("13" → "13.0") so that every
// non-exponential string contains a decimal point and the padding targets
// of the display conventions stay meaningful for integral mantissas.
//
// Complexity: O(len) in the digits produced.
func decimal(x float64) (s string, exponential bool) {
	s = strconv.FormatFloat(x, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		return s, true
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s, false
}

// padDecimal right-pads s with '0' up to targetLen characters. Exponential
// strings pass through untouched — padding them would corrupt the exponent.
// Strings already at or beyond targetLen are returned unchanged; padDecimal
// never truncates.
//
// Complexity: O(targetLen).
func padDecimal(s string, exponential bool, targetLen int) string {
	if exponential || len(s) >= targetLen {
		return s
	}

	return s + strings.Repeat("0", targetLen-len(s))
}

// powerSuffix renders the factored-out exponent: empty for power 0,
// " * 10^N" for positive powers and " * 10^(N)" for negative ones (the
// parentheses keep the unary minus apart from the multiplication).
func powerSuffix(power int) string {
	switch {
	case power == 0:
		return ""
	case power < 0:
		return " * 10^(" + strconv.Itoa(power) + ")"
	default:
		return " * 10^" + strconv.Itoa(power)
	}
}

// signPrefix renders the sign extracted during decomposition. The minus
// sits outside the composed body: "-(4.50 ± 0.1)".
func signPrefix(negative bool) string {
	if negative {
		return "-"
	}

	return ""
}

// valueDigits returns the significant-digit count for the value given the
// uncertainty's count: sig plus the offset between the two leading-digit
// positions, so the value's last retained digit lines up positionally with
// the uncertainty's even when their magnitudes differ.
func valueDigits(d decomposition, sig int) int {
	return sig + d.valueDigit - d.errDigit
}

// composeParenthetical assembles "(value ± error)[ * 10^power]" with the
// uncertainty rounded up to sig significant digits and the value rounded
// half-up to the positionally matching count. Pad targets:
//
//	value: sig + valueDigit + 2
//	error: sig + errDigit  + 2
//
// TwoDigits, OneDigit and Scientific all route here; they differ only in sig.
//
// Complexity: O(1) plus the digits produced.
func composeParenthetical(d decomposition, sig int) string {
	errStr, errExp := decimal(roundUpResistant(d.uncert, sig))
	errStr = padDecimal(errStr, errExp, sig+d.errDigit+2)

	valStr, valExp := decimal(roundSig(d.value, valueDigits(d, sig), roundHalfUp))
	valStr = padDecimal(valStr, valExp, sig+d.valueDigit+2)

	return signPrefix(d.negative) + "(" + valStr + plusMinus + errStr + ")" + powerSuffix(d.power)
}

// scientificDigits applies the Scientific-mode convention: two significant
// digits when the uncertainty's leading digit is below 3, one otherwise.
// Errors starting with 1.x or 2.x need the second digit to carry useful
// precision; 3–9 are precise enough with one. The threshold is a documented
// reporting convention — do not re-derive it.
func scientificDigits(d decomposition) int {
	if int(d.uncert/math.Pow(10, float64(d.errDigit))) < 3 {
		return 2
	}

	return 1
}

// composeCompact assembles the ScientificConst form "value(ee)[ * 10^power]":
// the uncertainty appears as a bare integer holding its last two significant
// digits, obtained by scaling it so those digits sit left of the decimal
// point and rounding up noise-resistantly. Value pad target:
// sig + |valueDigit| + 1.
//
// Complexity: O(1) plus the digits produced.
func composeCompact(d decomposition) string {
	const sig = 2

	scaled := d.uncert / math.Pow(10, float64(d.errDigit-sig+1))
	errInt := int(roundUpResistant(scaled, sig))

	valStr, valExp := decimal(roundSig(d.value, valueDigits(d, sig), roundHalfUp))
	target := d.valueDigit
	if target < 0 {
		target = -target
	}
	valStr = padDecimal(valStr, valExp, sig+target+1)

	return signPrefix(d.negative) + valStr + "(" + strconv.Itoa(errInt) + ")" + powerSuffix(d.power)
}

// composeFull assembles "(value ± error)[ * 10^power]" without any rounding:
// both numbers keep full precision and the shorter string is zero-padded to
// the longer one's length. The alignment is cosmetic only and is skipped
// when either string is exponential.
//
// Complexity: O(1) plus the digits produced.
func composeFull(d decomposition) string {
	valStr, valExp := decimal(d.value)
	errStr, errExp := decimal(d.uncert)

	if !valExp && !errExp {
		if len(valStr) < len(errStr) {
			valStr = padDecimal(valStr, false, len(errStr))
		} else {
			errStr = padDecimal(errStr, false, len(valStr))
		}
	}

	return signPrefix(d.negative) + "(" + valStr + plusMinus + errStr + ")" + powerSuffix(d.power)
}
