package format

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by Format. Strict fail-fast policy: invalid
// input is rejected before any rounding takes place, never normalized
// silently (a sign-corrected uncertainty would hide a caller bug).
var (
	// ErrNonFinite indicates that value or uncertainty is NaN or ±Inf.
	// Order-of-magnitude extraction is meaningless for non-finite numbers.
	ErrNonFinite = errors.New("format: value and uncertainty must be finite")

	// ErrNegativeUncertainty indicates a negative uncertainty. Uncertainties
	// are standard deviations by convention and must be non-negative.
	ErrNegativeUncertainty = errors.New("format: uncertainty must be non-negative")

	// ErrNegativeStep indicates Options.ExponentStep < 0. Zero disables
	// exponent grouping; negative widths are not meaningful.
	ErrNegativeStep = errors.New("format: ExponentStep must be non-negative")

	// ErrUnknownMode indicates a Mode value outside the five known modes.
	ErrUnknownMode = errors.New("format: unknown display mode")
)

// Mode selects the display convention applied by Format.
//
// The set is closed: the dispatcher matches it exhaustively and any value
// outside it yields ErrUnknownMode. Modes carry no data — they are pure
// selectors.
type Mode int

const (
	// TwoDigits renders "(value ± error)" with the uncertainty rounded up
	// to two significant digits.
	TwoDigits Mode = iota

	// OneDigit renders "(value ± error)" with the uncertainty rounded up
	// to one significant digit.
	OneDigit

	// Scientific renders "(value ± error)" with two significant digits when
	// the uncertainty's leading digit is below 3, one digit otherwise.
	Scientific

	// ScientificConst renders the compact "value(ee)" form, appending the
	// uncertainty's last two significant digits as a bare integer.
	ScientificConst

	// Full renders "(value ± error)" at full precision, zero-padding the
	// shorter string so both share the same length.
	Full
)

// String returns the mode name, or "Mode(n)" for out-of-range values.
func (m Mode) String() string {
	switch m {
	case TwoDigits:
		return "TwoDigits"
	case OneDigit:
		return "OneDigit"
	case Scientific:
		return "Scientific"
	case ScientificConst:
		return "ScientificConst"
	case Full:
		return "Full"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// DefaultExponentStep is the exponent-grouping width used by DefaultOptions:
// powers of ten are factored out in multiples of three (engineering notation).
const DefaultExponentStep = 3

// Options configures Format.
//
// ExponentStep – width of the exponent grouping (≥ 0). A shared power of ten
//
//	is factored out in multiples of this step; 0 disables grouping entirely.
//	Default is DefaultExponentStep (3).
//
// Mode – display convention to apply. Default is TwoDigits.
type Options struct {
	ExponentStep int  // exponent grouping width; 0 disables grouping
	Mode         Mode // display convention
}

// Option represents a functional option for configuring Format.
type Option func(*Options)

// WithExponentStep sets the exponent-grouping width.
// Pass 0 to disable grouping; negative values cause Format to return
// ErrNegativeStep.
func WithExponentStep(step int) Option {
	return func(o *Options) {
		o.ExponentStep = step
	}
}

// WithMode selects the display convention.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// DefaultOptions returns an Options struct initialized with the conventional
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - ExponentStep: 3 (engineering notation).
//   - Mode:         TwoDigits.
func DefaultOptions() Options {
	return Options{
		ExponentStep: DefaultExponentStep,
		Mode:         TwoDigits,
	}
}

// NewOptions builds an Options value from DefaultOptions plus the supplied
// functional overrides, applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()

	var apply Option // current override under application
	for _, apply = range opts {
		apply(&o)
	}

	return o
}
