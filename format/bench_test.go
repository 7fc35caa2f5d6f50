package format_test

import (
	"testing"

	"github.com/katalvlaran/uncert/format"
)

// benchmarkFormat is a helper that renders the same pair repeatedly with the
// given options and fails on unexpected errors.
func benchmarkFormat(b *testing.B, value, uncert float64, opts format.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := format.Format(value, uncert, opts); err != nil {
			b.Fatalf("Format failed: %v", err)
		}
	}
}

// BenchmarkFormat_TwoDigits benchmarks the default parenthetical convention.
func BenchmarkFormat_TwoDigits(b *testing.B) {
	benchmarkFormat(b, 1234.5, 12.3, format.DefaultOptions())
}

// BenchmarkFormat_OneDigit benchmarks the single-digit convention.
func BenchmarkFormat_OneDigit(b *testing.B) {
	benchmarkFormat(b, 1234.5, 12.3, format.NewOptions(format.WithMode(format.OneDigit)))
}

// BenchmarkFormat_Scientific benchmarks the dynamic-digit convention.
func BenchmarkFormat_Scientific(b *testing.B) {
	benchmarkFormat(b, 1234.5, 12.3, format.NewOptions(format.WithMode(format.Scientific)))
}

// BenchmarkFormat_ScientificConst benchmarks the compact convention.
func BenchmarkFormat_ScientificConst(b *testing.B) {
	benchmarkFormat(b, 1234.5, 12.3, format.NewOptions(format.WithMode(format.ScientificConst)))
}

// BenchmarkFormat_Full benchmarks the full-precision convention.
func BenchmarkFormat_Full(b *testing.B) {
	benchmarkFormat(b, 1234.5, 12.3, format.NewOptions(format.WithMode(format.Full)))
}

// BenchmarkFormat_NoGrouping benchmarks with exponent reduction disabled.
func BenchmarkFormat_NoGrouping(b *testing.B) {
	benchmarkFormat(b, 1234.5, 12.3, format.NewOptions(format.WithExponentStep(0)))
}
