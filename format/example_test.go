package format_test

import (
	"fmt"

	"github.com/katalvlaran/uncert/format"
)

// ExampleFormatDefault demonstrates the default convention: two significant
// error digits and engineering-notation grouping in steps of three.
func ExampleFormatDefault() {
	s, err := format.FormatDefault(1234.5, 12.3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// (1.235 ± 0.013) * 10^3
}

// ExampleFormat_oneDigit demonstrates the single-error-digit convention.
func ExampleFormat_oneDigit() {
	s, err := format.Format(8.4, 0.7, format.NewOptions(format.WithMode(format.OneDigit)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// (8.4 ± 0.7)
}

// ExampleFormat_compact demonstrates the ScientificConst convention used in
// dense tables: the error's last two significant digits trail the value.
func ExampleFormat_compact() {
	s, err := format.Format(91.2, 1.4, format.NewOptions(format.WithMode(format.ScientificConst)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// 91.2(14)
}

// ExampleFormat_noGrouping demonstrates disabling the exponent grouping:
// the raw magnitudes are kept and no power suffix is emitted.
func ExampleFormat_noGrouping() {
	s, err := format.Format(1234.5, 12.3, format.NewOptions(format.WithExponentStep(0)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// (1235.00 ± 13.00)
}
