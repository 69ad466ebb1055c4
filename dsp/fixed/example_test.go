package fixed_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-goertzel/dsp/fixed"
)

func ExampleQuantize() {
	// Encode 2*cos(2*pi*10/100) with 14 fractional bits in a 16-bit field.
	coeff, _ := fixed.Quantize(2*math.Cos(2*math.Pi*10/100), 14, 16)
	fmt.Println(coeff)
	// Output:
	// 26509
}

func ExampleMulShiftRight() {
	// Scale -5 by 0.75 in Q2: (-5 * 3) >> 2 truncates toward negative
	// infinity.
	fmt.Println(fixed.MulShiftRight(-5, 3, 2))
	// Output:
	// -4
}

func ExampleSignExtend() {
	// 0xFF80 read as a 16-bit two's-complement value.
	fmt.Println(fixed.SignExtend(0xFF80, 16))
	// Output:
	// -128
}
