package fixed

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxSigned returns the largest value representable in a signed
// two's-complement field of the given width. width must be in [1, 64].
func MaxSigned(width int) int64 {
	return int64(^uint64(0) >> uint(65-width))
}

// MinSigned returns the smallest value representable in a signed
// two's-complement field of the given width. width must be in [1, 64].
func MinSigned(width int) int64 {
	return -1 << uint(width-1)
}

// SignExtend reinterprets the low width bits of v as a signed
// two's-complement value. Bits above width are ignored. width must be in
// [1, 64]; a full-width call returns v unchanged.
func SignExtend(v int64, width int) int64 {
	shift := uint(64 - width)
	return int64(uint64(v)<<shift) >> shift
}

// Truncate masks v down to its low width bits. width must be in [1, 64].
func Truncate(v uint64, width int) uint64 {
	if width >= 64 {
		return v
	}
	return v & (^uint64(0) >> uint(64-width))
}

// MulShiftRight computes (a*b) >> shift with a full 128-bit intermediate
// product, so the multiply never overflows before the scale-down. The shift
// is arithmetic: negative products truncate toward negative infinity.
//
// The shifted result is returned as the low 64 bits of the 128-bit value;
// callers are responsible for choosing widths such that it is
// representable, as with any hardware bit-slice.
func MulShiftRight(a, b int64, shift uint) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	// Convert the unsigned 128-bit product to the signed product.
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}

	switch {
	case shift == 0:
		return int64(lo)
	case shift < 64:
		return int64(hi<<(64-shift) | lo>>shift)
	case shift < 128:
		return int64(hi) >> (shift - 64)
	default:
		return int64(hi) >> 63
	}
}

// Quantize converts a real value to its fixed-point representation with
// fracBits fractional bits, truncating toward negative infinity. It returns
// an error if x is not finite or if the scaled value does not fit a signed
// field of the given width.
func Quantize(x float64, fracBits, width int) (int64, error) {
	if width < 1 || width > 64 {
		return 0, fmt.Errorf("fixed: width must be in [1, 64]: %d", width)
	}

	if fracBits < 0 || fracBits >= width {
		return 0, fmt.Errorf("fixed: fractional bits must be in [0, width): %d", fracBits)
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("fixed: value must be finite: %v", x)
	}

	scaled := math.Floor(x * math.Exp2(float64(fracBits)))
	if scaled < float64(MinSigned(width)) || scaled > float64(MaxSigned(width)) {
		return 0, fmt.Errorf("fixed: %v does not fit Q%d.%d", x, width-fracBits, fracBits)
	}

	return int64(scaled), nil
}
