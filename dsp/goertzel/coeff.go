package goertzel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-goertzel/dsp/fixed"
)

// BinCoefficient returns the fixed-point encoding of 2*cos(2*pi*bin/n)
// for DFT bin `bin` of an n-sample block, with fracBits fractional bits in
// a signed field coeffWidth bits wide.
//
// The encoding truncates toward negative infinity, matching the detector's
// datapath. Note that bin 0 encodes the value 2.0 exactly, which needs
// coeffWidth > fracBits+2.
func BinCoefficient(bin, blockLength, fracBits, coeffWidth int) (int64, error) {
	if blockLength < 2 {
		return 0, fmt.Errorf("goertzel: block length must be >= 2: %d", blockLength)
	}

	if bin < 0 || bin > blockLength/2 {
		return 0, fmt.Errorf("goertzel: bin must be in [0, %d]: %d", blockLength/2, bin)
	}

	c := 2 * math.Cos(2*math.Pi*float64(bin)/float64(blockLength))

	return fixed.Quantize(c, fracBits, coeffWidth)
}

// FrequencyCoefficient returns the fixed-point encoding of
// 2*cos(2*pi*frequency/sampleRate). frequency must be between 0 and
// sampleRate/2.
//
// Detection is sharpest when frequency falls on an integer bin of the
// block, i.e. when frequency/sampleRate*N is whole; otherwise the tone's
// energy leaks into neighbouring bins.
func FrequencyCoefficient(frequency, sampleRate float64, fracBits, coeffWidth int) (int64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return 0, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	c := 2 * math.Cos(2*math.Pi*frequency/sampleRate)

	return fixed.Quantize(c, fracBits, coeffWidth)
}
