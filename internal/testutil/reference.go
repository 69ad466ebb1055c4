package testutil

import (
	"errors"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
)

// BinPowers returns the reference squared-magnitude spectrum |X[k]|^2 for
// every DFT bin of one integer sample block.
//
// Power-of-two lengths go through an algo-fft plan; other lengths fall back
// to go-dsp, which handles arbitrary sizes.
func BinPowers(samples []int64) ([]float64, error) {
	n := len(samples)
	if n == 0 {
		return nil, errors.New("testutil: empty sample block")
	}

	var bins []complex128

	if n&(n-1) == 0 {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, err
		}

		in := make([]complex128, n)
		for i, v := range samples {
			in[i] = complex(float64(v), 0)
		}

		bins = make([]complex128, n)

		err = plan.Forward(bins, in)
		if err != nil {
			return nil, err
		}
	} else {
		bins = fft.FFTReal(ToFloat(samples))
	}

	re := make([]float64, n)
	im := make([]float64, n)

	for i, b := range bins {
		re[i] = real(b)
		im[i] = imag(b)
	}

	power := make([]float64, n)
	vecmath.Power(power, re, im)

	return power, nil
}

// DominantBin returns the index of the strongest bin in powers[1..maxBin].
// Bin 0 is skipped so DC does not mask a tone.
func DominantBin(powers []float64, maxBin int) int {
	best := 1
	for k := 2; k <= maxBin && k < len(powers); k++ {
		if powers[k] > powers[best] {
			best = k
		}
	}
	return best
}
