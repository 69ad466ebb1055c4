package testutil

import (
	"math"
	"math/rand"
)

// SineAtBin generates one block of an integer-valued sinusoid whose
// frequency lands exactly on DFT bin k of a length-n block. Samples are
// rounded to the nearest integer.
func SineAtBin(k, n int, amplitude float64) []int64 {
	out := make([]int64, n)
	step := 2 * math.Pi * float64(k) / float64(n)
	for i := range out {
		out[i] = int64(math.Round(amplitude * math.Sin(step*float64(i))))
	}
	return out
}

// DC generates a constant-valued integer signal.
func DC(value int64, length int) []int64 {
	out := make([]int64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Zeros generates an all-zero integer signal.
func Zeros(length int) []int64 {
	return make([]int64, length)
}

// DeterministicNoise generates integer white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []int64 {
	out := make([]int64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int64(math.Round((rng.Float64()*2 - 1) * amplitude))
	}
	return out
}

// ToFloat widens an integer signal to float64 for reference computations.
func ToFloat(in []int64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
