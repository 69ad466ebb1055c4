package goertzel

import (
	"math"
	"testing"
)

func TestBinCoefficient_KnownValues(t *testing.T) {
	// The canonical bin-10-of-100 detector at Q14.
	c, err := BinCoefficient(10, 100, 14, 16)
	if err != nil {
		t.Fatalf("BinCoefficient: %v", err)
	}

	if c != 26509 {
		t.Errorf("bin 10/100 at Q14: got %d, want 26509", c)
	}

	// Quarter-rate bin: 2*cos(pi/2) = 0.
	c, err = BinCoefficient(25, 100, 14, 16)
	if err != nil {
		t.Fatalf("BinCoefficient: %v", err)
	}

	if c != 0 {
		t.Errorf("bin 25/100 at Q14: got %d, want 0", c)
	}

	// Nyquist bin: 2*cos(pi) = -2, exactly the most negative Q14 value.
	c, err = BinCoefficient(50, 100, 14, 16)
	if err != nil {
		t.Fatalf("BinCoefficient: %v", err)
	}

	if c != -32768 {
		t.Errorf("bin 50/100 at Q14: got %d, want -32768", c)
	}
}

func TestBinCoefficient_Validation(t *testing.T) {
	if _, err := BinCoefficient(10, 1, 14, 16); err == nil {
		t.Error("BinCoefficient should fail for block length < 2")
	}

	if _, err := BinCoefficient(-1, 100, 14, 16); err == nil {
		t.Error("BinCoefficient should fail for a negative bin")
	}

	if _, err := BinCoefficient(51, 100, 14, 16); err == nil {
		t.Error("BinCoefficient should fail for a bin above N/2")
	}

	// Bin 0 encodes +2.0, which does not fit Q14 in 16 bits.
	if _, err := BinCoefficient(0, 100, 14, 16); err == nil {
		t.Error("BinCoefficient should fail when +2.0 does not fit the width")
	}

	// It does fit one bit wider.
	c, err := BinCoefficient(0, 100, 14, 17)
	if err != nil {
		t.Fatalf("BinCoefficient: %v", err)
	}

	if c != 32768 {
		t.Errorf("bin 0 at Q14/17-bit: got %d, want 32768", c)
	}
}

func TestFrequencyCoefficient(t *testing.T) {
	// 4.8 kHz at 48 kHz is bin 10 of a 100-sample block.
	fromFreq, err := FrequencyCoefficient(4800, 48000, 14, 16)
	if err != nil {
		t.Fatalf("FrequencyCoefficient: %v", err)
	}

	fromBin, _ := BinCoefficient(10, 100, 14, 16)
	if fromFreq != fromBin {
		t.Errorf("frequency and bin encodings disagree: %d vs %d", fromFreq, fromBin)
	}

	if _, err := FrequencyCoefficient(1000, 0, 14, 16); err == nil {
		t.Error("FrequencyCoefficient should fail for zero sample rate")
	}

	if _, err := FrequencyCoefficient(-1, 48000, 14, 16); err == nil {
		t.Error("FrequencyCoefficient should fail for negative frequency")
	}

	if _, err := FrequencyCoefficient(24001, 48000, 14, 16); err == nil {
		t.Error("FrequencyCoefficient should fail above Nyquist")
	}

	if _, err := FrequencyCoefficient(math.NaN(), 48000, 14, 16); err == nil {
		t.Error("FrequencyCoefficient should fail for NaN")
	}
}
