// Command bininfo prints fixed-point coefficient encodings and detector
// responses for the Goertzel single-bin detector.
//
// Usage:
//
//	bininfo [flags] [bin ...]
//
// Without arguments it prints the coefficient table for every bin up to
// N/2. With -sweep it additionally feeds a full-scale sinusoid at each
// listed bin into a detector tuned to -bin and prints the fixed-point
// response, which makes the filter's selectivity visible on the console.
//
// Examples:
//
//	bininfo 10
//	bininfo -n 100 -frac 14 10 25 50
//	bininfo -n 100 -bin 10 -sweep
//	bininfo -n 128 -bin 16 -amplitude 500 -sweep
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-goertzel/dsp/goertzel"
)

func main() {
	n := flag.Int("n", 100, "block length in samples")
	frac := flag.Int("frac", 14, "fractional bits of the coefficient scale")
	inputWidth := flag.Int("input-width", 16, "signed input sample width in bits")
	coeffWidth := flag.Int("coeff-width", 16, "signed coefficient width in bits")
	targetBin := flag.Int("bin", 10, "detector bin for -sweep")
	amplitude := flag.Float64("amplitude", 1000, "stimulus amplitude for -sweep")
	sweep := flag.Bool("sweep", false, "feed a sinusoid at each bin into the -bin detector")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bininfo [flags] [bin ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints fixed-point Goertzel coefficients and detector responses.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all bins up to N/2.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bininfo 10\n")
		fmt.Fprintf(os.Stderr, "  bininfo -n 100 -frac 14 10 25 50\n")
		fmt.Fprintf(os.Stderr, "  bininfo -n 100 -bin 10 -sweep\n")
	}
	flag.Parse()

	bins, err := resolveBins(flag.Args(), *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *sweep {
		err = printSweep(bins, *targetBin, *n, *frac, *inputWidth, *coeffWidth, *amplitude)
	} else {
		err = printCoefficients(bins, *n, *frac, *coeffWidth)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveBins(args []string, n int) ([]int, error) {
	if len(args) == 0 {
		bins := make([]int, n/2+1)
		for i := range bins {
			bins[i] = i
		}
		return bins, nil
	}

	bins := make([]int, 0, len(args))
	for _, a := range args {
		bin, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid bin %q", a)
		}
		bins = append(bins, bin)
	}
	return bins, nil
}

func printCoefficients(bins []int, n, frac, coeffWidth int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tNorm.Freq\t2cos(w)\tQ%d\n", frac)

	for _, bin := range bins {
		value := 2 * math.Cos(2*math.Pi*float64(bin)/float64(n))

		coeff, err := goertzel.BinCoefficient(bin, n, frac, coeffWidth)
		if err != nil {
			fmt.Fprintf(tw, "%d\t%.4f\t%+.6f\t%v\n", bin, float64(bin)/float64(n), value, err)
			continue
		}

		fmt.Fprintf(tw, "%d\t%.4f\t%+.6f\t%d\n", bin, float64(bin)/float64(n), value, coeff)
	}

	return tw.Flush()
}

func printSweep(bins []int, targetBin, n, frac, inputWidth, coeffWidth int, amplitude float64) error {
	cfg := goertzel.Config{
		InputWidth:  inputWidth,
		CoeffWidth:  coeffWidth,
		FracBits:    frac,
		BlockLength: n,
	}

	block, err := goertzel.New(cfg)
	if err != nil {
		return err
	}

	coeff, err := goertzel.BinCoefficient(targetBin, n, frac, coeffWidth)
	if err != nil {
		return err
	}

	if err := block.SetCoefficient(coeff); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stimulus Bin\tResult\t\n")

	for _, bin := range bins {
		result, err := block.ProcessBlock(sine(bin, n, amplitude))
		if err != nil {
			return err
		}

		marker := ""
		if bin == targetBin {
			marker = "<- detector bin"
		}

		fmt.Fprintf(tw, "%d\t%d\t%s\n", bin, result, marker)
	}

	return tw.Flush()
}

func sine(bin, n int, amplitude float64) []int64 {
	out := make([]int64, n)
	step := 2 * math.Pi * float64(bin) / float64(n)
	for i := range out {
		out[i] = int64(math.Round(amplitude * math.Sin(step*float64(i))))
	}
	return out
}
