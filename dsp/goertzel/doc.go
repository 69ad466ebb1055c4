// Package goertzel implements a streaming, fixed-point Goertzel single-bin
// frequency detector.
//
// The detector models a synchronous datapath: a small control state machine
// (idle, accumulating, finalizing), a per-sample second-order recurrence
// over two integer taps, and an end-of-block magnitude finalizer. The host
// drives it one logical clock tick at a time through [Block.Step]; all
// signals of one tick travel in a single [Input]/[Output] pair, so there is
// exactly one writer and no concurrency.
//
// All arithmetic is integer-only with an explicit width policy: input
// samples are sign-extended into taps twice their width, the coefficient is
// a fixed-point encoding of 2*cos(2*pi*k/N), and every scale-down truncates
// toward negative infinity. The output is the squared magnitude |X[k]|^2
// with the low fractional bits sliced off.
//
// Frequency resolution is 1/N of the sample rate; a block observes exactly
// N samples and holds no state between blocks.
package goertzel
