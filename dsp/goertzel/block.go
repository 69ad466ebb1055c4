package goertzel

import (
	"fmt"

	"github.com/cwbudde/algo-goertzel/dsp/fixed"
)

// Config holds the construction-time parameters of a detector block.
// None of them are mutable at runtime.
type Config struct {
	// InputWidth is the bit width of the signed input samples.
	// Must be in [2, 16]; taps are twice this wide.
	InputWidth int

	// CoeffWidth is the bit width of the signed fixed-point coefficient.
	// Must be in [2, 32].
	CoeffWidth int

	// FracBits is the number of fractional bits of the coefficient scale.
	// Must be in [1, CoeffWidth).
	FracBits int

	// BlockLength is the number of samples per detection block (N).
	// Must be at least 2.
	BlockLength int
}

// DefaultConfig returns a 16-bit, Q14, 100-sample configuration.
func DefaultConfig() Config {
	return Config{
		InputWidth:  16,
		CoeffWidth:  16,
		FracBits:    14,
		BlockLength: 100,
	}
}

// Input carries the signals presented to a block for one clock tick.
type Input struct {
	// Reset forces the block back to idle, discarding any in-progress
	// state. It dominates every other signal on the same tick.
	Reset bool

	// Start begins a new block. Ignored while the block is busy.
	Start bool

	// Sample is the signed input sample. Bits above InputWidth are
	// ignored; the low InputWidth bits are read as two's complement.
	Sample int64

	// SampleValid marks Sample as present. Samples are only consumed
	// while the block is accumulating; on other ticks the pair is
	// ignored.
	SampleValid bool
}

// Output carries the signals produced by one clock tick.
type Output struct {
	// Result is the squared-magnitude estimate, 2*InputWidth bits wide.
	// It is only meaningful on the tick ResultValid is true and is zero
	// otherwise.
	Result uint64

	// ResultValid pulses true for exactly one tick per completed block.
	ResultValid bool

	// Busy is true from the start tick through the finalize tick.
	Busy bool
}

type state int

const (
	stateIdle state = iota
	stateAccumulating
	stateFinalizing
)

// Block is a fixed-point Goertzel detector for a single frequency bin.
//
// A Block is not safe for concurrent use; it models a single synchronous
// unit with one driver.
type Block struct {
	cfg      Config
	tapWidth int

	coeff int64

	s1, s2 int64
	count  int
	state  state
}

// New creates a detector block with the given configuration. The
// coefficient starts at zero; set it with [Block.SetCoefficient] before
// starting a block.
func New(cfg Config) (*Block, error) {
	if cfg.InputWidth < 2 || cfg.InputWidth > 16 {
		return nil, fmt.Errorf("goertzel: input width must be in [2, 16]: %d", cfg.InputWidth)
	}

	if cfg.CoeffWidth < 2 || cfg.CoeffWidth > 32 {
		return nil, fmt.Errorf("goertzel: coefficient width must be in [2, 32]: %d", cfg.CoeffWidth)
	}

	if cfg.FracBits < 1 || cfg.FracBits >= cfg.CoeffWidth {
		return nil, fmt.Errorf("goertzel: fractional bits must be in [1, coefficient width): %d", cfg.FracBits)
	}

	if cfg.BlockLength < 2 {
		return nil, fmt.Errorf("goertzel: block length must be >= 2: %d", cfg.BlockLength)
	}

	return &Block{
		cfg:      cfg,
		tapWidth: 2 * cfg.InputWidth,
	}, nil
}

// SetCoefficient latches the fixed-point coefficient for subsequent blocks.
// It fails while a block is in flight (the coefficient is immutable for the
// duration of a block) and if c does not fit the configured width.
func (b *Block) SetCoefficient(c int64) error {
	if b.state != stateIdle {
		return fmt.Errorf("goertzel: coefficient can only change while idle")
	}

	if c < fixed.MinSigned(b.cfg.CoeffWidth) || c > fixed.MaxSigned(b.cfg.CoeffWidth) {
		return fmt.Errorf("goertzel: coefficient %d does not fit %d bits", c, b.cfg.CoeffWidth)
	}

	b.coeff = c

	return nil
}

// Step advances the block by one logical clock tick.
//
// A tick that asserts Start arms the block but does not consume a sample;
// accumulation begins on the following tick. After the N-th accepted
// sample the next tick finalizes: its Output carries the result with
// ResultValid set and Busy still high, and the block is idle again on the
// tick after that.
func (b *Block) Step(in Input) Output {
	if in.Reset {
		b.s1, b.s2 = 0, 0
		b.count = 0
		b.state = stateIdle

		return Output{}
	}

	var out Output

	switch b.state {
	case stateIdle:
		if in.Start {
			b.s1, b.s2 = 0, 0
			b.count = 0
			b.state = stateAccumulating
			out.Busy = true
		}

	case stateAccumulating:
		out.Busy = true

		if in.SampleValid {
			b.update(in.Sample)

			if b.count == b.cfg.BlockLength {
				b.state = stateFinalizing
			}
		}

	case stateFinalizing:
		out.Busy = true
		out.Result = b.finalize()
		out.ResultValid = true
		b.state = stateIdle
	}

	return out
}

// update runs the recursive tap update for one accepted sample.
func (b *Block) update(sample int64) {
	x := fixed.SignExtend(sample, b.cfg.InputWidth)
	scaled := fixed.MulShiftRight(b.s1, b.coeff, uint(b.cfg.FracBits))

	// Taps wrap two's-complement at tap width; no saturation.
	s0 := fixed.SignExtend(x+scaled-b.s2, b.tapWidth)
	b.s2 = b.s1
	b.s1 = s0
	b.count++
}

// finalize evaluates the magnitude-squared identity
// s1^2 + s2^2 - ((s1*s2*c) >> Q) over the final taps.
//
// Taps are at most 32 bits wide, so the squares and the tap product fit
// int64 exactly; only the coefficient scaling needs the 128-bit
// intermediate. A negative value, possible from truncation error near
// zero, clamps to zero. The result keeps the middle portion of the full
// squared width: the low InputWidth bits are dropped and the next
// 2*InputWidth bits are returned.
func (b *Block) finalize() uint64 {
	cross := fixed.MulShiftRight(b.s1*b.s2, b.coeff, uint(b.cfg.FracBits))

	magSq := b.s1*b.s1 + b.s2*b.s2 - cross
	if magSq < 0 {
		return 0
	}

	return fixed.Truncate(uint64(magSq)>>uint(b.cfg.InputWidth), 2*b.cfg.InputWidth)
}

// Busy reports whether a block is in flight.
func (b *Block) Busy() bool { return b.state != stateIdle }

// Coefficient returns the currently latched coefficient.
func (b *Block) Coefficient() int64 { return b.coeff }

// Config returns the block's configuration.
func (b *Block) Config() Config { return b.cfg }

// ProcessBlock drives one complete block through [Block.Step]: a start
// tick, one tick per sample, and the finalize tick. The block must be idle
// and samples must hold exactly BlockLength values.
func (b *Block) ProcessBlock(samples []int64) (uint64, error) {
	if b.state != stateIdle {
		return 0, fmt.Errorf("goertzel: block is busy")
	}

	if len(samples) != b.cfg.BlockLength {
		return 0, fmt.Errorf("goertzel: need exactly %d samples: %d", b.cfg.BlockLength, len(samples))
	}

	b.Step(Input{Start: true})

	for _, s := range samples {
		b.Step(Input{Sample: s, SampleValid: true})
	}

	out := b.Step(Input{})

	return out.Result, nil
}

// AnalyzeBlock computes the squared magnitude of one sample block in a
// single shot. The block length is taken from len(samples); the remaining
// configuration comes from cfg.
func AnalyzeBlock(samples []int64, coeff int64, cfg Config) (uint64, error) {
	cfg.BlockLength = len(samples)

	b, err := New(cfg)
	if err != nil {
		return 0, err
	}

	err = b.SetCoefficient(coeff)
	if err != nil {
		return 0, err
	}

	return b.ProcessBlock(samples)
}
