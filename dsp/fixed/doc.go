// Package fixed provides two's-complement fixed-point arithmetic helpers
// for integer DSP datapaths.
//
// The package models the width-management policy of a hardware datapath:
// values live in int64/uint64 containers but are logically narrower, and
// every width change is an explicit operation — sign extension when a
// narrow value enters a wider computation, masking when a wide value is
// sliced down, and a combined multiply/arithmetic-shift for fixed-point
// scaling.
//
// All scale-downs truncate toward negative infinity (arithmetic right
// shift). There is no rounding variant; keeping a single convention is what
// makes integer results reproducible across the recursive and finalization
// stages of a filter.
package fixed
