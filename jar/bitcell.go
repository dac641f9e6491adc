package jar

import "math"

// BitCell is a 32-bit storage cell with two equally authoritative views: an
// unsigned integer and an IEEE-754 binary32 float. It is the only numeric
// type the core manipulates; Bits and Float give transparent
// reinterpretation of the same bit pattern, never a numeric conversion.
//
// BitCell's underlying type is uint32 so it composes directly with
// [jar/internal/lane].Vec, the package's 16-lane abstraction.
type BitCell uint32

// JARZero is the sentinel LogPS80 encoding of "true zero": a vanishingly
// small magnitude (2^-63) rather than a tagged IsZero flag. Any product
// involving JARZero has magnitude small enough to be rounded away by any
// non-tiny accumulation, which is what lets [LogAdd] and the FMA primitive
// stay branch-free. This choice is load-bearing — see DESIGN.md's Open
// Question decisions.
const JARZero BitCell = 0x20000000

// Bit masks and field shifts for the LogPS80 encoding, named to match the
// original JAR reference implementation (jar_type.h).
const (
	signMask  uint32 = 0x80000000
	fracMask  uint32 = 0x007FFFFF
	bexpMask  uint32 = 0x7F800000
	clearSign uint32 = 0x7FFFFFFF
	clearFrac uint32 = 0xFF800000

	exp2IndBits  = 6
	exp2IndShift = 23 - exp2IndBits
	log2IndBits  = 5
	log2IndShift = 23 - log2IndBits
)

// FromBits reinterprets a raw 32-bit pattern as a BitCell.
func FromBits(u uint32) BitCell { return BitCell(u) }

// FromFloat32 reinterprets a binary32 value's bit pattern as a BitCell
// (LinFP32 interpretation).
func FromFloat32(f float32) BitCell { return BitCell(math.Float32bits(f)) }

// Bits returns the cell's unsigned-integer view.
func (c BitCell) Bits() uint32 { return uint32(c) }

// Float returns the cell's binary32 view.
func (c BitCell) Float() float32 { return math.Float32frombits(uint32(c)) }

// Sign reports the cell's sign bit (0 or 1), the s in the LogPS80
// encoding ((-1)^s, m+f).
func (c BitCell) Sign() uint32 { return c.Bits() >> 31 }

// BiasedExponent returns the raw 8-bit biased-exponent field.
func (c BitCell) BiasedExponent() uint32 { return (c.Bits() & bexpMask) >> 23 }

// Exponent returns the unbiased exponent m for a LogPS80-shaped cell: the
// integer part of the logarithmic value ((-1)^s, m+f).
func (c BitCell) Exponent() int { return int(c.BiasedExponent()) - 127 }
