package jar

// LogAdd computes the exact log-domain sum of two LogPS80 values, which
// corresponds to the product of the two linear-domain values they encode.
// It is branch-free integer arithmetic on the bit patterns:
//
// Both operands encode (-1)^s * 2^m * (1+f). The sign bits are added
// separately, so their carry out of bit 31 is dropped and the result is
// s_x XOR s_y. The unsigned add of the two patterns sums the biased
// exponents, (127+m_x)+(127+m_y) = 254+m_x+m_y, and adding 129<<23 makes
// that 383+m_x+m_y; clearing bit 31 drops the 256 that carried into it,
// leaving 127+m_x+m_y. The mantissa fields add as f_x+f_y: when that sum
// reaches 1 it carries into the exponent field, so the retained bits are
// the fractional part and the carry is its integer part. For example,
// LogAdd of two 1.0 cells (0x3F800000) is 0x3F800000 again.
//
// The result is a LogSum: its exponent may fall outside the Posit-(8,0)
// range a LogPS80 value permits, but it is immediately consumed by
// [LogToLin] or [LogToLinAccurate], which keep its sign and exponent and
// replace only the fraction bits.
func LogAdd(x, y BitCell) BitCell {
	sign := (x.Bits() & signMask) + (y.Bits() & signMask)
	z := x.Bits() + y.Bits() + 0x40800000
	z = (z & clearSign) | (sign & signMask)
	return FromBits(z)
}
