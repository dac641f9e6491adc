package jar

import "math"

// LinToLog converts a linear-domain binary32 value into its LogPS80
// encoding ((-1)^s, m + log2(1+f)_rnd). It proceeds in three phases: round
// x to log2IndBits mantissa bits to pick the log2 lookup index, replace
// the mantissa with the table's log2(1+f) fraction, then round the result
// to the precision Posit-(8,0) allows at the resulting exponent.
func LinToLog(x float32) BitCell {
	y := roundToLFrac(FromFloat32(x), log2IndBits)

	i := (y.Bits() & fracMask) >> log2IndShift
	g := log2Tbl[i]
	y = FromBits((y.Bits() & clearFrac) | g.Bits())

	return roundToPS80(y)
}

// LogToLin converts a LogPS80 (or wider-range LogSum) cell to its
// table-based linear-domain approximation: the top exp2IndBits mantissa
// bits select an index into exp2Tbl, and the mantissa field is replaced
// by the table's 2^f - 1 fraction. This is the fast, table-driven
// converter used on the hot FMA path; it is not the accurate conversion
// (see [LogToLinAccurate]).
func LogToLin(x BitCell) BitCell {
	i := (x.Bits() & fracMask) >> exp2IndShift
	g := exp2Tbl[i]
	return FromBits((x.Bits() & clearFrac) | g.Bits())
}

// LogToLinAccurate computes the accurate linear-domain value of a LogPS80
// cell using the host's exp2 rather than the table, for use by tests and
// by callers converting a final accumulator back when high accuracy
// matters more than matching the table-driven hardware path.
func LogToLinAccurate(x BitCell) float32 {
	y := FromBits((x.Bits() & fracMask) | 0x3F800000)
	frac := y.Float() - 1.0
	gF := float32(math.Exp2(float64(frac)))

	gBits := FromFloat32(gF).Bits() & fracMask
	return FromBits((x.Bits() & clearFrac) | gBits).Float()
}
