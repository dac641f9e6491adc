package jar

// twoToK returns a BitCell whose Float equals 2^k, exact for |k| <= 50. It
// starts from 1.0 and shifts the biased-exponent field by k, rather than
// computing a power explicitly — the same trick the reference
// implementation's two_2_k uses.
func twoToK(k int) BitCell {
	if k > 50 || k < -50 {
		panic("jar: twoToK: k out of range [-50, 50]")
	}
	const one uint32 = 0x3F800000 // bit pattern of float32(1.0)
	if k >= 0 {
		return FromBits(one + uint32(k)<<23)
	}
	return FromBits(one - uint32(-k)<<23)
}

// roundToLFrac rounds x's binary32 value so its mantissa retains only the
// top L bits, round-to-nearest-even, via the add/subtract-big idiom: the
// "big" value is 2^(23-L) times the magnitude of x (same sign and
// exponent as x, mantissa cleared), and (x+Big)-Big snaps x onto the
// coarser grid Big's magnitude forces. Requires 0 <= L <= 10.
func roundToLFrac(x BitCell, L int) BitCell {
	if L < 0 || L > 10 {
		panic("jar: roundToLFrac: L out of range [0, 10]")
	}
	y := FromBits(x.Bits() & clearFrac)
	big := twoToK(23 - L)
	bigF := big.Float() * y.Float()

	xf := x.Float()
	xf += bigF
	xf -= bigF
	return FromFloat32(xf)
}

// roundToPS80 rounds a LogPS80-shaped cell to the precision Posit-(8,0)
// permits at its exponent. It looks up the "Big" rounding constant for the
// cell's raw biased-exponent byte and applies (Big + (x & mask)) -
// (Big & mask): mask is 0x7FFFFFFF (sign cleared) when the unbiased exponent lies in
// [-6, 5] (yielding correct variable-precision round-to-nearest), and zero
// outside that range (so the expression reduces to Big itself, i.e.
// saturation). Per bigTbl: exponent >= 6 saturates to 2^6, exponent in
// [-28, -7] snaps to the smallest in-range magnitude 2^-6, and exponent
// <= -29 maps to JARZero. The input sign bit is always preserved.
func roundToPS80(x BitCell) BitCell {
	signX := x.Bits() & signMask
	ind := x.BiasedExponent()
	expo := int(ind) - 127

	var opMask uint32
	if expo <= -7 || expo >= 6 {
		opMask = 0
	} else {
		opMask = clearSign
	}

	big := bigTbl[ind]
	y := FromBits(x.Bits() & opMask)
	yf := y.Float() + big.Float()

	bigMasked := FromBits(big.Bits() & opMask)
	yf -= bigMasked.Float()

	return FromBits(FromFloat32(yf).Bits() | signX)
}
