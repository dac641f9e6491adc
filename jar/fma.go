package jar

import "github.com/jarsim/jarsim/jar/internal/lane"

// VectorWidth is the lane count [FMAVec16] operates on.
const VectorWidth = lane.Width

// FMA is the scalar fused multiply-add primitive: it computes the
// log-domain product of a and b (via [LogAdd]), converts the sum to the
// linear domain via the fast table-based [LogToLin], and adds it into the
// linear-domain accumulator acc.
func FMA(a, b, acc BitCell) BitCell {
	w := LogToLin(LogAdd(a, b))
	return FromFloat32(acc.Float() + w.Float())
}

// FMAVec16 is the 16-lane vector form of [FMA]: each lane performs an
// independent log-add, table-based linear conversion, and accumulate. The
// gather step here is the portable scalar-lookup fallback spec.md allows
// in place of a hardware gather instruction; see the jar/internal/lane
// package doc for why there is only one (portable) vector implementation.
//
// Only the first VectorWidth elements of a, b and acc are read; a slice
// shorter than that is zero-padded, so the missing lanes read as 0 bits.
func FMAVec16(a, b, acc []BitCell) [VectorWidth]BitCell {
	av := lane.Load(a)
	bv := lane.Load(b)
	cv := lane.Load(acc)

	signA := lane.AndScalar(av, BitCell(signMask))
	signB := lane.AndScalar(bv, BitCell(signMask))
	sign := lane.AddInt(signA, signB)

	z := lane.AddScalarInt(lane.AddInt(av, bv), BitCell(0x40800000))
	z = lane.Or(lane.AndScalar(z, BitCell(clearSign)), lane.AndScalar(sign, BitCell(signMask)))

	idx := lane.ShiftRight(lane.AndScalar(z, BitCell(fracMask)), exp2IndShift)
	frac := lane.Gather[BitCell](exp2Tbl[:], idx)
	y := lane.Or(lane.AndScalar(z, BitCell(clearFrac)), frac)

	sum := lane.AddFloat(bitsToFloatLanes(cv), bitsToFloatLanes(y))

	var out [VectorWidth]BitCell
	floatLanesToBits(sum).Store(out[:])
	return out
}

func bitsToFloatLanes(v lane.Vec[BitCell]) lane.Vec[float32] {
	var out lane.Vec[float32]
	for i := 0; i < lane.Width; i++ {
		out = out.WithLane(i, v.Lane(i).Float())
	}
	return out
}

func floatLanesToBits(v lane.Vec[float32]) lane.Vec[BitCell] {
	var out lane.Vec[BitCell]
	for i := 0; i < lane.Width; i++ {
		out = out.WithLane(i, FromFloat32(v.Lane(i)))
	}
	return out
}
