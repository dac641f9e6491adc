package jar

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestFMABasic(t *testing.T) {
	a := LinToLog(2.0)
	b := LinToLog(3.0)
	acc := FromFloat32(1.0)
	got := FMA(a, b, acc).Float()
	want := float32(1.0 + 6.0)
	if d := math.Abs(float64(got - want)); d > 0.5 {
		t.Errorf("FMA(2,3,acc=1) = %v, want ~%v", got, want)
	}
}

func TestFMAVec16MatchesScalarFMA(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	a := make([]BitCell, VectorWidth)
	b := make([]BitCell, VectorWidth)
	acc := make([]BitCell, VectorWidth)
	for i := range a {
		a[i] = LinToLog(float32(rng.Float64()*2 - 1))
		b[i] = LinToLog(float32(rng.Float64()*2 - 1))
		acc[i] = FromFloat32(float32(rng.Float64()*2 - 1))
	}

	got := FMAVec16(a, b, acc)
	for i := 0; i < VectorWidth; i++ {
		want := FMA(a[i], b[i], acc[i])
		if got[i] != want {
			t.Errorf("lane %d: FMAVec16=%#x, scalar FMA=%#x", i, got[i].Bits(), want.Bits())
		}
	}
}

func TestFMAVec16ShortInputsUseZeroPadding(t *testing.T) {
	a := []BitCell{LinToLog(1.0)}
	b := []BitCell{LinToLog(1.0)}
	acc := []BitCell{FromFloat32(0)}
	got := FMAVec16(a, b, acc)
	want := FMA(a[0], b[0], acc[0])
	if got[0] != want {
		t.Errorf("lane 0: got %#x, want %#x", got[0].Bits(), want.Bits())
	}
}
