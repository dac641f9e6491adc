package dot

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jarsim/jarsim/jar"
)

func approxEqual(t *testing.T, got, want, tol float32) {
	t.Helper()
	if d := float32(math.Abs(float64(got - want))); d > tol {
		t.Errorf("got %v, want %v (tolerance %v, diff %v)", got, want, tol, d)
	}
}

func TestDotEmpty(t *testing.T) {
	if got := Dot(nil, nil); got != jar.JARZero {
		t.Errorf("Dot(nil, nil) = %#x, want JARZero", got.Bits())
	}
}

func TestDotPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched lengths")
		}
	}()
	Dot([]jar.BitCell{jar.JARZero}, nil)
}

func TestDotSmallExample(t *testing.T) {
	x := []jar.BitCell{jar.LinToLog(1), jar.LinToLog(2), jar.LinToLog(3)}
	y := []jar.BitCell{jar.LinToLog(4), jar.LinToLog(5), jar.LinToLog(6)}
	got := jar.LogToLinAccurate(Dot(x, y))
	approxEqual(t, got, 32, 2) // 1*4 + 2*5 + 3*6 = 32
}

// Scalar and vectorized paths must agree across a window that exercises
// full 16-lane chunks plus a scalar tail.
func TestDotScalarMatchesVectorized(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	n := 3*jar.VectorWidth + 5
	x := make([]jar.BitCell, n)
	y := make([]jar.BitCell, n)
	for i := range x {
		x[i] = jar.LinToLog(float32(rng.Float64()*2 - 1))
		y[i] = jar.LinToLog(float32(rng.Float64()*2 - 1))
	}

	viaVector := jar.LogToLinAccurate(dotImpl(x, y))
	viaScalar := jar.LogToLinAccurate(dotScalar(x, y))
	approxEqual(t, viaVector, viaScalar, 1e-3)
}
