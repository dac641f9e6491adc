package matvec

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

func TestMatVecPanicsOnUndersizedMatrix(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MatVec(2, 2, make([]jar.BitCell, 3), make([]jar.BitCell, 2), make([]jar.BitCell, 2))
}

func TestMatVecSmallExample(t *testing.T) {
	// A (2x3, col-major):
	//   [1 2 3]
	//   [4 5 6]
	// stored column-major: col0={1,4} col1={2,5} col2={3,6}
	a := []jar.BitCell{
		jar.LinToLog(1), jar.LinToLog(4),
		jar.LinToLog(2), jar.LinToLog(5),
		jar.LinToLog(3), jar.LinToLog(6),
	}
	b := []jar.BitCell{jar.LinToLog(1), jar.LinToLog(0), jar.LinToLog(1)}
	c := make([]jar.BitCell, 2)
	MatVec(2, 3, a, b, c)

	approxEqual(t, jar.LogToLinAccurate(c[0]), 4, 1)  // 1*1 + 2*0 + 3*1
	approxEqual(t, jar.LogToLinAccurate(c[1]), 10, 1) // 4*1 + 5*0 + 6*1
}

func TestMatVecScalarMatchesVectorized(t *testing.T) {
	rng := rand.New(rand.NewPCG(100, 200))
	m, k := 2*jar.VectorWidth+3, 5
	a := make([]jar.BitCell, m*k)
	b := make([]jar.BitCell, k)
	for i := range a {
		a[i] = jar.LinToLog(float32(rng.Float64()*2 - 1))
	}
	for i := range b {
		b[i] = jar.LinToLog(float32(rng.Float64()*2 - 1))
	}

	cVector := make([]jar.BitCell, m)
	matvecImpl(m, k, a, b, cVector)

	cScalar := make([]jar.BitCell, m)
	matvecScalar(m, k, a, b, cScalar)

	for i := 0; i < m; i++ {
		got := jar.LogToLinAccurate(cVector[i])
		want := jar.LogToLinAccurate(cScalar[i])
		approxEqual(t, got, want, 1e-3)
	}
}
