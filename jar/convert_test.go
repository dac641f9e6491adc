package jar

import (
	"math"
	"math/rand/v2"
	"testing"
)

func approxEqual(t *testing.T, got, want, tol float32) {
	t.Helper()
	if d := float32(math.Abs(float64(got - want))); d > tol {
		t.Errorf("got %v, want %v (tolerance %v, diff %v)", got, want, tol, d)
	}
}

// Concrete scenario 1: log_add(lin_to_log(1.0), lin_to_log(1.0)) ~= 1.0.
func TestLogAddScenario_OneTimesOne(t *testing.T) {
	x := LinToLog(1.0)
	y := LinToLog(1.0)
	got := LogToLinAccurate(LogAdd(x, y))
	approxEqual(t, got, 1.0, 0.1)
}

// Concrete scenario 2: log_add(lin_to_log(2.0), lin_to_log(0.5)) ~= 1.0.
func TestLogAddScenario_TwoTimesHalf(t *testing.T) {
	x := LinToLog(2.0)
	y := LinToLog(0.5)
	got := LogToLinAccurate(LogAdd(x, y))
	approxEqual(t, got, 1.0, 0.1)
}

// Concrete scenario 3: log_add(lin_to_log(-1.5), lin_to_log(2.0)) ~= -3.0,
// sign bit set.
func TestLogAddScenario_NegativeProduct(t *testing.T) {
	x := LinToLog(-1.5)
	y := LinToLog(2.0)
	sum := LogAdd(x, y)
	if sum.Sign() != 1 {
		t.Errorf("expected sign bit set for negative product, got sign=%d", sum.Sign())
	}
	got := LogToLinAccurate(sum)
	approxEqual(t, got, -3.0, 0.3)
}

// Concrete scenario 7: saturation at the Posit-(8,0) range boundary.
func TestLinToLogSaturation(t *testing.T) {
	upper := LinToLog(1e20)
	if want := twoToK(6); upper != want {
		t.Errorf("upper saturation: got %#x, want %#x (2^6)", upper.Bits(), want.Bits())
	}

	lower := LinToLog(1e-20)
	if lower != JARZero {
		t.Errorf("lower saturation: got %#x, want JARZero %#x", lower.Bits(), JARZero.Bits())
	}
}

// Idempotence of canonicalization (spec.md Testable Properties #1):
// lin_to_log(log_to_lin_accurate(lin_to_log(x))) == lin_to_log(x)
// for x with magnitude in Posit-(8,0) range.
func TestCanonicalizationIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		x := float32(rng.Float64()*4 - 2) // [-2, 2]
		if x == 0 {
			continue
		}
		first := LinToLog(x)
		roundTripped := LinToLog(LogToLinAccurate(first))
		if first != roundTripped {
			t.Errorf("x=%v: lin_to_log(x)=%#x, after round trip=%#x", x, first.Bits(), roundTripped.Bits())
		}
	}
}

// Log round trip (spec.md Testable Properties #2):
// lin_to_log(log_to_lin(y)) == y for y already canonical LogPS80, with
// log_to_lin being the accurate converter (LogToLinAccurate).
func TestLogRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		x := float32(rng.Float64()*4 - 2)
		if x == 0 {
			continue
		}
		y := LinToLog(x)
		got := LinToLog(LogToLinAccurate(y))
		if got != y {
			t.Errorf("x=%v: y=%#x, round trip=%#x", x, y.Bits(), got.Bits())
		}
	}
}

// Additive identity: JARZero's linear contribution is negligible.
func TestLogAddIdentity(t *testing.T) {
	y := LinToLog(1.5)
	sum := LogAdd(JARZero, y)
	lin := LogToLin(sum)
	if mag := math.Abs(float64(lin.Float())); mag > math.Pow(2, -60) {
		t.Errorf("JARZero contribution too large: %v", lin.Float())
	}
}
