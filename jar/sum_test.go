package jar

import "testing"

// Sign algebra (spec.md Testable Properties): for LogPS80 operands with
// sign bits s_x, s_y, the sign bit of log_add(x,y) is s_x XOR s_y.
func TestLogAddSignAlgebra(t *testing.T) {
	cases := []struct {
		sx, sy, want uint32
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	mag := LinToLog(1.25).Bits() & clearSign
	for _, c := range cases {
		x := FromBits(mag | (c.sx << 31))
		y := FromBits(mag | (c.sy << 31))
		got := LogAdd(x, y).Sign()
		if got != c.want {
			t.Errorf("sign(%d) xor sign(%d): got %d, want %d", c.sx, c.sy, got, c.want)
		}
	}
}

// Exponent algebra: the unsigned sum x+y+0x40800000 carries the
// fixed-point LogPS80 exponent/fraction field forward exactly as
// unsigned-integer addition, which is what makes log-domain addition a
// fixed-point integer add plus a bias correction.
func TestLogAddMagnitudeIsIntegerSum(t *testing.T) {
	x := FromBits(0x10000000)
	y := FromBits(0x08000000)
	got := LogAdd(x, y)
	want := (x.Bits() + y.Bits() + 0x40800000) & clearSign
	if got.Bits()&clearSign != want {
		t.Errorf("got magnitude %#x, want %#x", got.Bits()&clearSign, want)
	}
}

func TestLogAddZeroIsNearIdentity(t *testing.T) {
	y := LinToLog(-0.75)
	sum := LogAdd(JARZero, y)
	if sum.Sign() != y.Sign() {
		t.Errorf("sign changed across identity add: got %d, want %d", sum.Sign(), y.Sign())
	}
}
