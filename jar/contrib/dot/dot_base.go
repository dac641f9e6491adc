// Package dot computes JAR dot products: inputs and the result are
// LogPS80, but products are accumulated in the linear domain, matching
// jar_dotprod's "additions of LogPS80 quantities and accumulation of
// LinFP32 numbers are exact; conversion between the two domains is not
// necessarily exact" contract.
package dot

import "github.com/jarsim/jarsim/jar"

// Dot computes the LogPS80 dot product of x and y: Σ x[i]*y[i], computed
// by running a linear-domain accumulator through jar.FMA (16 lanes at a
// time via jar.FMAVec16 where possible) and converting the accumulator
// back to LogPS80 once at the end.
//
// x and y must have equal length. Returns jar.JARZero for length 0.
func Dot(x, y []jar.BitCell) jar.BitCell {
	if len(x) != len(y) {
		panic("dot: x and y have different lengths")
	}
	if len(x) == 0 {
		return jar.JARZero
	}

	acc := dotImpl(x, y)
	return jar.LinToLog(acc.Float())
}
