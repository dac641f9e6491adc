package dot

import "github.com/jarsim/jarsim/jar"

// dotImpl accumulates 16 elements at a time with jar.FMAVec16, then folds
// the 16 partial accumulators together and finishes any remainder with
// scalar jar.FMA calls. This is the portable equivalent of jar_dotprod's AVX-512
// variant, which processes M in chunks of 16 lanes with one running
// vector accumulator.
func dotImpl(x, y []jar.BitCell) jar.BitCell {
	n := len(x)
	var lanes [jar.VectorWidth]jar.BitCell
	for i := range lanes {
		lanes[i] = jar.JARZero
	}

	i := 0
	for ; i+jar.VectorWidth <= n; i += jar.VectorWidth {
		partial := jar.FMAVec16(x[i:i+jar.VectorWidth], y[i:i+jar.VectorWidth], lanes[:])
		lanes = partial
	}

	acc := jar.JARZero
	for _, l := range lanes {
		acc = jar.FromFloat32(acc.Float() + l.Float())
	}

	for ; i < n; i++ {
		acc = jar.FMA(x[i], y[i], acc)
	}
	return acc
}
