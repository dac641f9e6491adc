package dot

import "github.com/jarsim/jarsim/jar"

// dotScalar accumulates x[i]*y[i] one element at a time, mirroring
// jar_dotprod's `#if 1` branch: z.I = JAR_ZERO; for i: jar_fma(x+i, y+i, &z).
func dotScalar(x, y []jar.BitCell) jar.BitCell {
	acc := jar.JARZero
	for i := range x {
		acc = jar.FMA(x[i], y[i], acc)
	}
	return acc
}
