package matvec

import "github.com/jarsim/jarsim/jar"

// matvecImpl vectorizes over M: rows are processed in chunks of
// jar.VectorWidth, with one running vector accumulator held across the
// full K loop per chunk, mirroring jar_matvecmul_avx512's
//
//	for (m=0; m<(M/16)*16; m+=16) {
//	  vc = load(c+m)
//	  for (k=0; k<K; ++k) vc = jar_fma_avx512(load(A+k*M+m), broadcast(b[k]), vc)
//	  store(c+m, vc)
//	}
//
// Rows beyond the last full chunk fall back to matvecScalar.
func matvecImpl(m, k int, a, b, c []jar.BitCell) {
	full := (m / jar.VectorWidth) * jar.VectorWidth

	var bBroadcast [jar.VectorWidth]jar.BitCell
	acc := make([]jar.BitCell, jar.VectorWidth)

	for mStart := 0; mStart < full; mStart += jar.VectorWidth {
		for i := range acc {
			acc[i] = jar.JARZero
		}
		for kk := 0; kk < k; kk++ {
			rowChunk := a[kk*m+mStart : kk*m+mStart+jar.VectorWidth]
			for i := range bBroadcast {
				bBroadcast[i] = b[kk]
			}
			lanes := jar.FMAVec16(rowChunk, bBroadcast[:], acc)
			acc = lanes[:]
		}
		for i := 0; i < jar.VectorWidth; i++ {
			c[mStart+i] = jar.LinToLog(acc[i].Float())
		}
	}

	if full < m {
		tailAcc := make([]jar.BitCell, m-full)
		for i := range tailAcc {
			tailAcc[i] = jar.JARZero
		}
		for kk := 0; kk < k; kk++ {
			for mm := full; mm < m; mm++ {
				tailAcc[mm-full] = jar.FMA(a[kk*m+mm], b[kk], tailAcc[mm-full])
			}
		}
		for mm := full; mm < m; mm++ {
			c[mm] = jar.LinToLog(tailAcc[mm-full].Float())
		}
	}
}
