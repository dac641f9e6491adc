package matvec

import "github.com/jarsim/jarsim/jar"

// matvecScalar is the direct translation of jar_matvecmul: K outer, M
// inner, one jar.FMA per (m, k) pair.
func matvecScalar(m, k int, a, b, c []jar.BitCell) {
	acc := make([]jar.BitCell, m)
	for i := range acc {
		acc[i] = jar.JARZero
	}

	for kk := 0; kk < k; kk++ {
		for mm := 0; mm < m; mm++ {
			acc[mm] = jar.FMA(a[kk*m+mm], b[kk], acc[mm])
		}
	}

	for mm := 0; mm < m; mm++ {
		c[mm] = jar.LinToLog(acc[mm].Float())
	}
}
