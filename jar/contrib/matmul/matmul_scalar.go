package matmul

import "github.com/jarsim/jarsim/jar"

// matmulScalar is the direct translation of jar_matmul's reference loop
// nest: K outermost, then N, then M, one jar.FMA per (m, n, k) triple.
func matmulScalar(m, n, k int, a, b, c []jar.BitCell) {
	acc := make([]jar.BitCell, m*n)
	for i := range acc {
		acc[i] = jar.JARZero
	}

	for kk := 0; kk < k; kk++ {
		for nn := 0; nn < n; nn++ {
			bVal := b[nn*k+kk]
			for mm := 0; mm < m; mm++ {
				acc[nn*m+mm] = jar.FMA(a[kk*m+mm], bVal, acc[nn*m+mm])
			}
		}
	}

	for i := range acc {
		c[i] = jar.LinToLog(acc[i].Float())
	}
}
