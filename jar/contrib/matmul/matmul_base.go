// Package matmul computes JAR matrix-matrix products. All three matrices
// are column-major, matching jar_matmul's "All matrices are in col-major
// format" contract: A is M x K (a[k*M+m]), B is K x N (b[n*K+k]), and C
// is M x N (c[n*M+m]).
package matmul

import "github.com/jarsim/jarsim/jar"

// MatMul computes C = A * B using the scalar reference algorithm (direct
// translation of jar_matmul), accumulating products in the linear domain
// and converting C back to LogPS80 once accumulation over K completes.
//
// Panics if a is shorter than M*K, b shorter than K*N, or c shorter than
// M*N.
func MatMul(m, n, k int, a, b, c []jar.BitCell) {
	checkDims(m, n, k, a, b, c)
	matmulScalar(m, n, k, a, b, c)
}

// MatMulVector computes the same product as [MatMul] but tiles M into
// jar.VectorWidth-row chunks and N into panelWidth-column panels via
// jar.FMAVec16, matching jar_matmul_avx512's register-blocked panels.
func MatMulVector(m, n, k int, a, b, c []jar.BitCell) {
	checkDims(m, n, k, a, b, c)
	matmulImpl(m, n, k, a, b, c)
}

func checkDims(m, n, k int, a, b, c []jar.BitCell) {
	if m < 0 || n < 0 || k < 0 {
		panic("matmul: negative dimension")
	}
	if len(a) < m*k {
		panic("matmul: A slice too small")
	}
	if len(b) < k*n {
		panic("matmul: B slice too small")
	}
	if len(c) < m*n {
		panic("matmul: C slice too small")
	}
}
