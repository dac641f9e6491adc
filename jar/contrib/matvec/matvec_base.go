// Package matvec computes JAR matrix-vector products. The matrix is
// column-major, matching jar_matvecmul's "Matrix A is in col-major
// format" contract: A's element (m, k) lives at a[k*M+m].
package matvec

import "github.com/jarsim/jarsim/jar"

// MatVec computes c = A * b, where A is M x K column-major, b has length
// K, and c has length M, using the scalar reference algorithm (direct
// translation of jar_matvecmul). Accumulation happens in the linear
// domain; c is converted back to LogPS80 once accumulation over all of K
// completes.
//
// Panics if a is shorter than M*K, b shorter than K, or c shorter than M.
func MatVec(m, k int, a, b, c []jar.BitCell) {
	checkDims(m, k, a, b, c)
	matvecScalar(m, k, a, b, c)
}

// MatVecVector computes the same product as [MatVec] but processes rows
// in jar.VectorWidth-lane chunks via jar.FMAVec16, matching
// jar_matvecmul_avx512's chunked-row accumulator strategy.
func MatVecVector(m, k int, a, b, c []jar.BitCell) {
	checkDims(m, k, a, b, c)
	matvecImpl(m, k, a, b, c)
}

func checkDims(m, k int, a, b, c []jar.BitCell) {
	if m < 0 || k < 0 {
		panic("matvec: negative dimension")
	}
	if len(a) < m*k {
		panic("matvec: matrix slice too small")
	}
	if len(b) < k {
		panic("matvec: vector slice too small")
	}
	if len(c) < m {
		panic("matvec: result slice too small")
	}
}
