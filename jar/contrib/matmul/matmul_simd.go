package matmul

import "github.com/jarsim/jarsim/jar"

// panelWidth is the number of N columns accumulated together per M chunk,
// mirroring jar_matmul_avx512's 8-column register-blocked panel (vc0..vc7).
const panelWidth = 8

// matmulImpl tiles M into jar.VectorWidth-row chunks and, within each row
// chunk, N into panelWidth-column panels, holding one running vector
// accumulator per panel column across the full K loop — the same
// register-blocking jar_matmul_avx512 uses to avoid reloading C on every
// k. Leftover N columns (N % panelWidth) get a single accumulator each;
// leftover M rows (M % VectorWidth) fall back to matmulScalar.
func matmulImpl(m, n, k int, a, b, c []jar.BitCell) {
	mFull := (m / jar.VectorWidth) * jar.VectorWidth
	nFull := (n / panelWidth) * panelWidth

	var bBroadcast [jar.VectorWidth]jar.BitCell
	panel := make([][]jar.BitCell, panelWidth)
	for j := range panel {
		panel[j] = make([]jar.BitCell, jar.VectorWidth)
	}

	for mStart := 0; mStart < mFull; mStart += jar.VectorWidth {
		for nStart := 0; nStart < nFull; nStart += panelWidth {
			for j := 0; j < panelWidth; j++ {
				for i := range panel[j] {
					panel[j][i] = jar.JARZero
				}
			}
			for kk := 0; kk < k; kk++ {
				aRow := a[kk*m+mStart : kk*m+mStart+jar.VectorWidth]
				for j := 0; j < panelWidth; j++ {
					bVal := b[(nStart+j)*k+kk]
					for i := range bBroadcast {
						bBroadcast[i] = bVal
					}
					lanes := jar.FMAVec16(aRow, bBroadcast[:], panel[j])
					panel[j] = lanes[:]
				}
			}
			for j := 0; j < panelWidth; j++ {
				for i := 0; i < jar.VectorWidth; i++ {
					c[(nStart+j)*m+mStart+i] = jar.LinToLog(panel[j][i].Float())
				}
			}
		}

		// Leftover N columns for this row chunk: one accumulator each.
		for nn := nFull; nn < n; nn++ {
			acc := make([]jar.BitCell, jar.VectorWidth)
			for i := range acc {
				acc[i] = jar.JARZero
			}
			for kk := 0; kk < k; kk++ {
				aRow := a[kk*m+mStart : kk*m+mStart+jar.VectorWidth]
				bVal := b[nn*k+kk]
				for i := range bBroadcast {
					bBroadcast[i] = bVal
				}
				lanes := jar.FMAVec16(aRow, bBroadcast[:], acc)
				acc = lanes[:]
			}
			for i := 0; i < jar.VectorWidth; i++ {
				c[nn*m+mStart+i] = jar.LinToLog(acc[i].Float())
			}
		}
	}

	if mFull < m {
		tailM := m - mFull
		aTail := make([]jar.BitCell, tailM*k)
		for kk := 0; kk < k; kk++ {
			copy(aTail[kk*tailM:kk*tailM+tailM], a[kk*m+mFull:kk*m+m])
		}
		cTail := make([]jar.BitCell, tailM*n)
		matmulScalar(tailM, n, k, aTail, b, cTail)
		for nn := 0; nn < n; nn++ {
			copy(c[nn*m+mFull:nn*m+m], cTail[nn*tailM:nn*tailM+tailM])
		}
	}
}
