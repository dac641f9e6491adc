package main

import (
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jarsim/jarsim/jar"
	"github.com/jarsim/jarsim/jar/contrib/matmul"
)

func newMatMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matmul <M> <N> <K>",
		Short: "Matrix-matrix multiplication using LogPS80",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			runMatMul(m, n, k)
			return nil
		},
	}
}

func runMatMul(m, n, k int) {
	rng := rand.New(rand.NewPCG(5, 5))
	a, fa := initJARUpdateFloat(rng, m*k)
	b, fb := initJARUpdateFloat(rng, k*n)

	c := make([]jar.BitCell, m*n)
	matmul.MatMulVector(m, n, k, a, b, c)

	fc := make([]float32, m*n)
	for nn := 0; nn < n; nn++ {
		for mm := 0; mm < m; mm++ {
			var sum float32
			for kk := 0; kk < k; kk++ {
				sum += fa[kk*m+mm] * fb[nn*k+kk]
			}
			fc[nn*m+mm] = sum
		}
	}

	printer.Println("Matrix-matrix product: JAR vs. fp32 reference")
	var maxAbsErr float32
	for i := range c {
		jarVal := jar.LogToLinAccurate(c[i])
		err := jarVal - fc[i]
		if err < 0 {
			err = -err
		}
		if err > maxAbsErr {
			maxAbsErr = err
		}
	}
	printer.Printf("max |jar - fp32| over %d entries: %10.6e\n", len(c), maxAbsErr)
}
