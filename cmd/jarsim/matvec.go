package main

import (
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jarsim/jarsim/jar"
	"github.com/jarsim/jarsim/jar/contrib/matvec"
)

func newMatVecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matvec <M> <K>",
		Short: "Matrix-vector multiplication using LogPS80",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			runMatVec(m, k)
			return nil
		},
	}
}

func runMatVec(m, k int) {
	rng := rand.New(rand.NewPCG(4, 4))
	a, fa := initJARUpdateFloat(rng, m*k)
	b, fb := initJARUpdateFloat(rng, k)

	c := make([]jar.BitCell, m)
	matvec.MatVecVector(m, k, a, b, c)

	fc := make([]float32, m)
	for mm := 0; mm < m; mm++ {
		var sum float32
		for kk := 0; kk < k; kk++ {
			sum += fa[kk*m+mm] * fb[kk]
		}
		fc[mm] = sum
	}

	printer.Println("Matrix-vector product: JAR vs. fp32 reference")
	var maxAbsErr float32
	for mm := 0; mm < m; mm++ {
		jarVal := jar.LogToLinAccurate(c[mm])
		err := jarVal - fc[mm]
		if err < 0 {
			err = -err
		}
		if err > maxAbsErr {
			maxAbsErr = err
		}
		printer.Printf("  c[%d] jar=%10.6e fp32=%10.6e\n", mm, jarVal, fc[mm])
	}
	printer.Printf("max |jar - fp32| over %d rows: %10.6e\n", m, maxAbsErr)
}
