package main

import (
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jarsim/jarsim/jar"
	"github.com/jarsim/jarsim/jar/contrib/dot"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <n>",
		Short: "Inner product using LogPS80, compared against an fp32 reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			runDot(n)
			return nil
		},
	}
}

func runDot(n int) {
	rng := rand.New(rand.NewPCG(3, 3))
	a, fa := initJARUpdateFloat(rng, n)
	b, fb := initJARUpdateFloat(rng, n)

	jarResult := jar.LogToLinAccurate(dot.Dot(a, b))
	fpResult := floatDotProd(fa, fb)

	printer.Println("Inner product: JAR vs. fp32 reference")
	printer.Printf("  LogPS80 dot product (accurate LinFP32)     = %10.6e\n", jarResult)
	printer.Printf("  fp32 dot product                           = %10.6e\n", fpResult)
	printer.Printf("  absolute difference                        = %10.6e\n", jarResult-fpResult)
}
