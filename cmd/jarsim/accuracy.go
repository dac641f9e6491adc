package main

import (
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jarsim/jarsim/jar"
)

func newAccuracyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accuracy <n>",
		Short: "Examine the accuracy of LogPS80 -> LinFP32",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			runAccuracy(n)
			return nil
		},
	}
}

func runAccuracy(n int) {
	rng := rand.New(rand.NewPCG(2, 2))
	a, f := initJARUpdateFloat(rng, n)

	printer.Println("Conversion accuracy: LogPS80 -> LinFP32")
	printer.Println("  The error here is characteristic of LogPS80's table-based exp2: the table has")
	printer.Println("  only 5 fraction bits, so the fast conversion is not exact. The accurate column")
	printer.Println("  uses a full-precision exp2 for comparison.")
	var maxAbsErr float32
	for i, x := range a {
		fast := jar.LogToLin(x).Float()
		accurate := f[i]
		err := fast - accurate
		if err < 0 {
			err = -err
		}
		if err > maxAbsErr {
			maxAbsErr = err
		}
		printer.Printf("  [%d] fast=%10.6e accurate=%10.6e\n", i, fast, accurate)
	}
	printer.Printf("max |fast - accurate| over %d samples: %10.6e\n", n, maxAbsErr)
}
