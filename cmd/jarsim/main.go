// Command jarsim is a demonstration driver for the jar package: it
// exercises round-trip conversion, conversion accuracy, and the three
// linear-algebra kernels against randomly initialized data and reports
// JAR's result alongside an fp32 reference, the same comparisons
// demo.c's test_rt/test_LogPS80_to_LinFP32/test_dotprod/test_matvecmul/
// test_matmul performed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jarsim",
		Short: "Demonstration driver for the JAR LogPS80 numeric core",
		Long: `jarsim exercises the LogPS80 logarithmic number system against
randomly initialized data in the [-2, 2] range, reporting JAR's result
alongside an fp32 reference computation.`,
	}

	root.AddCommand(
		newRoundtripCmd(),
		newAccuracyCmd(),
		newDotCmd(),
		newMatVecCmd(),
		newMatMulCmd(),
	)
	return root
}
