// Command gentables regenerates the lookup tables jar/tables.go hard-codes:
// exp2_tbl, log2_tbl and Big_tbl. It exists for reproducibility — to show
// the literal table values in jar/tables.go are derived, not arbitrary —
// not as part of the runtime numeric core; nothing in package jar calls
// this tool, mirroring jar_utils.c's gen_exp2_tbl/gen_log2_tbl/gen_Big_tbl
// being offline table generators separate from jar_sim.c's hot path.
package main

import (
	"fmt"
	"math"
)

const (
	exp2IndBits  = 6
	exp2FracBits = 5
	log2IndBits  = 5
	log2FracBits = 7
	fracMask     = 0x007FFFFF
)

// twoToK mirrors jar_utils.c's two_2_k: the exact binary32 bit pattern
// for 2^k, built directly from the IEEE-754 exponent field.
func twoToK(k int) uint32 {
	const one uint32 = 0x3F800000
	if k >= 0 {
		return one + uint32(k)<<23
	}
	return one - uint32(-k)<<23
}

// roundToLFrac mirrors jar_utils.c's rnd_2_L_frac, rounding x to L
// fraction bits via the "(x+Big)-Big" idiom.
func roundToLFrac(x float32, l int) uint32 {
	bits := math.Float32bits(x)
	signAndExp := math.Float32frombits(bits & 0xFF800000)
	big := math.Float32frombits(twoToK(23-l)) * signAndExp
	xf := x
	xf += big
	xf -= big
	return math.Float32bits(xf)
}

func main() {
	printExp2Tbl()
	fmt.Println()
	printLog2Tbl()
	fmt.Println()
	printBigTbl()
	fmt.Println()
	printMaskTbl()
}

func printExp2Tbl() {
	n := 1 << exp2IndBits
	delta := math.Float32frombits(twoToK(-exp2IndBits))
	fmt.Printf("var exp2Tbl = [%d]BitCell{\n", n)
	for i := 0; i < n; i += 4 {
		fmt.Print("\t")
		for j := 0; j < 4; j++ {
			x := float32(i+j) * delta
			y := float32(math.Exp2(float64(x)))
			bits := roundToLFrac(y, exp2FracBits) & fracMask
			fmt.Printf("0x%08X, ", bits)
		}
		fmt.Println()
	}
	fmt.Println("}")
}

func printLog2Tbl() {
	n := 1 << log2IndBits
	delta := math.Float32frombits(twoToK(-log2IndBits))
	fmt.Printf("var log2Tbl = [%d]BitCell{\n", n)
	for i := 0; i < n; i += 4 {
		fmt.Print("\t")
		for j := 0; j < 4; j++ {
			x := 1.0 + float32(i+j)*delta
			y := 1.0 + float32(math.Log2(float64(x)))
			bits := roundToLFrac(y, log2FracBits) & fracMask
			fmt.Printf("0x%08X, ", bits)
		}
		fmt.Println()
	}
	fmt.Println("}")
}

func printBigTbl() {
	fmt.Printf("var bigTbl = [256]BitCell{\n")
	for i := 0; i < 256; i += 4 {
		fmt.Print("\t")
		for j := 0; j < 4; j++ {
			biasedExpo := i + j
			expo := biasedExpo - 127
			var bits uint32
			switch {
			case expo >= 6:
				bits = twoToK(6)
			case expo >= 0 && expo <= 5:
				bits = twoToK((23 + expo) - (5 - expo))
			case expo >= -6 && expo <= -1:
				bits = twoToK((23 + expo) - (6 + expo))
			case expo >= -28 && expo <= -7:
				bits = twoToK(-6)
			default:
				bits = 0x20000000 // JARZero sentinel
			}
			fmt.Printf("0x%08X, ", bits)
		}
		fmt.Println()
	}
	fmt.Println("}")
}

// printMaskTbl reproduces jar_utils.c's gen_Mask_tbl. jar/round.go's
// roundToPS80 computes this mask inline with a branch instead of a table
// lookup (same condition, no separate table to keep in sync), so this
// output exists only for parity with the reference's table set.
func printMaskTbl() {
	fmt.Printf("var maskTbl = [256]uint32{\n")
	for i := 0; i < 256; i += 4 {
		fmt.Print("\t")
		for j := 0; j < 4; j++ {
			biasedExpo := i + j
			expo := biasedExpo - 127
			var bits uint32
			if expo <= -7 || expo >= 6 {
				bits = 0x00000000
			} else {
				bits = 0x7FFFFFFF
			}
			fmt.Printf("0x%08X, ", bits)
		}
		fmt.Println()
	}
	fmt.Println("}")
}
