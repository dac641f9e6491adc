package main

import (
	"math/rand/v2"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jarsim/jarsim/jar"
)

const (
	valLo = -2.0
	valHi = 2.0
)

var printer = message.NewPrinter(language.English)

// initFloat fills f with size uniform samples in [valLo, valHi], mirroring
// demo.c's init_float.
func initFloat(rng *rand.Rand, f []float32) {
	width := float32(valHi - valLo)
	for i := range f {
		f[i] = float32(valLo) + width*float32(rng.Float64())
	}
}

// initJARUpdateFloat produces a LogPS80 vector j alongside a float32
// vector f holding the same numerical values after round-tripping through
// LogPS80, mirroring demo.c's init_JAR_update_float: the pair is used so
// JAR and fp32 computations start from numerically identical inputs.
func initJARUpdateFloat(rng *rand.Rand, size int) (j []jar.BitCell, f []float32) {
	f = make([]float32, size)
	initFloat(rng, f)
	j = make([]jar.BitCell, size)
	for i := range f {
		j[i] = jar.LinToLog(f[i])
		f[i] = jar.LogToLinAccurate(j[i])
	}
	return j, f
}

func floatDotProd(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
