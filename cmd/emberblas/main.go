// Package main provides the Ember numeric primitives CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ember-ml/ember/device"
	"github.com/ember-ml/ember/half"
	"github.com/ember-ml/ember/mathx"
	"github.com/ember-ml/ember/rng"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Ember numeric primitives %s\n", version)
			return
		case "info":
			printInfo()
			return
		case "demo":
			runDemo()
			return
		}
	}

	fmt.Println("Ember - dtype-polymorphic numeric primitives for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show available execution modes")
	fmt.Println("  demo       Run a small mixed-precision demo")
}

func printInfo() {
	fmt.Println("Execution modes:")
	fmt.Printf("  %-12s always available\n", device.Host.String())
	if device.WebGPUAvailable() {
		fmt.Printf("  %-12s WebGPU adapter present\n", device.Accelerated.String())
	} else {
		fmt.Printf("  %-12s no accelerator on this system\n", device.Accelerated.String())
	}
	fmt.Println()
	fmt.Println("Storage/compute pairings:")
	fmt.Println("  float32 / float32   native")
	fmt.Println("  float64 / float64   native")
	fmt.Println("  half    / float32   emulated through float32")
}

func runDemo() {
	const n = 8
	src := rng.New(1)

	a32 := make([]float32, n*n)
	b32 := make([]float32, n*n)
	rng.Uniform[float32, float32](src, n*n, -1, 1, a32)
	rng.Uniform[float32, float32](src, n*n, -1, 1, b32)

	// Quantize the operands to half and run the same product on both
	// paths to show the precision gap.
	ah := make([]half.Float16, n*n)
	bh := make([]half.Float16, n*n)
	mathx.Convert(n*n, a32, ah)
	mathx.Convert(n*n, b32, bh)
	mathx.Convert(n*n, ah, a32)
	mathx.Convert(n*n, bh, b32)

	c32 := make([]float32, n*n)
	ch := make([]half.Float16, n*n)
	mathx.Gemm[float32, float32](false, false, n, n, n, 1, a32, b32, 0, c32)
	mathx.Gemm[half.Float16, float32](false, false, n, n, n, 1, ah, bh, 0, ch)

	diff := make([]float32, n*n)
	wide := make([]float32, n*n)
	mathx.Convert(n*n, ch, wide)
	mathx.Sub[float32, float32](n*n, c32, wide, diff)
	mathx.Abs[float32, float32](n*n, diff, diff)

	fmt.Printf("%dx%d gemm on quantized inputs\n", n, n)
	fmt.Printf("  float32 result magnitude: %g\n", mathx.Asum[float32, float32](n*n, c32))
	fmt.Printf("  half result magnitude:    %g\n", mathx.Asum[float32, float32](n*n, wide))
	fmt.Printf("  total absolute deviation: %g\n", mathx.Asum[float32, float32](n*n, diff))
}
