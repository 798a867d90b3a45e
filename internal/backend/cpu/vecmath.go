package cpu

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"
)

// Vectorized elementwise routines, MKL VML style: Vs* operates on
// float32, Vd* on float64. Inputs and outputs are distinct or identical
// full buffers of length >= n; partial overlap is not supported.

// VsAdd computes y = a + b.
func VsAdd(n int, a, b, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = a[i] + b[i]
	}
}

// VdAdd computes y = a + b.
func VdAdd(n int, a, b, y []float64) {
	floats.AddTo(y[:n], a[:n], b[:n])
}

// VsSub computes y = a - b.
func VsSub(n int, a, b, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = a[i] - b[i]
	}
}

// VdSub computes y = a - b.
func VdSub(n int, a, b, y []float64) {
	floats.SubTo(y[:n], a[:n], b[:n])
}

// VsMul computes y = a * b.
func VsMul(n int, a, b, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = a[i] * b[i]
	}
}

// VdMul computes y = a * b.
func VdMul(n int, a, b, y []float64) {
	floats.MulTo(y[:n], a[:n], b[:n])
}

// VsDiv computes y = a / b. Division by zero follows IEEE semantics.
func VsDiv(n int, a, b, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = a[i] / b[i]
	}
}

// VdDiv computes y = a / b.
func VdDiv(n int, a, b, y []float64) {
	floats.DivTo(y[:n], a[:n], b[:n])
}

// VsPowx computes y = a^b for a scalar exponent b.
func VsPowx(n int, a []float32, b float32, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = math32.Pow(a[i], b)
	}
}

// VdPowx computes y = a^b for a scalar exponent b.
func VdPowx(n int, a []float64, b float64, y []float64) {
	for i := 0; i < n; i++ {
		y[i] = math.Pow(a[i], b)
	}
}

// VsSqr computes y = a * a.
func VsSqr(n int, a, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = a[i] * a[i]
	}
}

// VdSqr computes y = a * a.
func VdSqr(n int, a, y []float64) {
	floats.MulTo(y[:n], a[:n], a[:n])
}

// VsExp computes y = exp(a).
func VsExp(n int, a, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = math32.Exp(a[i])
	}
}

// VdExp computes y = exp(a).
func VdExp(n int, a, y []float64) {
	for i := 0; i < n; i++ {
		y[i] = math.Exp(a[i])
	}
}

// VsAbs computes y = |a|.
func VsAbs(n int, a, y []float32) {
	for i := 0; i < n; i++ {
		y[i] = math32.Abs(a[i])
	}
}

// VdAbs computes y = |a|.
func VdAbs(n int, a, y []float64) {
	for i := 0; i < n; i++ {
		y[i] = math.Abs(a[i])
	}
}
