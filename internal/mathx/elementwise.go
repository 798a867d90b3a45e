package mathx

import (
	"github.com/chewxy/math32"
	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/half"
)

// Set fills the first n elements of y with alpha. A constant-zero fill
// goes through the bulk zero path; the observable result matches the
// per-element store.
func Set[D Element, M Compute](n int, alpha M, y []D) {
	CheckPair[D, M]("set")
	checkCount("set", n)
	if alpha == 0 {
		clear(y[:n])
		return
	}
	v := FromCompute[D](alpha)
	for i := 0; i < n; i++ {
		y[i] = v
	}
}

// SetInt32 fills the first n elements of y with alpha.
func SetInt32(n int, alpha int32, y []int32) {
	checkCount("set", n)
	if alpha == 0 {
		clear(y[:n])
		return
	}
	for i := 0; i < n; i++ {
		y[i] = alpha
	}
}

// AddScalar computes y[i] += alpha. The scalar is a compute-type value;
// it reaches storage through a single narrowing per element.
func AddScalar[D Element, M Compute](n int, alpha M, y []D) {
	CheckPair[D, M]("add_scalar")
	checkCount("add_scalar", n)
	switch y := any(y).(type) {
	case []float32:
		a := float32(alpha)
		for i := 0; i < n; i++ {
			y[i] += a
		}
	case []float64:
		a := float64(alpha)
		for i := 0; i < n; i++ {
			y[i] += a
		}
	case []half.Float16:
		a := float32(alpha)
		for i := 0; i < n; i++ {
			y[i] = half.FromFloat32(y[i].Float32() + a)
		}
	}
}

// Axpy computes y = alpha*x + y.
func Axpy[D Element, M Compute](n int, alpha M, x, y []D) {
	CheckPair[D, M]("axpy")
	checkCount("axpy", n)
	switch x := any(x).(type) {
	case []float32:
		cpu.Saxpy(n, float32(alpha), x, 1, any(y).([]float32), 1)
	case []float64:
		cpu.Daxpy(n, float64(alpha), x, 1, any(y).([]float64), 1)
	case []half.Float16:
		axpyHalf(n, float32(alpha), x, any(y).([]half.Float16))
	}
}

func axpyHalf(n int, alpha float32, x, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(alpha*x[i].Float32() + y[i].Float32())
	}
}

// Axpby computes y = alpha*x + beta*y.
func Axpby[D Element, M Compute](n int, alpha M, x []D, beta M, y []D) {
	CheckPair[D, M]("axpby")
	checkCount("axpby", n)
	switch x := any(x).(type) {
	case []float32:
		cpu.Saxpby(n, float32(alpha), x, 1, float32(beta), any(y).([]float32), 1)
	case []float64:
		cpu.Daxpby(n, float64(alpha), x, 1, float64(beta), any(y).([]float64), 1)
	case []half.Float16:
		axpbyHalf(n, float32(alpha), x, float32(beta), any(y).([]half.Float16))
	}
}

func axpbyHalf(n int, alpha float32, x []half.Float16, beta float32, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(alpha*x[i].Float32() + beta*y[i].Float32())
	}
}

// Add computes y = a + b elementwise.
func Add[D Element, M Compute](n int, a, b, y []D) {
	CheckPair[D, M]("add")
	checkCount("add", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsAdd(n, a, any(b).([]float32), any(y).([]float32))
	case []float64:
		cpu.VdAdd(n, a, any(b).([]float64), any(y).([]float64))
	case []half.Float16:
		addHalf(n, a, any(b).([]half.Float16), any(y).([]half.Float16))
	}
}

func addHalf(n int, a, b, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(a[i].Float32() + b[i].Float32())
	}
}

// Sub computes y = a - b elementwise.
func Sub[D Element, M Compute](n int, a, b, y []D) {
	CheckPair[D, M]("sub")
	checkCount("sub", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsSub(n, a, any(b).([]float32), any(y).([]float32))
	case []float64:
		cpu.VdSub(n, a, any(b).([]float64), any(y).([]float64))
	case []half.Float16:
		subHalf(n, a, any(b).([]half.Float16), any(y).([]half.Float16))
	}
}

func subHalf(n int, a, b, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(a[i].Float32() - b[i].Float32())
	}
}

// Mul computes y = a * b elementwise.
func Mul[D Element, M Compute](n int, a, b, y []D) {
	CheckPair[D, M]("mul")
	checkCount("mul", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsMul(n, a, any(b).([]float32), any(y).([]float32))
	case []float64:
		cpu.VdMul(n, a, any(b).([]float64), any(y).([]float64))
	case []half.Float16:
		mulHalf(n, a, any(b).([]half.Float16), any(y).([]half.Float16))
	}
}

func mulHalf(n int, a, b, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(a[i].Float32() * b[i].Float32())
	}
}

// Div computes y = a / b elementwise. Division by zero follows IEEE
// semantics and yields Inf or NaN, never an error.
func Div[D Element, M Compute](n int, a, b, y []D) {
	CheckPair[D, M]("div")
	checkCount("div", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsDiv(n, a, any(b).([]float32), any(y).([]float32))
	case []float64:
		cpu.VdDiv(n, a, any(b).([]float64), any(y).([]float64))
	case []half.Float16:
		divHalf(n, a, any(b).([]half.Float16), any(y).([]half.Float16))
	}
}

func divHalf(n int, a, b, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(a[i].Float32() / b[i].Float32())
	}
}

// Powx computes y = a^b elementwise for a compute-type scalar exponent.
// Domain errors follow native pow semantics (NaN for a negative base
// with a fractional exponent).
func Powx[D Element, M Compute](n int, a []D, b M, y []D) {
	CheckPair[D, M]("powx")
	checkCount("powx", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsPowx(n, a, float32(b), any(y).([]float32))
	case []float64:
		cpu.VdPowx(n, a, float64(b), any(y).([]float64))
	case []half.Float16:
		powxHalf(n, a, float32(b), any(y).([]half.Float16))
	}
}

func powxHalf(n int, a []half.Float16, b float32, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(math32.Pow(a[i].Float32(), b))
	}
}

// Sqr computes y = a*a elementwise.
func Sqr[D Element, M Compute](n int, a, y []D) {
	CheckPair[D, M]("sqr")
	checkCount("sqr", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsSqr(n, a, any(y).([]float32))
	case []float64:
		cpu.VdSqr(n, a, any(y).([]float64))
	case []half.Float16:
		sqrHalf(n, a, any(y).([]half.Float16))
	}
}

func sqrHalf(n int, a, y []half.Float16) {
	// One conversion per element; the widened value serves both factors.
	for i := 0; i < n; i++ {
		f := a[i].Float32()
		y[i] = half.FromFloat32(f * f)
	}
}

// Exp computes y = exp(a) elementwise. Overflow propagates as Inf.
func Exp[D Element, M Compute](n int, a, y []D) {
	CheckPair[D, M]("exp")
	checkCount("exp", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsExp(n, a, any(y).([]float32))
	case []float64:
		cpu.VdExp(n, a, any(y).([]float64))
	case []half.Float16:
		expHalf(n, a, any(y).([]half.Float16))
	}
}

func expHalf(n int, a, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(math32.Exp(a[i].Float32()))
	}
}

// Abs computes y = |a| elementwise.
func Abs[D Element, M Compute](n int, a, y []D) {
	CheckPair[D, M]("abs")
	checkCount("abs", n)
	switch a := any(a).(type) {
	case []float32:
		cpu.VsAbs(n, a, any(y).([]float32))
	case []float64:
		cpu.VdAbs(n, a, any(y).([]float64))
	case []half.Float16:
		absHalf(n, a, any(y).([]half.Float16))
	}
}

func absHalf(n int, a, y []half.Float16) {
	for i := 0; i < n; i++ {
		y[i] = half.FromFloat32(math32.Abs(a[i].Float32()))
	}
}
