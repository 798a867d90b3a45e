package mathx

import (
	"github.com/chewxy/math32"
	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/half"
)

// Gemm computes C = alpha*op(A)*op(B) + beta*C over row-major matrices.
// op is transpose when the corresponding flag is set. Leading dimensions
// follow the row-major convention: lda = K (M when transposed), ldb = N
// (K when transposed), ldc = N. A non-positive dimension is a valid
// empty computation and leaves C untouched.
func Gemm[D Element, M Compute](transA, transB bool, m, n, k int, alpha M, a, b []D, beta M, c []D) {
	CheckPair[D, M]("gemm")
	if m <= 0 || n <= 0 || k <= 0 {
		return
	}
	lda := k
	if transA {
		lda = m
	}
	ldb := n
	if transB {
		ldb = k
	}
	switch a := any(a).(type) {
	case []float32:
		cpu.Sgemm(transA, transB, m, n, k, float32(alpha), a, lda, any(b).([]float32), ldb, float32(beta), any(c).([]float32), n)
	case []float64:
		cpu.Dgemm(transA, transB, m, n, k, float64(alpha), a, lda, any(b).([]float64), ldb, float64(beta), any(c).([]float64), n)
	case []half.Float16:
		gemmHalf(transA, transB, m, n, k, float32(alpha), a, lda, any(b).([]half.Float16), ldb, float32(beta), any(c).([]half.Float16))
	}
}

func gemmHalf(transA, transB bool, m, n, k int, alpha float32, a []half.Float16, lda int, b []half.Float16, ldb int, beta float32, c []half.Float16) {
	at := make([]float32, m*k)
	bt := make([]float32, k*n)
	ct := make([]float32, m*n)
	Convert(len(at), a, at)
	Convert(len(bt), b, bt)
	// C is an input whenever beta contributes; its current contents must
	// reach the temporary before the backend call.
	Convert(len(ct), c, ct)
	cpu.Sgemm(transA, transB, m, n, k, alpha, at, lda, bt, ldb, beta, ct, n)
	Convert(len(ct), ct, c)
}

// Gemv computes y = alpha*op(A)*x + beta*y for a row-major M x N matrix.
// The input vector has length N and the output length M; transposition
// swaps them. A non-positive dimension is a valid empty computation and
// leaves y untouched.
func Gemv[D Element, M Compute](transA bool, m, n int, alpha M, a, x []D, beta M, y []D) {
	CheckPair[D, M]("gemv")
	if m <= 0 || n <= 0 {
		return
	}
	switch a := any(a).(type) {
	case []float32:
		cpu.Sgemv(transA, m, n, float32(alpha), a, n, any(x).([]float32), 1, float32(beta), any(y).([]float32), 1)
	case []float64:
		cpu.Dgemv(transA, m, n, float64(alpha), a, n, any(x).([]float64), 1, float64(beta), any(y).([]float64), 1)
	case []half.Float16:
		gemvHalf(transA, m, n, float32(alpha), a, any(x).([]half.Float16), float32(beta), any(y).([]half.Float16))
	}
}

func gemvHalf(transA bool, m, n int, alpha float32, a, x []half.Float16, beta float32, y []half.Float16) {
	lx, ly := n, m
	if transA {
		lx, ly = m, n
	}
	at := make([]float32, m*n)
	xt := make([]float32, lx)
	yt := make([]float32, ly)
	Convert(len(at), a, at)
	Convert(len(xt), x, xt)
	Convert(len(yt), y, yt)
	cpu.Sgemv(transA, m, n, alpha, at, n, xt, 1, beta, yt, 1)
	Convert(len(yt), yt, y)
}

// Scal computes x *= alpha in place.
func Scal[D Element, M Compute](n int, alpha M, x []D) {
	CheckPair[D, M]("scal")
	checkCount("scal", n)
	switch x := any(x).(type) {
	case []float32:
		cpu.Sscal(n, float32(alpha), x, 1)
	case []float64:
		cpu.Dscal(n, float64(alpha), x, 1)
	case []half.Float16:
		a := float32(alpha)
		for i := 0; i < n; i++ {
			x[i] = half.FromFloat32(a * x[i].Float32())
		}
	}
}

// Scale computes y = alpha*x, leaving x untouched.
func Scale[D Element, M Compute](n int, alpha M, x, y []D) {
	CheckPair[D, M]("scale")
	checkCount("scale", n)
	switch x := any(x).(type) {
	case []float32:
		y := any(y).([]float32)
		cpu.Scopy(n, x, 1, y, 1)
		cpu.Sscal(n, float32(alpha), y, 1)
	case []float64:
		y := any(y).([]float64)
		cpu.Dcopy(n, x, 1, y, 1)
		cpu.Dscal(n, float64(alpha), y, 1)
	case []half.Float16:
		y := any(y).([]half.Float16)
		a := float32(alpha)
		for i := 0; i < n; i++ {
			y[i] = half.FromFloat32(a * x[i].Float32())
		}
	}
}

// StridedDot returns the dot product of x and y taken at the given
// strides, accumulated in the compute type.
func StridedDot[D Element, M Compute](n int, x []D, incX int, y []D, incY int) M {
	CheckPair[D, M]("strided_dot")
	checkCount("strided_dot", n)
	switch x := any(x).(type) {
	case []float32:
		return M(cpu.Sdot(n, x, incX, any(y).([]float32), incY))
	case []float64:
		return M(cpu.Ddot(n, x, incX, any(y).([]float64), incY))
	case []half.Float16:
		return M(stridedDotHalf(n, x, incX, any(y).([]half.Float16), incY))
	}
	return 0
}

func stridedDotHalf(n int, x []half.Float16, incX int, y []half.Float16, incY int) float32 {
	// The accumulator stays in compute precision; only the loads narrow.
	var sum float32
	for i := 0; i < n; i++ {
		sum += x[i*incX].Float32() * y[i*incY].Float32()
	}
	return sum
}

// Dot returns the unit-stride dot product of x and y.
func Dot[D Element, M Compute](n int, x, y []D) M {
	return StridedDot[D, M](n, x, 1, y, 1)
}

// Asum returns the sum of absolute values of the first n elements of x.
func Asum[D Element, M Compute](n int, x []D) M {
	CheckPair[D, M]("asum")
	checkCount("asum", n)
	switch x := any(x).(type) {
	case []float32:
		return M(cpu.Sasum(n, x, 1))
	case []float64:
		return M(cpu.Dasum(n, x, 1))
	case []half.Float16:
		var sum float32
		for i := 0; i < n; i++ {
			sum += math32.Abs(x[i].Float32())
		}
		return M(sum)
	}
	return 0
}
