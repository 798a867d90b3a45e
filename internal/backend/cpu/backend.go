// Package cpu wraps the vendor math backend consumed by the dispatch
// layer: dense BLAS routines and vectorized elementwise math for the two
// native precisions. Reduced-precision storage has no support here; the
// dispatch layer emulates it through single-precision temporaries.
//
// All matrices are row-major, matching the gonum BLAS implementation.
package cpu

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

var impl gonum.Implementation

func trans(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

// Sgemm computes C = alpha*op(A)*op(B) + beta*C in single precision.
func Sgemm(transA, transB bool, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	impl.Sgemm(trans(transA), trans(transB), m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Dgemm computes C = alpha*op(A)*op(B) + beta*C in double precision.
func Dgemm(transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	impl.Dgemm(trans(transA), trans(transB), m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Sgemv computes y = alpha*op(A)*x + beta*y in single precision.
func Sgemv(transA bool, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	impl.Sgemv(trans(transA), m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// Dgemv computes y = alpha*op(A)*x + beta*y in double precision.
func Dgemv(transA bool, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	impl.Dgemv(trans(transA), m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// Saxpy computes y += alpha*x.
func Saxpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) {
	impl.Saxpy(n, alpha, x, incX, y, incY)
}

// Daxpy computes y += alpha*x.
func Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	impl.Daxpy(n, alpha, x, incX, y, incY)
}

// Saxpby computes y = alpha*x + beta*y. The reference BLAS has no axpby;
// it is composed from scal and axpy, which is how the extension is
// defined.
func Saxpby(n int, alpha float32, x []float32, incX int, beta float32, y []float32, incY int) {
	impl.Sscal(n, beta, y, incY)
	impl.Saxpy(n, alpha, x, incX, y, incY)
}

// Daxpby computes y = alpha*x + beta*y.
func Daxpby(n int, alpha float64, x []float64, incX int, beta float64, y []float64, incY int) {
	impl.Dscal(n, beta, y, incY)
	impl.Daxpy(n, alpha, x, incX, y, incY)
}

// Sscal computes x *= alpha.
func Sscal(n int, alpha float32, x []float32, incX int) {
	impl.Sscal(n, alpha, x, incX)
}

// Dscal computes x *= alpha.
func Dscal(n int, alpha float64, x []float64, incX int) {
	impl.Dscal(n, alpha, x, incX)
}

// Scopy copies x into y.
func Scopy(n int, x []float32, incX int, y []float32, incY int) {
	impl.Scopy(n, x, incX, y, incY)
}

// Dcopy copies x into y.
func Dcopy(n int, x []float64, incX int, y []float64, incY int) {
	impl.Dcopy(n, x, incX, y, incY)
}

// Sdot returns the dot product of x and y.
func Sdot(n int, x []float32, incX int, y []float32, incY int) float32 {
	return impl.Sdot(n, x, incX, y, incY)
}

// Ddot returns the dot product of x and y.
func Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return impl.Ddot(n, x, incX, y, incY)
}

// Sasum returns the sum of absolute values of x.
func Sasum(n int, x []float32, incX int) float32 {
	return impl.Sasum(n, x, incX)
}

// Dasum returns the sum of absolute values of x.
func Dasum(n int, x []float64, incX int) float64 {
	return impl.Dasum(n, x, incX)
}
