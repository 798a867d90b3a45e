// Package mathx provides dtype-polymorphic numeric primitives: dense
// BLAS, elementwise vector math, buffer conversion, and device-routed
// memory transfer.
//
// Every operation is parameterized by a storage type D and a compute
// type M. Supported pairings are float32/float32, float64/float64, and
// half.Float16/float32; the half pairing computes through float32
// temporaries. Illegal pairings panic at the call boundary.
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/half"
//	    "github.com/ember-ml/ember/mathx"
//	)
//
//	a := make([]half.Float16, 4)
//	mathx.Set[half.Float16, float32](4, 1.5, a)
//	sum := mathx.Asum[half.Float16, float32](4, a)
package mathx

import (
	"github.com/ember-ml/ember/internal/device"
	"github.com/ember-ml/ember/internal/mathx"
)

// Element is the set of storage types buffers may be declared in.
type Element = mathx.Element

// Compute is the set of types arithmetic is performed in.
type Compute = mathx.Compute

// Transferable is the set of element types Copy moves, the storage
// scalars plus the integer mask types.
type Transferable = mathx.Transferable

// Gemm computes C = alpha*op(A)*op(B) + beta*C over row-major matrices.
func Gemm[D Element, M Compute](transA, transB bool, m, n, k int, alpha M, a, b []D, beta M, c []D) {
	mathx.Gemm[D, M](transA, transB, m, n, k, alpha, a, b, beta, c)
}

// Gemv computes y = alpha*op(A)*x + beta*y for a row-major M x N matrix.
func Gemv[D Element, M Compute](transA bool, m, n int, alpha M, a, x []D, beta M, y []D) {
	mathx.Gemv[D, M](transA, m, n, alpha, a, x, beta, y)
}

// Axpy computes y = alpha*x + y.
func Axpy[D Element, M Compute](n int, alpha M, x, y []D) {
	mathx.Axpy[D, M](n, alpha, x, y)
}

// Axpby computes y = alpha*x + beta*y.
func Axpby[D Element, M Compute](n int, alpha M, x []D, beta M, y []D) {
	mathx.Axpby[D, M](n, alpha, x, beta, y)
}

// Scal computes x *= alpha in place.
func Scal[D Element, M Compute](n int, alpha M, x []D) {
	mathx.Scal[D, M](n, alpha, x)
}

// Scale computes y = alpha*x, leaving x untouched.
func Scale[D Element, M Compute](n int, alpha M, x, y []D) {
	mathx.Scale[D, M](n, alpha, x, y)
}

// Dot returns the unit-stride dot product of x and y.
func Dot[D Element, M Compute](n int, x, y []D) M {
	return mathx.Dot[D, M](n, x, y)
}

// StridedDot returns the dot product of x and y at the given strides.
func StridedDot[D Element, M Compute](n int, x []D, incX int, y []D, incY int) M {
	return mathx.StridedDot[D, M](n, x, incX, y, incY)
}

// Asum returns the sum of absolute values of the first n elements of x.
func Asum[D Element, M Compute](n int, x []D) M {
	return mathx.Asum[D, M](n, x)
}

// Set fills the first n elements of y with alpha.
func Set[D Element, M Compute](n int, alpha M, y []D) {
	mathx.Set[D, M](n, alpha, y)
}

// SetInt32 fills the first n elements of y with alpha.
func SetInt32(n int, alpha int32, y []int32) {
	mathx.SetInt32(n, alpha, y)
}

// AddScalar computes y[i] += alpha.
func AddScalar[D Element, M Compute](n int, alpha M, y []D) {
	mathx.AddScalar[D, M](n, alpha, y)
}

// Add computes y = a + b elementwise.
func Add[D Element, M Compute](n int, a, b, y []D) {
	mathx.Add[D, M](n, a, b, y)
}

// Sub computes y = a - b elementwise.
func Sub[D Element, M Compute](n int, a, b, y []D) {
	mathx.Sub[D, M](n, a, b, y)
}

// Mul computes y = a * b elementwise.
func Mul[D Element, M Compute](n int, a, b, y []D) {
	mathx.Mul[D, M](n, a, b, y)
}

// Div computes y = a / b elementwise with IEEE semantics.
func Div[D Element, M Compute](n int, a, b, y []D) {
	mathx.Div[D, M](n, a, b, y)
}

// Powx computes y = a^b elementwise for a scalar exponent b.
func Powx[D Element, M Compute](n int, a []D, b M, y []D) {
	mathx.Powx[D, M](n, a, b, y)
}

// Sqr computes y = a*a elementwise.
func Sqr[D Element, M Compute](n int, a, y []D) {
	mathx.Sqr[D, M](n, a, y)
}

// Exp computes y = exp(a) elementwise.
func Exp[D Element, M Compute](n int, a, y []D) {
	mathx.Exp[D, M](n, a, y)
}

// Abs computes y = |a| elementwise.
func Abs[D Element, M Compute](n int, a, y []D) {
	mathx.Abs[D, M](n, a, y)
}

// Convert copies n elements from src to dst, converting each value
// through the compute type exactly once.
func Convert[S, D Element](n int, src []S, dst []D) {
	mathx.Convert[S, D](n, src, dst)
}

// Copy moves n elements from src to dst, routed on the context's
// execution mode. A self-copy is a no-op; accelerated mode without a
// bound accelerator panics.
func Copy[D Transferable](ctx *device.Context, n int, src, dst []D) {
	mathx.Copy[D](ctx, n, src, dst)
}

// HammingDistance returns the number of differing bits between the
// buffers' elements after truncation to storage-width integers.
func HammingDistance[D Element, M Compute](n int, x, y []D) int {
	return mathx.HammingDistance[D, M](n, x, y)
}

// Nextafter returns the next representable compute-type value above b.
func Nextafter[M Compute](b M) M {
	return mathx.Nextafter[M](b)
}
