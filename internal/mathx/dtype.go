// Package mathx is the dual-type dispatch layer beneath the tensor
// framework. Every operation is keyed by a storage type D (the type
// buffers are persisted in) and a compute type M (the type arithmetic
// runs in, at least single precision). Native pairings forward to the
// vendor backend; the half/float32 pairing converts through compute-type
// temporaries scoped to the call.
//
// Dispatch happens once at the call boundary: each exported operation
// selects a concrete per-pair body, and no per-element loop performs
// runtime type checks.
package mathx

import (
	"github.com/ember-ml/ember/internal/half"
	"github.com/ember-ml/ember/internal/parallel"
)

// Element is the set of storage types buffers may be declared in.
type Element interface {
	float32 | float64 | half.Float16
}

// Compute is the set of types arithmetic is performed in.
type Compute interface {
	float32 | float64
}

// par configures buffer-local parallelism for bulk conversion loops.
var par = parallel.DefaultConfig()

// CheckPair panics unless the (storage, compute) pairing is one the
// layer implements: float32/float32, float64/float64, half/float32.
// The compute type must be at least as wide as the storage type, and
// native storage pairs with itself.
func CheckPair[D Element, M Compute](op string) {
	var d D
	var m M
	_, wide := any(m).(float64)
	if _, ok := any(d).(float64); ok {
		if !wide {
			panic(op + ": float64 storage requires a float64 compute type")
		}
		return
	}
	if wide {
		panic(op + ": float64 compute type requires float64 storage")
	}
}

func checkCount(op string, n int) {
	if n < 0 {
		panic(op + ": negative element count")
	}
}

// ToCompute converts a single storage scalar to the compute type.
// Boundary use only; loops go through concrete per-pair bodies.
func ToCompute[M Compute, D Element](v D) M {
	switch v := any(v).(type) {
	case float32:
		return M(v)
	case float64:
		return M(v)
	default:
		return M(any(v).(half.Float16).Float32())
	}
}

// FromCompute converts a single compute scalar to the storage type.
// Narrowing to half is lossy and silent.
func FromCompute[D Element, M Compute](v M) D {
	var zero D
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(D)
	case float64:
		return any(float64(v)).(D)
	default:
		return any(half.FromFloat32(float32(v))).(D)
	}
}
