package mathx

import (
	"github.com/ember-ml/ember/internal/half"
	"github.com/ember-ml/ember/internal/parallel"
)

// Convert copies n elements from src to dst, converting each value
// through the compute type: exactly one conversion in and one out, with
// no intermediate re-quantization. Buffers must not overlap when source
// and destination widths differ. n == 0 is a no-op; precision loss on
// narrowing is silent by contract.
func Convert[S, D Element](n int, src []S, dst []D) {
	checkCount("convert", n)
	if n == 0 {
		return
	}

	switch s := any(src).(type) {
	case []float32:
		switch d := any(dst).(type) {
		case []float32:
			copy(d[:n], s[:n])
		case []float64:
			for i := 0; i < n; i++ {
				d[i] = float64(s[i])
			}
		case []half.Float16:
			f32ToHalf(n, s, d)
		}
	case []float64:
		switch d := any(dst).(type) {
		case []float32:
			for i := 0; i < n; i++ {
				d[i] = float32(s[i])
			}
		case []float64:
			copy(d[:n], s[:n])
		case []half.Float16:
			for i := 0; i < n; i++ {
				d[i] = half.FromFloat32(float32(s[i]))
			}
		}
	case []half.Float16:
		switch d := any(dst).(type) {
		case []float32:
			halfToF32(n, s, d)
		case []float64:
			for i := 0; i < n; i++ {
				d[i] = float64(s[i].Float32())
			}
		case []half.Float16:
			copy(d[:n], s[:n])
		}
	}
}

// halfToF32 and f32ToHalf carry the emulation paths' bulk traffic;
// elements are independent, so chunks may run concurrently.

func halfToF32(n int, src []half.Float16, dst []float32) {
	parallel.Chunks(n, par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = src[i].Float32()
		}
	})
}

func f32ToHalf(n int, src []float32, dst []half.Float16) {
	parallel.Chunks(n, par, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = half.FromFloat32(src[i])
		}
	})
}
