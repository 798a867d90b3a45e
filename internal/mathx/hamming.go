package mathx

import (
	"math/bits"

	"github.com/ember-ml/ember/internal/half"
)

// HammingDistance returns the total number of differing bits between the
// buffers' elements after conversion to unsigned integers of the
// storage width: 32-bit for float32, 64-bit for float64, 16-bit for half
// after widening to the compute type. This is a bit-pattern metric over
// discretized codes, not a numeric distance.
func HammingDistance[D Element, M Compute](n int, x, y []D) int {
	CheckPair[D, M]("hamming_distance")
	checkCount("hamming_distance", n)
	dist := 0
	switch x := any(x).(type) {
	case []float32:
		y := any(y).([]float32)
		for i := 0; i < n; i++ {
			dist += bits.OnesCount32(uint32(x[i]) ^ uint32(y[i]))
		}
	case []float64:
		y := any(y).([]float64)
		for i := 0; i < n; i++ {
			dist += bits.OnesCount64(uint64(x[i]) ^ uint64(y[i]))
		}
	case []half.Float16:
		y := any(y).([]half.Float16)
		for i := 0; i < n; i++ {
			dist += bits.OnesCount16(uint16(x[i].Float32()) ^ uint16(y[i].Float32()))
		}
	}
	return dist
}
