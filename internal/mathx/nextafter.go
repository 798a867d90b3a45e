package mathx

import (
	"math"

	"github.com/chewxy/math32"
)

// Nextafter returns the next representable compute-type value after b in
// the direction of the type's maximum: the smallest value strictly
// greater than b for any finite b below the maximum. The sampling suite
// uses it to turn a half-open uniform distribution into an inclusive
// upper bound.
func Nextafter[M Compute](b M) M {
	switch v := any(b).(type) {
	case float32:
		return M(math32.Nextafter(v, math32.MaxFloat32))
	case float64:
		return M(math.Nextafter(v, math.MaxFloat64))
	}
	return b
}
