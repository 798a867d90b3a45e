// Package half exposes the IEEE 754 binary16 storage scalar used by the
// mixed-precision math layer. Float16 is a pure bit container: arithmetic
// always happens after widening to float32.
package half

import "github.com/ember-ml/ember/internal/half"

// Float16 holds an IEEE 754 binary16 value in its raw bit layout.
type Float16 = half.Float16

// FromFloat32 narrows f to binary16 with round-to-nearest-even.
// Out-of-range magnitudes become infinities; subnormal results flush
// to zero.
func FromFloat32(f float32) Float16 { return half.FromFloat32(f) }

// FromBits reinterprets a raw 16-bit pattern as a Float16.
func FromBits(b uint16) Float16 { return half.FromBits(b) }

// Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func Inf(sign int) Float16 { return half.Inf(sign) }

// NaN returns a quiet not-a-number value.
func NaN() Float16 { return half.NaN() }
