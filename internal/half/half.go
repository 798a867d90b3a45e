// Package half implements the IEEE 754 binary16 storage scalar.
//
// Float16 is a pure bit container: arithmetic is never performed on it
// directly. Callers convert to float32, compute, and convert back. The
// round trip is lossy by contract; narrowing is silent.
package half

import "math"

// Float16 is an IEEE 754 half-precision value stored as its bit pattern.
type Float16 uint16

const (
	signMask     = 0x8000
	exponentMask = 0x7C00
	mantissaMask = 0x03FF
	exponentBias = 15
	mantissaBits = 10
)

// FromBits returns the Float16 with the given bit representation.
func FromBits(b uint16) Float16 { return Float16(b) }

// Bits returns the bit representation of f.
func (f Float16) Bits() uint16 { return uint16(f) }

// Float32 widens f to single precision. The conversion is exact for all
// finite half values, including subnormals.
func (f Float16) Float32() float32 {
	sign := uint32(f&signMask) << 16
	exponent := uint32(f&exponentMask) >> mantissaBits
	mantissa := uint32(f & mantissaMask)

	switch {
	case exponent == 0:
		if mantissa == 0 {
			return math.Float32frombits(sign) // signed zero
		}
		// Subnormal half: renormalize into the float32 exponent range.
		shift := uint32(0)
		for mantissa&0x400 == 0 {
			mantissa <<= 1
			shift++
		}
		mantissa &= mantissaMask
		return math.Float32frombits(sign | (127-exponentBias+1-shift)<<23 | mantissa<<13)
	case exponent == 0x1F:
		if mantissa == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mantissa<<13)
	default:
		return math.Float32frombits(sign | (exponent+127-exponentBias)<<23 | mantissa<<13)
	}
}

// FromFloat32 narrows v to half precision using round-to-nearest-even.
// Values below the normal half range flush to zero; values above it
// overflow to infinity.
func FromFloat32(v float32) Float16 {
	bits := math.Float32bits(v)
	sign := uint16(bits>>16) & signMask
	exponent := (bits >> 23) & 0xFF
	mantissa := bits & 0x7FFFFF

	if exponent == 0xFF {
		if mantissa == 0 {
			return Float16(sign | exponentMask) // infinity
		}
		return Float16(sign | exponentMask | uint16(mantissa>>13) | 1) // NaN, keep payload nonzero
	}

	exp := int(exponent) - 127 + exponentBias
	if exp <= 0 {
		return Float16(sign) // underflow to zero
	}
	if exp >= 0x1F {
		return Float16(sign | exponentMask) // overflow to infinity
	}

	mant := uint16(mantissa >> 13)
	rem := mantissa & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && mant&1 == 1) {
		mant++
		if mant == 1<<mantissaBits { // mantissa carry bumps the exponent
			mant = 0
			exp++
			if exp >= 0x1F {
				return Float16(sign | exponentMask)
			}
		}
	}
	return Float16(sign | uint16(exp)<<mantissaBits | mant)
}

// Inf returns half infinity with the given sign.
func Inf(sign int) Float16 {
	if sign < 0 {
		return Float16(signMask | exponentMask)
	}
	return Float16(exponentMask)
}

// NaN returns a half quiet NaN.
func NaN() Float16 { return Float16(exponentMask | 0x0200) }

// IsNaN reports whether f is a NaN.
func (f Float16) IsNaN() bool {
	return f&exponentMask == exponentMask && f&mantissaMask != 0
}

// IsInf reports whether f is an infinity matching sign: positive if
// sign > 0, negative if sign < 0, either if sign == 0.
func (f Float16) IsInf(sign int) bool {
	if f&exponentMask != exponentMask || f&mantissaMask != 0 {
		return false
	}
	neg := f&signMask != 0
	return sign == 0 || (sign > 0 && !neg) || (sign < 0 && neg)
}
