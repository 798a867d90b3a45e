package half

import (
	"math"
	"testing"
)

func TestFromFloat32RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"two", 2, 2},
		{"negative", -1.5, -1.5},
		{"exact fraction", 0.25, 0.25},
		{"small integer", 1024, 1024},
		{"max half", 65504, 65504},
		{"needs rounding", 1.0001, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat32(tt.in).Float32()
			if got != tt.want {
				t.Errorf("FromFloat32(%g).Float32() = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTripPrecision(t *testing.T) {
	// Any normal-range value must round-trip within half an ulp of the
	// 10-bit mantissa, i.e. a relative error below 2^-11.
	values := []float32{3.14159, 0.1, 100.7, 6.2e-5, 12345, -0.333}
	for _, v := range values {
		got := FromFloat32(v).Float32()
		rel := math.Abs(float64(got-v)) / math.Abs(float64(v))
		if rel > 1.0/2048 {
			t.Errorf("round trip of %g gave %g, relative error %g", v, got, rel)
		}
	}
}

func TestSubnormal(t *testing.T) {
	// Smallest positive subnormal half is 2^-24.
	smallest := FromBits(0x0001)
	if got, want := smallest.Float32(), float32(math.Ldexp(1, -24)); got != want {
		t.Errorf("subnormal 0x0001 = %g, want %g", got, want)
	}

	// Largest subnormal half.
	largest := FromBits(0x03FF)
	if got, want := largest.Float32(), float32(math.Ldexp(1023, -24)); got != want {
		t.Errorf("subnormal 0x03FF = %g, want %g", got, want)
	}
}

func TestUnderflowFlushesToZero(t *testing.T) {
	if got := FromFloat32(1e-8); got != 0 {
		t.Errorf("FromFloat32(1e-8) = %#04x, want zero", got.Bits())
	}
	if got := FromFloat32(-1e-8); got.Bits() != 0x8000 {
		t.Errorf("FromFloat32(-1e-8) = %#04x, want negative zero", got.Bits())
	}
}

func TestOverflowToInf(t *testing.T) {
	if got := FromFloat32(1e6); !got.IsInf(1) {
		t.Errorf("FromFloat32(1e6) = %#04x, want +Inf", got.Bits())
	}
	if got := FromFloat32(-1e6); !got.IsInf(-1) {
		t.Errorf("FromFloat32(-1e6) = %#04x, want -Inf", got.Bits())
	}
}

func TestSpecials(t *testing.T) {
	if !NaN().IsNaN() {
		t.Error("NaN().IsNaN() = false")
	}
	if !FromFloat32(float32(math.NaN())).IsNaN() {
		t.Error("FromFloat32(NaN) is not NaN")
	}
	if !math.IsNaN(float64(NaN().Float32())) {
		t.Error("NaN().Float32() is not NaN")
	}
	if got := Inf(1).Float32(); !math.IsInf(float64(got), 1) {
		t.Errorf("Inf(1).Float32() = %g", got)
	}
	if got := Inf(-1).Float32(); !math.IsInf(float64(got), -1) {
		t.Errorf("Inf(-1).Float32() = %g", got)
	}
	if Inf(1).IsNaN() || Inf(-1).IsNaN() {
		t.Error("infinity classified as NaN")
	}
}

func TestRoundToNearestEven(t *testing.T) {
	// 2048 + 1 is exactly halfway between representable halves 2048 and
	// 2050 (ulp = 2 in this binade); ties go to the even mantissa.
	if got := FromFloat32(2049).Float32(); got != 2048 {
		t.Errorf("FromFloat32(2049) rounds to %g, want 2048", got)
	}
	if got := FromFloat32(2051).Float32(); got != 2052 {
		t.Errorf("FromFloat32(2051) rounds to %g, want 2052", got)
	}
}
