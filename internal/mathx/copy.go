package mathx

import (
	"unsafe"

	"github.com/ember-ml/ember/internal/device"
	"github.com/ember-ml/ember/internal/half"
)

// Transferable constrains the element types the transfer utility moves:
// the storage scalars plus the integer mask types.
type Transferable interface {
	float32 | float64 | half.Float16 | int32 | uint32
}

// Copy moves n elements from src to dst, routing on the context's
// execution mode: host mode is a flat byte copy, accelerated mode issues
// a device copy of the same span. A self-copy (identical base address)
// is a no-op. Selecting accelerated mode without an accelerator bound is
// a configuration error and panics; there is no host fallback.
func Copy[D Transferable](ctx *device.Context, n int, src, dst []D) {
	checkCount("copy", n)
	if n == 0 || unsafe.SliceData(src) == unsafe.SliceData(dst) {
		return
	}

	if ctx.Mode() == device.Accelerated {
		acc := ctx.Accelerator()
		if acc == nil {
			panic("copy: accelerated mode selected but no accelerator capability is present")
		}
		if err := acc.CopyBytes(device.Bytes(dst[:n]), device.Bytes(src[:n])); err != nil {
			panic("copy: accelerator copy failed: " + err.Error())
		}
		return
	}

	copy(dst[:n], src[:n])
}
