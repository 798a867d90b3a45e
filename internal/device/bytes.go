package device

import "unsafe"

// Pod constrains the fixed-width element types buffers are transferred
// as. It exists so byte views can be taken without per-type code.
type Pod interface {
	~uint16 | ~float32 | ~float64 | ~int32 | ~uint32
}

// Bytes reinterprets s as its underlying byte span without copying.
// The view aliases s; it is only valid while s is reachable.
func Bytes[T Pod](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	//nolint:gosec // zero-copy view, length derived from the slice itself
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}
