//go:build !windows

package device

import "errors"

// WebGPU is unavailable on platforms the wgpu binding does not cover;
// the capability check at the point of use reports the absence.
type WebGPU struct{}

// NewWebGPU reports that the WebGPU runtime is not available.
func NewWebGPU() (*WebGPU, error) {
	return nil, errors.New("webgpu: runtime not available on this platform")
}

// WebGPUAvailable reports whether a WebGPU accelerator can be created on
// this system.
func WebGPUAvailable() bool { return false }

// Name returns the runtime name.
func (w *WebGPU) Name() string { return "WebGPU" }

// CopyBytes always fails on platforms without the runtime.
func (w *WebGPU) CopyBytes(dst, src []byte) error {
	return errors.New("webgpu: runtime not available on this platform")
}

// Release is a no-op.
func (w *WebGPU) Release() {}
