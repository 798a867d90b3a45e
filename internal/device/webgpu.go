//go:build windows

package device

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// WebGPU is the accelerator binding over the WebGPU runtime. Copies are
// staged through device buffers: upload into a storage buffer, device
// copy into a mappable staging buffer, map and read back.
type WebGPU struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
}

// NewWebGPU initializes the WebGPU runtime and returns an accelerator
// bound to it. Returns an error if no compatible adapter or device is
// present.
func NewWebGPU() (acc *WebGPU, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			acc = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &WebGPU{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
	}, nil
}

// WebGPUAvailable reports whether a WebGPU accelerator can be created on
// this system.
func WebGPUAvailable() bool {
	acc, err := NewWebGPU()
	if err != nil {
		return false
	}
	acc.Release()
	return true
}

// Name returns the runtime name.
func (w *WebGPU) Name() string { return "WebGPU" }

// CopyBytes copies len(src) bytes from src to dst through device memory.
func (w *WebGPU) CopyBytes(dst, src []byte) error {
	size := uint64(len(src))
	if size == 0 {
		return nil
	}
	if uint64(len(dst)) < size {
		return fmt.Errorf("webgpu: destination too small: %d < %d", len(dst), size)
	}

	// Upload the source span into a device buffer.
	srcBuffer := w.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageCopySrc,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	defer srcBuffer.Release()

	mappedPtr := srcBuffer.GetMappedRange(0, size)
	//nolint:gosec // zero-copy view over the mapped range
	mapped := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mapped, src)
	srcBuffer.Unmap()

	// Device copy into a mappable staging buffer.
	stagingBuffer := w.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := w.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	w.queue.Submit(cmdBuffer)

	// Map the staging buffer and read the span back out.
	if err := stagingBuffer.MapAsync(w.device, wgpu.MapModeRead, 0, size); err != nil {
		return fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}
	stagedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // zero-copy view over the mapped range
	staged := unsafe.Slice((*byte)(stagedPtr), size)
	copy(dst, staged)
	stagingBuffer.Unmap()

	return nil
}

// Release frees the runtime handles.
func (w *WebGPU) Release() {
	if w.queue != nil {
		w.queue.Release()
	}
	if w.device != nil {
		w.device.Release()
	}
	if w.adapter != nil {
		w.adapter.Release()
	}
	if w.instance != nil {
		w.instance.Release()
	}
}
