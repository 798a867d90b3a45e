// Package device exposes the execution context that routes buffer
// transfers between host and accelerator memory.
//
// A context is built once at startup and passed explicitly to every
// operation that routes on it:
//
//	ctx := device.NewContext()                  // host only
//	gpu, err := device.NewWebGPU()              // optional accelerator
//	if err == nil {
//	    ctx = device.NewAcceleratedContext(gpu)
//	}
package device

import "github.com/ember-ml/ember/internal/device"

// Mode selects how buffer copies are routed.
type Mode = device.Mode

// Supported execution modes.
const (
	Host        = device.Host
	Accelerated = device.Accelerated
)

// Accelerator is the capability an accelerator runtime provides to the
// transfer path.
type Accelerator = device.Accelerator

// Context carries the execution mode and the bound accelerator, if any.
type Context = device.Context

// WebGPU is an Accelerator backed by a WebGPU device queue.
type WebGPU = device.WebGPU

// NewContext returns a host-mode context.
func NewContext() *Context { return device.NewContext() }

// NewAcceleratedContext returns an accelerated-mode context bound to acc.
func NewAcceleratedContext(acc Accelerator) *Context {
	return device.NewAcceleratedContext(acc)
}

// NewWebGPU initializes the WebGPU runtime and returns an accelerator
// bound to its default high-performance adapter. It returns an error on
// platforms without WebGPU support or when no adapter is present.
func NewWebGPU() (*WebGPU, error) { return device.NewWebGPU() }

// WebGPUAvailable reports whether a WebGPU adapter can be acquired.
func WebGPUAvailable() bool { return device.WebGPUAvailable() }
