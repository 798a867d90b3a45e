// Package device provides the execution context consulted by the memory
// transfer utility: a host/accelerated mode selector plus the optional
// accelerator capability bound at startup.
//
// The context replaces ambient global state: it is built once during
// process initialization and threaded explicitly into every call that
// routes on it. The mode is assumed stable for the duration of a call.
package device

// Mode selects how buffer copies are routed.
type Mode int

// Supported execution modes.
const (
	Host Mode = iota
	Accelerated
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Host:
		return "Host"
	case Accelerated:
		return "Accelerated"
	default:
		return "Unknown"
	}
}

// Accelerator is the single capability consumed from the accelerator
// runtime: an address-space-agnostic byte copy. Implementations own
// their runtime handles; Release frees them.
type Accelerator interface {
	// Name identifies the runtime backing the accelerator.
	Name() string

	// CopyBytes copies len(src) bytes from src to dst through the
	// accelerator. len(dst) must be >= len(src).
	CopyBytes(dst, src []byte) error

	// Release frees the runtime resources held by the accelerator.
	Release()
}

// Context carries the execution mode and, in accelerated mode, the
// accelerator it routes to. Contexts are immutable after construction
// and safe for concurrent readers.
type Context struct {
	mode  Mode
	accel Accelerator
}

// NewContext returns a host-mode context.
func NewContext() *Context {
	return &Context{mode: Host}
}

// NewAcceleratedContext returns an accelerated-mode context bound to acc.
// acc may be nil when no accelerator is available; consumers detect the
// missing capability at the point of use.
func NewAcceleratedContext(acc Accelerator) *Context {
	return &Context{mode: Accelerated, accel: acc}
}

// Mode returns the execution mode.
func (c *Context) Mode() Mode { return c.mode }

// Accelerator returns the bound accelerator, or nil if none is bound.
func (c *Context) Accelerator() Accelerator { return c.accel }
