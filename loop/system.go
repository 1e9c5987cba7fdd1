// Package loop runs a fixed, ordered list of systems once per frame and
// keeps per-system execution timings.
package loop

// System is one step of a frame. Systems hold whatever state they need
// between frames; the scheduler only calls Execute in registration order.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }
