package loop

// Frame is passed to every system during one scheduler pass.
type Frame struct {
	// DeltaTime is the elapsed time in seconds since the previous pass.
	DeltaTime float64
	// Index counts passes, starting at 1.
	Index int64

	defers []func()
}

// Defer queues fn to run after every system of this frame has executed.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}
