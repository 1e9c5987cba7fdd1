package input

import "github.com/kamstrup/intmap"

// Binding maps a key to an intent. Repeating bindings fire again while the
// key stays held.
type Binding struct {
	Intent Intent
	Repeat bool
}

// Bindings is a key table for one host. K is the host's integer key code.
type Bindings[K intmap.IntKey] struct {
	table *intmap.Map[K, Binding]
	keys  []K
}

func NewBindings[K intmap.IntKey]() *Bindings[K] {
	return &Bindings[K]{
		table: intmap.New[K, Binding](16),
	}
}

// Bind assigns key to intent, replacing any earlier binding for key.
func (b *Bindings[K]) Bind(key K, intent Intent, repeat bool) *Bindings[K] {
	if _, ok := b.table.Get(key); !ok {
		b.keys = append(b.keys, key)
	}
	b.table.Put(key, Binding{Intent: intent, Repeat: repeat})
	return b
}

// Lookup returns the binding for key.
func (b *Bindings[K]) Lookup(key K) (Binding, bool) {
	return b.table.Get(key)
}

// Keys returns every bound key in binding order.
func (b *Bindings[K]) Keys() []K {
	return b.keys
}

// Repeat paces auto-repeat for held keys, counted in frames.
type Repeat struct {
	Delay    int
	Interval int
}

// DefaultRepeat waits a fifth of a second, then repeats every three frames
// at 60 frames per second.
var DefaultRepeat = Repeat{Delay: 12, Interval: 3}

// Fire reports whether a key held for the given number of frames should
// produce its intent on this frame. The first frame always fires.
func (r Repeat) Fire(held int) bool {
	if held == 1 {
		return true
	}
	if r.Interval <= 0 || held <= r.Delay {
		return false
	}
	return (held-r.Delay)%r.Interval == 0
}
