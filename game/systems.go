package game

import "github.com/plus3/blockfall/loop"

// InputSystem applies every pending intent in arrival order.
type InputSystem struct {
	Session *Session
	Applied int64
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	for intent := range s.Session.queue.Drain() {
		s.Session.Apply(intent)
		s.Applied++
	}
}

// GravitySystem performs at most one fall tick per frame.
type GravitySystem struct {
	Session *Session
	Ticks   int64
}

func (s *GravitySystem) Execute(frame *loop.Frame) {
	if s.Session.Advance(frame.DeltaTime) {
		s.Ticks++
	}
}
