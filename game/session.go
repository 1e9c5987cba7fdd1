// Package game drives a board engine from player intents and a fall-tick
// clock. A Session is the single writer of its engine: hosts push intents
// and run the session's systems on one goroutine.
package game

import (
	"log"
	"math"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
)

// Listener is notified about scoring and the end of the game.
type Listener interface {
	LinesCleared(rows, score int)
	GameOver(score int)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnLinesCleared func(rows, score int)
	OnGameOver     func(score int)
}

func (l ListenerFuncs) LinesCleared(rows, score int) {
	if l.OnLinesCleared != nil {
		l.OnLinesCleared(rows, score)
	}
}

func (l ListenerFuncs) GameOver(score int) {
	if l.OnGameOver != nil {
		l.OnGameOver(score)
	}
}

// Session couples one engine with its intent queue and fall clock.
type Session struct {
	engine    *board.Engine
	rate      config.TickRate
	queue     input.Queue
	elapsed   time.Duration
	quit      bool
	listeners []Listener
}

// NewSession starts a session at the given fall rate.
func NewSession(engine *board.Engine, rate config.TickRate, listeners ...Listener) *Session {
	if rate <= 0 {
		panic("game: tick rate must be positive")
	}
	return &Session{
		engine:    engine,
		rate:      rate,
		listeners: listeners,
	}
}

// Push queues an intent for the next input pass.
func (s *Session) Push(intent input.Intent) {
	s.queue.Push(intent)
}

// Pending returns the number of queued intents.
func (s *Session) Pending() int {
	return s.queue.Len()
}

// Apply performs one intent immediately. Intents after the game ended are
// ignored.
func (s *Session) Apply(intent input.Intent) {
	if s.Done() {
		return
	}

	switch intent {
	case input.MoveLeft:
		s.engine.Translate(board.Left)
	case input.MoveRight:
		s.engine.Translate(board.Right)
	case input.SoftDrop:
		s.drop()
	case input.Rotate:
		s.engine.Rotate()
	case input.Quit:
		s.quit = true
		log.Printf("[session] quit with score %d", s.engine.Score())
	}
}

// Advance adds dt seconds to the fall clock and performs one drop when a
// full tick interval has accumulated. It reports whether a drop happened.
//
// Time left over after a tick carries into the next one, so the fall rate
// holds at any frame rate. After a stall the carry is capped just below one
// interval: at most one drop per call, with no burst of catch-up ticks.
func (s *Session) Advance(dt float64) bool {
	if s.Done() {
		return false
	}

	interval := s.rate.Interval()
	s.elapsed += time.Duration(math.Round(dt * float64(time.Second)))
	if s.elapsed < interval {
		return false
	}

	s.elapsed = min(s.elapsed-interval, interval-1)
	s.drop()
	return true
}

func (s *Session) drop() {
	before := s.engine.Score()
	alive := s.engine.Drop()

	if cleared := s.engine.Score() - before; cleared > 0 {
		for _, l := range s.listeners {
			l.LinesCleared(cleared, s.engine.Score())
		}
	}

	if !alive {
		log.Printf("[session] game over with score %d", s.engine.Score())
		for _, l := range s.listeners {
			l.GameOver(s.engine.Score())
		}
	}
}

// Engine returns the engine the session drives.
func (s *Session) Engine() *board.Engine { return s.engine }

func (s *Session) Rate() config.TickRate { return s.rate }

func (s *Session) Snapshot() board.Snapshot { return s.engine.Snapshot() }

func (s *Session) Score() int { return s.engine.Score() }

// Over reports whether the engine reached game over.
func (s *Session) Over() bool { return s.engine.Over() }

// Quit reports whether the player asked to quit.
func (s *Session) Quit() bool { return s.quit }

// Done reports whether the session accepts no more input.
func (s *Session) Done() bool { return s.quit || s.engine.Over() }

// Systems returns the input and gravity systems, in frame order.
func (s *Session) Systems() []loop.System {
	return []loop.System{
		&InputSystem{Session: s},
		&GravitySystem{Session: s},
	}
}
