package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
)

var randomIntents = []input.Intent{input.MoveLeft, input.MoveRight, input.SoftDrop, input.Rotate}

// soak plays game after game with random input and checks board invariants
// after every frame.
type soak struct {
	cfg  board.Config
	rate config.TickRate
	rng  *rand.Rand

	session *game.Session
	input   game.InputSystem
	gravity game.GravitySystem

	games      int
	bestScore  int
	totalLines int
	lastScore  int
	violations []string
}

func newSoak(cfg board.Config, rate config.TickRate, seed uint64) *soak {
	s := &soak{
		cfg:  cfg,
		rate: rate,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.restart()
	return s
}

// register adds the soak systems in frame order.
func (s *soak) register(scheduler *loop.Scheduler) {
	scheduler.Register(&chaosSystem{soak: s})
	scheduler.Register(&s.input)
	scheduler.Register(&s.gravity)
	scheduler.Register(&invariantSystem{soak: s})
}

func (s *soak) restart() {
	engine, err := board.New(s.cfg, board.WithRand(rand.New(rand.NewPCG(s.rng.Uint64(), s.rng.Uint64()))))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	s.session = game.NewSession(engine, s.rate, s)
	s.input.Session = s.session
	s.gravity.Session = s.session
	s.lastScore = 0
}

func (s *soak) LinesCleared(rows, score int) {
	s.totalLines += rows
}

func (s *soak) GameOver(score int) {
	s.games++
	s.bestScore = max(s.bestScore, score)
}

func (s *soak) violate(frame int64, format string, args ...any) {
	msg := fmt.Sprintf("frame %d: %s", frame, fmt.Sprintf(format, args...))
	log.Printf("[soak] violation: %s", msg)
	s.violations = append(s.violations, msg)
}

// chaosSystem queues up to two random intents per frame.
type chaosSystem struct {
	soak *soak
}

func (c *chaosSystem) Execute(frame *loop.Frame) {
	for range c.soak.rng.IntN(3) {
		c.soak.session.Push(randomIntents[c.soak.rng.IntN(len(randomIntents))])
	}
}

// invariantSystem validates the board and starts a new game once the
// current one is over.
type invariantSystem struct {
	soak *soak
}

func (v *invariantSystem) Execute(frame *loop.Frame) {
	s := v.soak
	snap := s.session.Snapshot()
	for _, problem := range checkSnapshot(snap, s.lastScore) {
		s.violate(frame.Index, "%s", problem)
	}
	s.lastScore = snap.Score

	if s.session.Done() {
		frame.Defer(s.restart)
	}
}

// checkSnapshot returns a description of every invariant snap breaks.
func checkSnapshot(snap board.Snapshot, previousScore int) []string {
	var problems []string

	if snap.Score < previousScore {
		problems = append(problems, fmt.Sprintf("score went down from %d to %d", previousScore, snap.Score))
	}

	for r, row := range snap.Cells {
		full := len(row) > 0
		for _, filled := range row {
			full = full && filled
		}
		if full {
			problems = append(problems, fmt.Sprintf("row %d is full after clearing", r))
		}
	}

	if snap.Over {
		return problems
	}

	for p := range snap.PieceCells() {
		if p.Row < 0 || p.Row >= snap.Rows || p.Col < 0 || p.Col >= snap.Cols {
			problems = append(problems, fmt.Sprintf("piece cell %v out of bounds", p))
			continue
		}
		if snap.Cells[p.Row][p.Col] {
			problems = append(problems, fmt.Sprintf("piece cell %v overlaps a locked cell", p))
		}
	}
	if snap.GhostRow < snap.Anchor.Row {
		problems = append(problems, fmt.Sprintf("ghost row %d above piece row %d", snap.GhostRow, snap.Anchor.Row))
	}

	return problems
}
