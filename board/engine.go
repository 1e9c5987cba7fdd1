// Package board implements the falling-block simulation: the locked-cell
// grid, the active piece, movement and rotation validity, locking, line
// clearing and the fall tick.
//
// An Engine is not safe for concurrent use. Hosts that render on another
// goroutine should read through Snapshot under their own lock.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidSize is returned by New when the board has no cells.
var ErrInvalidSize = errors.New("board: rows and cols must be positive")

// Config describes the board dimensions in cells.
type Config struct {
	Rows int
	Cols int
}

// DefaultConfig returns the standard 20 row by 10 column board.
func DefaultConfig() Config {
	return Config{Rows: 20, Cols: 10}
}

// Option customises an Engine at construction.
type Option func(*options)

type options struct {
	rng   *rand.Rand
	first *Kind
}

// WithRand makes piece selection draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithFirstPiece forces the piece placed at construction.
func WithFirstPiece(k Kind) Option {
	return func(o *options) {
		o.first = &k
	}
}

// Engine owns the grid, the active piece and its anchor, and the score.
type Engine struct {
	grid   *Grid
	piece  Piece
	anchor Point
	score  int
	over   bool
	rng    *rand.Rand
}

// New creates an engine with an empty grid and places the first piece.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Rows, cfg.Cols)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		grid: newGrid(cfg.Rows, cfg.Cols),
		rng:  o.rng,
	}

	first := e.SpawnPiece()
	if o.first != nil {
		first = NewPiece(*o.first)
	}
	e.Place(first)

	return e, nil
}

// Grid returns the locked-cell grid. Mutating it directly bypasses the
// engine's validity checks.
func (e *Engine) Grid() *Grid { return e.grid }

// Piece returns a copy of the active piece.
func (e *Engine) Piece() Piece { return e.piece.Clone() }

// Anchor returns the grid position of the active piece's local origin.
func (e *Engine) Anchor() Point { return e.anchor }

func (e *Engine) Score() int { return e.score }

// Over reports whether a spawned piece could not be placed.
func (e *Engine) Over() bool { return e.over }

// SpawnPiece picks a catalog piece uniformly at random. It does not change
// the engine state; combine it with Place.
func (e *Engine) SpawnPiece() Piece {
	var n int
	if e.rng != nil {
		n = e.rng.IntN(KindCount)
	} else {
		n = rand.IntN(KindCount)
	}
	return NewPiece(Kind(n))
}

// SpawnAnchor returns the top-row anchor that centers p's bounding box.
func (e *Engine) SpawnAnchor(p Piece) Point {
	return Point{Row: 0, Col: (e.grid.cols - p.Shape.Width()) / 2}
}

// Place makes p the active piece at its spawn anchor. It reports whether the
// placement is valid; an invalid placement ends the game and leaves p in place.
func (e *Engine) Place(p Piece) bool {
	e.piece = p
	e.anchor = e.SpawnAnchor(p)
	if !e.IsValid(p.Shape, e.anchor, Zero) {
		e.over = true
		return false
	}
	return true
}

// IsValid reports whether shape fits at anchor+offset. Cells above the grid
// (negative rows) are allowed; cells left, right or below it are not, and
// neither are cells overlapping locked ones.
func (e *Engine) IsValid(shape Shape, anchor, offset Point) bool {
	origin := anchor.Add(offset)
	for cell := range shape.Cells() {
		y := origin.Row + cell.Row
		x := origin.Col + cell.Col
		if x < 0 || x >= e.grid.cols || y >= e.grid.rows {
			return false
		}
		if y >= 0 && e.grid.cells[y][x] {
			return false
		}
	}
	return true
}

// Translate moves the active piece by offset if the destination is valid.
func (e *Engine) Translate(offset Point) bool {
	if e.over || !e.IsValid(e.piece.Shape, e.anchor, offset) {
		return false
	}
	e.anchor = e.anchor.Add(offset)
	return true
}

// Rotate turns the active piece clockwise around a fixed anchor. When the
// rotated shape does not fit the previous shape is kept.
func (e *Engine) Rotate() bool {
	if e.over {
		return false
	}
	rotated := e.piece.Shape.Rotate()
	if !e.IsValid(rotated, e.anchor, Zero) {
		return false
	}
	e.piece.Shape = rotated
	return true
}

// LockAndClear merges the active piece into the grid, then removes every
// full row and adds one point per removed row. It returns the number of
// rows removed.
//
// The active piece must lie entirely inside the grid; Drop guarantees this.
func (e *Engine) LockAndClear() int {
	if e.over {
		return 0
	}
	for cell := range e.piece.Shape.Cells() {
		pos := e.anchor.Add(cell)
		e.grid.Set(pos.Row, pos.Col, true)
	}
	cleared := e.grid.clearFullRows()
	e.score += cleared
	return cleared
}

// Drop advances the fall tick. The active piece moves down one row when it
// can; otherwise it is locked, full rows are cleared and a new piece is
// placed. Drop returns false when that new piece does not fit, which ends
// the game. Every later call returns false without changing anything.
func (e *Engine) Drop() bool {
	if e.over {
		return false
	}
	if e.Translate(Down) {
		return true
	}
	e.LockAndClear()
	return e.Place(e.SpawnPiece())
}

// GhostRow returns the anchor row at which the active piece would land.
func (e *Engine) GhostRow() int {
	row := e.anchor.Row
	for e.IsValid(e.piece.Shape, Point{Row: row, Col: e.anchor.Col}, Down) {
		row++
	}
	return row
}
