package board

import "iter"

// Snapshot is a detached copy of everything a renderer needs for one frame.
type Snapshot struct {
	Rows     int
	Cols     int
	Cells    [][]bool
	Piece    Piece
	Anchor   Point
	GhostRow int
	Score    int
	Over     bool
}

// Snapshot copies the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Rows:     e.grid.rows,
		Cols:     e.grid.cols,
		Cells:    e.grid.Cells(),
		Piece:    e.piece.Clone(),
		Anchor:   e.anchor,
		GhostRow: e.GhostRow(),
		Score:    e.score,
		Over:     e.over,
	}
}

// PieceCells yields the absolute grid coordinates of the active piece.
// Coordinates above the grid have negative rows.
func (s Snapshot) PieceCells() iter.Seq[Point] {
	return s.cellsAt(s.Anchor)
}

// GhostCells yields the coordinates the active piece would occupy on landing.
func (s Snapshot) GhostCells() iter.Seq[Point] {
	return s.cellsAt(Point{Row: s.GhostRow, Col: s.Anchor.Col})
}

func (s Snapshot) cellsAt(anchor Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for cell := range s.Piece.Shape.Cells() {
			if !yield(anchor.Add(cell)) {
				return
			}
		}
	}
}
