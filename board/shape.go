package board

import (
	"iter"
	"strings"
)

// Point is a (row, col) coordinate. It is used both for absolute grid
// positions and for offsets applied to an anchor.
type Point struct {
	Row, Col int
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Offsets accepted by Translate.
var (
	Zero  = Point{}
	Left  = Point{Row: 0, Col: -1}
	Right = Point{Row: 0, Col: 1}
	Down  = Point{Row: 1, Col: 0}
)

// Shape is a rectangular occupancy matrix in a piece's local frame.
// Every row has the same length.
type Shape [][]bool

// mustShape builds a Shape from rows of '1' (occupied) and '0' (empty).
func mustShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for i, row := range rows {
		if i > 0 && len(row) != len(rows[0]) {
			panic("board: ragged shape row " + row)
		}
		shape[i] = make([]bool, len(row))
		for j, c := range row {
			shape[i][j] = c == '1'
		}
	}
	return shape
}

// Height returns the number of rows in the shape.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	for i := range s {
		clone[i] = append([]bool(nil), s[i]...)
	}
	return clone
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90 degrees clockwise: the row order is
// reversed and the result transposed. A h×w shape becomes w×h.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for j := range w {
		rotated[j] = make([]bool, h)
		for i := range h {
			rotated[j][i] = s[h-1-i][j]
		}
	}
	return rotated
}

// Cells yields the local coordinates of every occupied cell, row by row.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i, row := range s {
			for j, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{Row: i, Col: j}) {
					return
				}
			}
		}
	}
}

// String renders the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var b strings.Builder
	for i, row := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
