package board

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Grid is the rows×cols occupancy matrix of locked cells. Its dimensions
// never change after construction; line clears move rows in place.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a grid cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Occupied reports whether the cell at (row, col) is locked. Cells outside
// the grid report false.
func (g *Grid) Occupied(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Set marks the cell at (row, col). It panics when the cell is outside the grid.
func (g *Grid) Set(row, col int, occupied bool) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	g.cells[row][col] = occupied
}

// FillRow marks every cell in row, except the listed holes.
func (g *Grid) FillRow(row int, holes ...int) {
	for col := range g.cols {
		g.Set(row, col, true)
	}
	for _, col := range holes {
		g.Set(row, col, false)
	}
}

// FullRows returns the indices of every completely occupied row, top to bottom.
func (g *Grid) FullRows() []int {
	var full []int
	for i, row := range g.cells {
		if rowFull(row) {
			full = append(full, i)
		}
	}
	return full
}

func rowFull(row []bool) bool {
	for _, filled := range row {
		if !filled {
			return false
		}
	}
	return true
}

// clearFullRows removes every full row in a single pass and inserts one
// empty row at the top per removed row. Remaining rows keep their order.
func (g *Grid) clearFullRows() int {
	full := g.FullRows()
	if len(full) == 0 {
		return 0
	}

	remove := intmap.New[int, struct{}](len(full))
	for _, row := range full {
		remove.Put(row, struct{}{})
	}

	spare := make([][]bool, 0, len(full))
	dst := g.rows - 1
	for src := g.rows - 1; src >= 0; src-- {
		if _, ok := remove.Get(src); ok {
			spare = append(spare, g.cells[src])
			continue
		}
		g.cells[dst] = g.cells[src]
		dst--
	}

	for _, row := range spare {
		clear(row)
		g.cells[dst] = row
		dst--
	}

	return remove.Len()
}

// Cells returns a deep copy of the occupancy matrix.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for i, row := range g.cells {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// String renders the grid with '#' for locked and '.' for empty cells.
func (g *Grid) String() string {
	return Shape(g.cells).String()
}
