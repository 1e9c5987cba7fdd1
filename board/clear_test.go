package board

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearNaive removes the first full row it finds, inserts an empty row on
// top and starts over until no full row is left.
func clearNaive(cells [][]bool, cols int) ([][]bool, int) {
	cleared := 0
	for {
		idx := slices.IndexFunc(cells, rowFull)
		if idx < 0 {
			return cells, cleared
		}
		cells = slices.Delete(cells, idx, idx+1)
		cells = slices.Insert(cells, 0, make([]bool, cols))
		cleared++
	}
}

func randomGrid(rng *rand.Rand, rows, cols, full int) *Grid {
	g := newGrid(rows, cols)
	for _, row := range rng.Perm(rows)[:full] {
		g.FillRow(row)
	}
	for row := range rows {
		if rowFull(g.cells[row]) {
			continue
		}
		for col := range cols {
			g.cells[row][col] = rng.IntN(3) == 0
		}
		if rowFull(g.cells[row]) {
			g.cells[row][rng.IntN(cols)] = false
		}
	}
	return g
}

func TestClearFullRowsMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	const rows, cols = 20, 10

	for full := 0; full <= rows; full++ {
		for trial := range 25 {
			g := randomGrid(rng, rows, cols, full)
			want, wantCleared := clearNaive(g.Cells(), cols)

			cleared := g.clearFullRows()

			assert.Equal(t, wantCleared, cleared, "full=%d trial=%d", full, trial)
			assert.Equal(t, want, g.cells, "full=%d trial=%d", full, trial)
			for _, row := range g.cells {
				assert.Len(t, row, cols)
			}
		}
	}
}

func TestClearFullRowsAdjacent(t *testing.T) {
	g := newGrid(6, 3)
	g.Set(0, 1, true)
	g.Set(1, 0, true)
	g.FillRow(2)
	g.FillRow(3)
	g.Set(4, 2, true)
	g.FillRow(5)

	assert.Equal(t, 3, g.clearFullRows())
	assert.Equal(t, "...\n...\n...\n.#.\n#..\n..#", g.String())
}

func TestClearFullRowsReusesNoSharedRows(t *testing.T) {
	g := newGrid(4, 2)
	g.FillRow(1)
	g.FillRow(2)
	g.Set(3, 0, true)

	g.clearFullRows()
	g.Set(0, 0, true)

	assert.Equal(t, "#.\n..\n..\n#.", g.String())
}
