package board_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []board.Kind{board.I, board.T, board.O, board.S, board.Z, board.L, board.J}

func TestShapeRotate(t *testing.T) {
	t.Run("four rotations restore every catalog shape", func(t *testing.T) {
		for _, kind := range allKinds {
			original := kind.Shape()
			shape := original
			for range 4 {
				shape = shape.Rotate()
			}
			assert.True(t, original.Equal(shape), "%s after 4 rotations:\n%s", kind, shape)
		}
	})

	t.Run("dimensions swap", func(t *testing.T) {
		i := board.I.Shape()
		require.Equal(t, 1, i.Height())
		require.Equal(t, 4, i.Width())

		rotated := i.Rotate()
		assert.Equal(t, 4, rotated.Height())
		assert.Equal(t, 1, rotated.Width())
	})

	t.Run("clockwise", func(t *testing.T) {
		assert.Equal(t, ".#\n##\n.#", board.T.Shape().Rotate().String())
		assert.Equal(t, "##\n#.\n#.", board.L.Shape().Rotate().String())
	})

	t.Run("does not alias the source", func(t *testing.T) {
		shape := board.S.Shape()
		rotated := shape.Rotate()
		rotated[0][0] = !rotated[0][0]
		assert.True(t, board.S.Shape().Equal(shape))
	})

	t.Run("O piece rotates without special casing", func(t *testing.T) {
		o := board.O.Shape()
		assert.True(t, o.Equal(o.Rotate()))
	})
}

func TestShapeCells(t *testing.T) {
	var cells []board.Point
	for cell := range board.Z.Shape().Cells() {
		cells = append(cells, cell)
	}

	assert.Equal(t, []board.Point{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
		{Row: 1, Col: 2},
	}, cells)
}

func TestCatalog(t *testing.T) {
	for i, kind := range allKinds {
		piece := board.NewPiece(kind)
		assert.Equal(t, i, piece.Color, "color index for %s", kind)
		assert.Equal(t, board.Palette[i], piece.RGBA())

		count := 0
		for range piece.Shape.Cells() {
			count++
		}
		assert.Equal(t, 4, count, "%s should have four cells", kind)
	}

	assert.Equal(t, "Kind(?)", board.Kind(42).String())
}
