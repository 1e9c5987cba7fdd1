package debugui_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridLines(t *testing.T) {
	engine, err := board.New(board.Config{Rows: 5, Cols: 4}, board.WithFirstPiece(board.T))
	require.NoError(t, err)
	engine.Grid().Set(4, 0, true)

	assert.Equal(t, []string{
		"@@@.",
		".@..",
		"....",
		"+++.",
		"#+..",
	}, debugui.GridLines(engine.Snapshot()))
}

func TestGridLinesHidesGhostAfterGameOver(t *testing.T) {
	// Every catalog piece overlaps a locked O on a 2x3 board.
	engine, err := board.New(board.Config{Rows: 2, Cols: 3}, board.WithFirstPiece(board.O))
	require.NoError(t, err)
	require.False(t, engine.Drop())

	lines := debugui.GridLines(engine.Snapshot())
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.NotContains(t, line, "+")
		assert.Len(t, line, 3)
	}
}
