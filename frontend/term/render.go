package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// Each board cell is two terminal columns wide so cells look square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	lockedStyle = tcell.StyleDefault.Foreground(rgb(board.LockedColor))
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RenderSystem draws the session state at the end of every frame.
type RenderSystem struct {
	Screen  tcell.Screen
	Session *game.Session
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	frame.Defer(func() {
		Draw(s.Screen, s.Session.Snapshot())
	})
}

// CellOrigin returns the screen position of the left half of board cell
// (row, col). The board is framed by a one-character border.
func CellOrigin(row, col int) (x, y int) {
	return 1 + col*cellWidth, 1 + row
}

// Draw renders a snapshot: border, locked cells, the landing ghost, the
// falling piece and the score.
func Draw(screen tcell.Screen, snap board.Snapshot) {
	screen.Clear()

	right, bottom := CellOrigin(snap.Rows, snap.Cols)
	for y := 0; y <= bottom; y++ {
		screen.SetContent(0, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := 0; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(0, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)

	for r, row := range snap.Cells {
		for c, filled := range row {
			if filled {
				drawCell(screen, r, c, '[', ']', lockedStyle)
			}
		}
	}

	if !snap.Over {
		for p := range snap.GhostCells() {
			if visible(snap, p) && !snap.Cells[p.Row][p.Col] {
				drawCell(screen, p.Row, p.Col, '░', '░', ghostStyle)
			}
		}
	}

	pieceStyle := tcell.StyleDefault.Foreground(rgb(snap.Piece.RGBA()))
	for p := range snap.PieceCells() {
		if visible(snap, p) {
			drawCell(screen, p.Row, p.Col, '█', '█', pieceStyle)
		}
	}

	drawText(screen, right+3, 1, textStyle, "SCORE")
	drawText(screen, right+3, 2, textStyle, fmt.Sprintf("%d", snap.Score))
	if snap.Over {
		drawText(screen, right+3, 4, textStyle, "GAME OVER")
	}

	screen.Show()
}

func visible(snap board.Snapshot, p board.Point) bool {
	return p.Row >= 0 && p.Row < snap.Rows && p.Col >= 0 && p.Col < snap.Cols
}

func drawCell(screen tcell.Screen, row, col int, left, right rune, style tcell.Style) {
	x, y := CellOrigin(row, col)
	screen.SetContent(x, y, left, nil, style)
	screen.SetContent(x+1, y, right, nil, style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
