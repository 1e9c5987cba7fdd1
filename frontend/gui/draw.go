package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/board"
)

var (
	ghostColor  = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	gridColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	textLineGap = 16
)

// CellRect returns the pixel rectangle of board cell (row, col).
func CellRect(row, col, cellSize int) (x, y, w, h float32) {
	return float32(col * cellSize), float32(row * cellSize), float32(cellSize), float32(cellSize)
}

func fillCell(screen *ebiten.Image, p board.Point, cellSize int, clr color.Color) {
	x, y, w, h := CellRect(p.Row, p.Col, cellSize)
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.Black, false)
}

// drawBoard renders a snapshot: background, locked cells in one color, the
// landing ghost, the falling piece in its catalog color and the score.
func drawBoard(screen *ebiten.Image, snap board.Snapshot, cellSize int) {
	w, h := float32(snap.Cols*cellSize), float32(snap.Rows*cellSize)
	vector.DrawFilledRect(screen, 0, 0, w, h, board.BackgroundColor, false)
	vector.StrokeRect(screen, 0, 0, w, h, 1, gridColor, false)

	for r, row := range snap.Cells {
		for c, filled := range row {
			if filled {
				fillCell(screen, board.Point{Row: r, Col: c}, cellSize, board.LockedColor)
			}
		}
	}

	if !snap.Over {
		for p := range snap.GhostCells() {
			if p.Row >= 0 && !snap.Cells[p.Row][p.Col] {
				fillCell(screen, p, cellSize, ghostColor)
			}
		}
	}

	for p := range snap.PieceCells() {
		if p.Row >= 0 {
			fillCell(screen, p, cellSize, snap.Piece.RGBA())
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), 4, 2)
	if snap.Over {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 4, 2+textLineGap)
	}
}

func drawMenu(screen *ebiten.Image, lines []string) {
	screen.Fill(board.BackgroundColor)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 20, 100+i*textLineGap*2)
	}
}
