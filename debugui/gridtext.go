package debugui

import "github.com/plus3/blockfall/board"

const (
	glyphEmpty  = '.'
	glyphLocked = '#'
	glyphPiece  = '@'
	glyphGhost  = '+'
)

// GridLines renders a snapshot as one string per row: '#' locked, '@' the
// falling piece, '+' its landing spot, '.' empty. Piece cells above the
// grid are not shown.
func GridLines(snap board.Snapshot) []string {
	rows := make([][]rune, snap.Rows)
	for r := range rows {
		rows[r] = make([]rune, snap.Cols)
		for c := range rows[r] {
			if snap.Cells[r][c] {
				rows[r][c] = glyphLocked
			} else {
				rows[r][c] = glyphEmpty
			}
		}
	}

	put := func(p board.Point, glyph rune) {
		if p.Row >= 0 && p.Row < snap.Rows && p.Col >= 0 && p.Col < snap.Cols {
			rows[p.Row][p.Col] = glyph
		}
	}
	if !snap.Over {
		for p := range snap.GhostCells() {
			put(p, glyphGhost)
		}
	}
	for p := range snap.PieceCells() {
		put(p, glyphPiece)
	}

	lines := make([]string, len(rows))
	for r, row := range rows {
		lines[r] = string(row)
	}
	return lines
}
