package board

import "image/color"

// Kind identifies one of the seven catalog shapes.
type Kind int

const (
	I Kind = iota
	T
	O
	S
	Z
	L
	J
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

var catalog = [KindCount]Shape{
	I: mustShape("1111"),
	T: mustShape("111", "010"),
	O: mustShape("11", "11"),
	S: mustShape("011", "110"),
	Z: mustShape("110", "011"),
	L: mustShape("100", "111"),
	J: mustShape("001", "111"),
}

var kindNames = [KindCount]string{"I", "T", "O", "S", "Z", "L", "J"}

// Palette holds the falling-piece colors, indexed by catalog position.
var Palette = [KindCount]color.RGBA{
	{R: 0, G: 255, B: 255, A: 255}, // cyan
	{R: 255, G: 165, B: 0, A: 255}, // orange
	{R: 0, G: 0, B: 255, A: 255},   // blue
	{R: 255, G: 0, B: 0, A: 255},   // red
	{R: 128, G: 0, B: 128, A: 255}, // purple
	{R: 0, G: 255, B: 0, A: 255},   // green
	{R: 255, G: 255, B: 0, A: 255}, // yellow
}

var (
	// LockedColor is used for every locked grid cell.
	LockedColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// BackgroundColor fills empty cells.
	BackgroundColor = color.RGBA{A: 255}
)

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Shape returns a fresh copy of the catalog matrix for k in its spawn orientation.
func (k Kind) Shape() Shape {
	return catalog[k].Clone()
}

// Piece is a catalog shape together with its render color index. The color
// is fixed when the piece is created and survives rotation unchanged.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color int
}

// NewPiece returns the spawn-orientation piece for k.
func NewPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Shape(),
		Color: int(k),
	}
}

// RGBA returns the palette entry for the piece's color index.
func (p Piece) RGBA() color.RGBA {
	return Palette[p.Color]
}

// Clone returns a copy of p that does not share its shape matrix.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
