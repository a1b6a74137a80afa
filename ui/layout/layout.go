// Package layout maps grid cells to window pixels.
package layout

const borderPadding = 10 // Padding around the board

// Layout places a square board centred in the window.
type Layout struct {
	OffsetX   float32
	OffsetY   float32
	BoardSize float32
	CellSize  float32
}

// New fits a board of squares x squares cells into a screenWidth x
// screenHeight window, leaving borderPadding on the short side.
func New(screenWidth, screenHeight float32, squares int) Layout {
	gameSize := min(screenWidth, screenHeight)
	board := gameSize - 2*borderPadding
	return Layout{
		OffsetX:   (screenWidth-gameSize)/2 + borderPadding,
		OffsetY:   (screenHeight-gameSize)/2 + borderPadding,
		BoardSize: board,
		CellSize:  board / float32(squares),
	}
}

// Cell returns the top left pixel of grid cell (x, y).
func (l Layout) Cell(x, y int) (float32, float32) {
	return l.OffsetX + float32(x)*l.CellSize, l.OffsetY + float32(y)*l.CellSize
}
