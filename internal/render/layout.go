package render

// Layout places board cells on the screen. Every cell is CellWidth columns
// wide so numbers, letters and two-column emoji line up.
type Layout struct {
	OriginX   int // screen column of the left edge of cell (0, 0)
	OriginY   int // screen row of board row 0
	CellWidth int // in terminal columns
	Cols      int
	Rows      int
}

// titleRows is the space kept above the grid for the title line.
const titleRows = 2

// NewLayout centers a cols x rows grid horizontally on a screen screenW
// columns wide and puts it just below the title.
func NewLayout(cols, rows, cellWidth, screenW int) *Layout {
	l := &Layout{CellWidth: cellWidth, Cols: cols, Rows: rows, OriginY: titleRows}
	l.OriginX = (screenW - l.Width()) / 2
	if l.OriginX < 0 {
		l.OriginX = 0
	}
	return l
}

// Width returns the grid width in columns.
func (l *Layout) Width() int { return l.Cols * l.CellWidth }

// CellToScreen converts board (x, y) to the screen position of the cell's
// left edge.
func (l *Layout) CellToScreen(x, y int) (sx, sy int) {
	return l.OriginX + x*l.CellWidth, l.OriginY + y
}

// Bottom returns the first screen row below the grid.
func (l *Layout) Bottom() int { return l.OriginY + l.Rows }
