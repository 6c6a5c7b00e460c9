package render

import (
	"fmt"

	"emoji-2048/internal/board"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MinCellWidth matches a five-column right-aligned field per tile.
const MinCellWidth = 5

// Renderer draws a board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	layout *Layout
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the layout used by the last DrawFrame, or nil.
func (r *Renderer) Layout() *Layout { return r.layout }

// DrawFrame clears the screen and draws the title and the grid. The cell
// width is recomputed every frame so a new, wider glyph never breaks the
// columns.
func (r *Renderer) DrawFrame(b *board.Board) {
	r.screen.Clear()
	sw, _ := r.screen.Size()

	glyphs := b.Render()
	r.layout = NewLayout(b.Width(), b.Height(), CellWidth(glyphs), sw)

	title := fmt.Sprintf("2048 (%dx%d)", b.Width(), b.Height())
	r.drawText(r.layout.OriginX, 0, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			sx, sy := r.layout.CellToScreen(x, y)
			glyph := glyphs[y*b.Width()+x]
			r.drawText(sx, sy, runewidth.FillLeft(glyph, r.layout.CellWidth), tileStyle(b.At(x, y)))
		}
	}
}

// CellWidth returns the column width that fits the widest glyph plus one
// column of padding, never less than MinCellWidth.
func CellWidth(glyphs []string) int {
	w := MinCellWidth
	for _, g := range glyphs {
		if gw := runewidth.StringWidth(g) + 1; gw > w {
			w = gw
		}
	}
	return w
}
