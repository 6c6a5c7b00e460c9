package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders message lines below the grid and flushes the screen.
// The first line uses style, the rest are dimmed.
func (r *Renderer) DrawHUD(style tcell.Style, messages ...string) {
	x, y := 0, 0
	if r.layout != nil {
		x, y = r.layout.OriginX, r.layout.Bottom()+1
		r.drawHLine(y, x, r.layout.Width(), tcell.ColorGray)
		y++
	}
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, msg := range messages {
		st := dim
		if i == 0 {
			st = style
		}
		r.drawText(x, y+i, msg, st)
	}
	r.screen.Show()
}

func (r *Renderer) drawHLine(y, x, width int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, '─', nil, style)
	}
}

// drawText writes text at (x, y), advancing by each rune's display width,
// and returns the column after the last rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
