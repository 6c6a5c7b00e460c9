package render

import (
	"math/bits"

	"github.com/gdamore/tcell/v2"
)

// TileColors tints text glyphs (numbers and letters) by tile rank: index 0
// is the 2 tile, index 1 the 4 tile and so on, wrapping after the last entry.
// Emoji are drawn by the terminal in their own colors and ignore the tint.
var TileColors = []tcell.Color{
	tcell.NewRGBColor(238, 228, 218), // 2
	tcell.NewRGBColor(237, 224, 200), // 4
	tcell.NewRGBColor(242, 177, 121), // 8
	tcell.NewRGBColor(245, 149, 99),  // 16
	tcell.NewRGBColor(246, 124, 95),  // 32
	tcell.NewRGBColor(246, 94, 59),   // 64
	tcell.NewRGBColor(237, 207, 114), // 128
	tcell.NewRGBColor(237, 204, 97),  // 256
	tcell.NewRGBColor(237, 200, 80),  // 512
	tcell.NewRGBColor(237, 197, 63),  // 1024
	tcell.NewRGBColor(237, 194, 46),  // 2048
	tcell.NewRGBColor(180, 100, 255), // beyond
}

// EmptyColor is used for the empty-cell placeholder.
var EmptyColor = tcell.ColorGray

// tileStyle returns the style for a tile value.
func tileStyle(value int) tcell.Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	if value <= 0 {
		return base.Foreground(EmptyColor)
	}
	rank := bits.Len(uint(value)) - 2
	if rank < 0 {
		rank = 0
	}
	return base.Foreground(TileColors[rank%len(TileColors)]).Bold(rank >= 6)
}
