package game

import (
	"fmt"
	"strings"

	"emoji-2048/internal/config"
	"emoji-2048/internal/skin"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// setupField is the row the cursor is on in the setup screen.
type setupField uint8

const (
	fieldWidth setupField = iota
	fieldHeight
	fieldSkin
	fieldCount
)

// setupState is the editable selection behind the setup screen.
type setupState struct {
	cfg   config.Config
	field setupField
}

// RunSetup shows the size and skin selection screen, prefilled with cfg,
// and blocks until the player confirms. Returns false if the player quits.
func RunSetup(screen tcell.Screen, cfg config.Config) (config.Config, bool) {
	st := &setupState{cfg: cfg.Clamp()}
	for {
		drawSetup(screen, st)
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return cfg, false
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			done, quit := st.handle(ev)
			if quit {
				return cfg, false
			}
			if done {
				return st.cfg, true
			}
		}
	}
}

// handle applies one key press.
func (st *setupState) handle(ev *tcell.EventKey) (done, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		st.field = (st.field + fieldCount - 1) % fieldCount
	case tcell.KeyDown:
		st.field = (st.field + 1) % fieldCount
	case tcell.KeyLeft:
		st.adjust(-1)
	case tcell.KeyRight:
		st.adjust(1)
	case tcell.KeyEnter:
		return true, false
	case tcell.KeyEscape:
		return false, true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'k', 'K':
			st.field = (st.field + fieldCount - 1) % fieldCount
		case 'j', 'J':
			st.field = (st.field + 1) % fieldCount
		case 'h', 'H', '-':
			st.adjust(-1)
		case 'l', 'L', '+':
			st.adjust(1)
		case 'q', 'Q':
			return false, true
		case '1', '2', '3', '4':
			if idx := int(r - '1'); idx < len(skin.All) {
				st.cfg.Skin = skin.All[idx]
				st.field = fieldSkin
			}
		}
	}
	return false, false
}

// adjust changes the selected field by delta.
func (st *setupState) adjust(delta int) {
	switch st.field {
	case fieldWidth:
		st.cfg.Width += delta
	case fieldHeight:
		st.cfg.Height += delta
	case fieldSkin:
		n := len(skin.All)
		st.cfg.Skin = skin.All[(int(st.cfg.Skin)+delta+n)%n]
	}
	st.cfg = st.cfg.Clamp()
}

// drawSetup renders the full setup UI to the screen.
func drawSetup(screen tcell.Screen, st *setupState) {
	screen.Clear()
	w, _ := screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(237, 194, 46)).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(237, 194, 46))
	previewStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))

	centerText := func(y int, text string, style tcell.Style) {
		x := (w - runewidth.StringWidth(text)) / 2
		if x < 0 {
			x = 0
		}
		drawScreenText(screen, x, y, text, style)
	}

	centerText(1, "✨ 2048 ✨", titleStyle)
	centerText(2, "Choose board size and tile skin", dimStyle)

	row := func(y int, field setupField, text string) {
		prefix := "  "
		style := normalStyle
		if st.field == field {
			prefix = "► "
			style = highlightStyle
		}
		drawScreenText(screen, 2, y, prefix+text, style)
	}

	row(4, fieldWidth, fmt.Sprintf("Width:  < %2d >", st.cfg.Width))
	row(5, fieldHeight, fmt.Sprintf("Height: < %2d >", st.cfg.Height))
	row(7, fieldSkin, fmt.Sprintf("Skin:   < %s >", st.cfg.Skin))

	// One line per skin with a preview of its first glyphs.
	for i, s := range skin.All {
		marker := " "
		style := dimStyle
		if s == st.cfg.Skin {
			marker = "*"
			style = previewStyle
		}
		line := fmt.Sprintf("    %s [%d] %-10s %s", marker, i+1, s, strings.Join(s.Preview(6), " "))
		drawScreenText(screen, 2, 8+i, line, style)
	}

	hintsY := 9 + len(skin.All)
	centerText(hintsY, "[↑/↓] Field   [←/→] Change   [1-4] Skin   [Enter] Play   [q] Quit", dimStyle)

	screen.Show()
}

// drawScreenText writes a string to the screen at (x, y) with the given style.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
