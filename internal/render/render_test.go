package render

import (
	"math/rand"
	"strings"
	"testing"

	"emoji-2048/internal/board"
	"emoji-2048/internal/skin"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func mustBoard(t *testing.T, rows [][]int, s skin.Skin) *board.Board {
	t.Helper()
	b, err := board.FromCells(rows, s, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return b
}

// rowText returns the primary runes of screen row y.
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc != 0 {
			sb.WriteRune(mainc)
		}
	}
	return sb.String()
}

func TestCellWidth(t *testing.T) {
	cases := []struct {
		name   string
		glyphs []string
		want   int
	}{
		{"small numbers", []string{".", "2", "2048"}, MinCellWidth},
		{"wide number", []string{"1048576"}, 8},
		{"emoji", []string{"🐟", "🐳", "."}, MinCellWidth},
		{"none", nil, MinCellWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CellWidth(tc.glyphs); got != tc.want {
				t.Errorf("CellWidth(%v) = %d; want %d", tc.glyphs, got, tc.want)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout(4, 4, 5, 80)
	if l.OriginX != 30 {
		t.Errorf("OriginX = %d; want 30", l.OriginX)
	}
	sx, sy := l.CellToScreen(1, 2)
	if sx != 35 || sy != 4 {
		t.Errorf("CellToScreen(1,2) = (%d,%d); want (35,4)", sx, sy)
	}
	if got := l.Bottom(); got != 6 {
		t.Errorf("Bottom() = %d; want 6", got)
	}
}

func TestLayoutWiderThanScreen(t *testing.T) {
	l := NewLayout(20, 2, 6, 40)
	if l.OriginX != 0 {
		t.Errorf("OriginX = %d; want 0 when the grid overflows", l.OriginX)
	}
}

func TestDrawFrameNumeric(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	r.DrawFrame(mustBoard(t, [][]int{{2, 0}, {0, 1024}}, skin.Numeric))

	if got := rowText(screen, 0); !strings.Contains(got, "2048 (2x2)") {
		t.Errorf("title row = %q; want it to contain the board size", got)
	}
	if got := rowText(screen, 2); !strings.Contains(got, "    2    .") {
		t.Errorf("row 0 = %q; want right-aligned \"2\" then \".\"", got)
	}
	if got := rowText(screen, 3); !strings.Contains(got, "    . 1024") {
		t.Errorf("row 1 = %q; want \".\" then \"1024\"", got)
	}
}

func TestDrawFrameFish(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	r.DrawFrame(mustBoard(t, [][]int{{2, 4}, {128, 0}}, skin.Fish))

	if got := rowText(screen, 2); !strings.Contains(got, "🐟") || !strings.Contains(got, "🐠") {
		t.Errorf("row 0 = %q; want fish glyphs", got)
	}
	if got := rowText(screen, 3); !strings.Contains(got, skin.Unknown) {
		t.Errorf("row 1 = %q; want the unknown placeholder for 128", got)
	}
}

func TestDrawHUDBelowGrid(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	r.DrawFrame(mustBoard(t, [][]int{{2, 4}, {4, 2}}, skin.Letter))
	r.DrawHUD(tcell.StyleDefault, "Game over! Press Q to quit.", "hint")

	y := r.Layout().Bottom() + 2
	if got := rowText(screen, y); !strings.Contains(got, "Game over!") {
		t.Errorf("row %d = %q; want the game over message", y, got)
	}
	if got := rowText(screen, y+1); !strings.Contains(got, "hint") {
		t.Errorf("row %d = %q; want the second message", y+1, got)
	}
}

func TestTileStyleWraps(t *testing.T) {
	// Ranks past the end of the table must not panic.
	for v := 2; v <= 1<<30; v *= 2 {
		_ = tileStyle(v)
	}
	_ = tileStyle(0)
}
