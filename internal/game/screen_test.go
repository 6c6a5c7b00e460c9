package game

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

func postKey(t *testing.T, screen tcell.Screen, key tcell.Key, r rune) {
	t.Helper()
	if err := screen.PostEvent(tcell.NewEventKey(key, r, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
}

// screenText returns all primary runes on the screen, one line per row.
func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mainc, _, _, _ := screen.GetContent(x, y)
			if mainc != 0 {
				sb.WriteRune(mainc)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestScreenSourceReadsKeys(t *testing.T) {
	screen := newSimScreen(t)
	src := NewScreenSource(screen)

	postKey(t, screen, tcell.KeyRune, 'a')
	postKey(t, screen, tcell.KeyDown, 0)
	postKey(t, screen, tcell.KeyRune, 'q')

	want := []Action{ActionLeft, ActionDown, ActionQuit}
	for i, w := range want {
		// Skip resize events the screen may queue on Init.
		got := src.Next()
		for got == ActionNone {
			got = src.Next()
		}
		if got != w {
			t.Errorf("Next() #%d = %v; want %v", i, got, w)
		}
	}
}

func TestScreenSourceResizeIsNoOp(t *testing.T) {
	screen := newSimScreen(t)
	if err := screen.PostEvent(tcell.NewEventResize(100, 30)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if got := NewScreenSource(screen).Next(); got != ActionNone {
		t.Errorf("Next() on resize = %v; want none", got)
	}
}

func TestScreenDisplay(t *testing.T) {
	screen := newSimScreen(t)
	b, err := board.FromCells([][]int{{2, 4}, {4, 2}}, skin.Vegetable, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	d := NewScreenDisplay(screen)

	d.Draw(b, StatePlaying)
	text := screenText(screen)
	if !strings.Contains(text, hintMessage) || !strings.Contains(text, "🥕") {
		t.Errorf("playing frame missing hint or tiles:\n%s", text)
	}

	d.Draw(b, StateGameOver)
	if text := screenText(screen); !strings.Contains(text, gameOverMessage) {
		t.Errorf("game over frame missing message:\n%s", text)
	}
}

func TestPlayUntilQuit(t *testing.T) {
	screen := newSimScreen(t)
	b, err := board.FromCells([][]int{{0, 2, 0, 2}}, skin.Numeric, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	postKey(t, screen, tcell.KeyLeft, 0)
	postKey(t, screen, tcell.KeyRune, 'Q')

	Play(screen, b, nil)

	if b.At(0, 0) != 4 {
		t.Errorf("At(0,0) = %d; want 4 after moving left", b.At(0, 0))
	}
	if got := b.EmptyCount(); got != 2 {
		t.Errorf("EmptyCount = %d; want 2 (merge plus one spawn)", got)
	}
}
