package game

import (
	"log/slog"

	"emoji-2048/internal/board"
	"emoji-2048/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	hintMessage     = "Arrows/WASD to move, Q to quit."
	gameOverMessage = "Game over! Press Q to quit."
)

// ScreenSource reads actions from a tcell screen's event queue.
type ScreenSource struct {
	screen tcell.Screen
}

// NewScreenSource creates a Source backed by screen.
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	return &ScreenSource{screen: screen}
}

// Next blocks for the next event. Resizes re-sync the screen and come back
// as ActionNone so the loop redraws. A finalized screen reads as quit.
func (s *ScreenSource) Next() Action {
	ev := s.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return ActionQuit
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return keyToAction(ev)
	}
	return ActionNone
}

// ScreenDisplay draws the board and a status line through a Renderer.
type ScreenDisplay struct {
	renderer *render.Renderer
}

// NewScreenDisplay creates a Display drawing onto screen.
func NewScreenDisplay(screen tcell.Screen) *ScreenDisplay {
	return &ScreenDisplay{renderer: render.NewRenderer(screen)}
}

// Draw renders one frame.
func (d *ScreenDisplay) Draw(b *board.Board, state State) {
	d.renderer.DrawFrame(b)
	if state == StateGameOver {
		d.renderer.DrawHUD(tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), gameOverMessage)
		return
	}
	d.renderer.DrawHUD(tcell.StyleDefault.Foreground(tcell.ColorLightYellow), hintMessage)
}

// Play runs one game on screen until the player quits.
func Play(screen tcell.Screen, b *board.Board, logger *slog.Logger) {
	New(b, NewScreenSource(screen), NewScreenDisplay(screen), logger).Run()
}
