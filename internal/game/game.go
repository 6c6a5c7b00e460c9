// Package game runs the 2048 loop: draw the board, read one action, apply
// it, and stop accepting moves once no move is possible.
package game

import (
	"log/slog"

	"emoji-2048/internal/board"
)

// State tracks the main state machine.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// Source yields player actions. Next blocks until one is available.
type Source interface {
	Next() Action
}

// Display shows the board. It is called before every read from the Source.
type Display interface {
	Draw(b *board.Board, state State)
}

// Game is the top-level orchestrator for one board.
type Game struct {
	board   *board.Board
	source  Source
	display Display
	logger  *slog.Logger
	state   State
}

// New wires a board to its input source and display.
func New(b *board.Board, src Source, disp Display, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		board:   b,
		source:  src,
		display: disp,
		logger:  logger,
		state:   StatePlaying,
	}
}

// State returns the current loop state.
func (g *Game) State() State { return g.state }

// Board returns the board being played.
func (g *Game) Board() *board.Board { return g.board }

// Run is the main game loop. It returns when the source yields ActionQuit.
func (g *Game) Run() {
	g.logger.Info("game started",
		"width", g.board.Width(),
		"height", g.board.Height(),
		"skin", g.board.Skin().String())
	g.checkGameOver()

	for {
		g.display.Draw(g.board, g.state)
		if !g.Step(g.source.Next()) {
			g.logger.Info("quit", "state", g.state.String(), "max_tile", g.board.MaxTile())
			return
		}
	}
}

// Step applies one action and reports whether the loop should continue.
// Once the game is over only ActionQuit has any effect.
func (g *Game) Step(a Action) bool {
	if a == ActionQuit {
		return false
	}
	if g.state == StateGameOver {
		return true
	}
	dir, ok := a.Direction()
	if !ok {
		return true
	}
	moved := g.board.Move(dir)
	g.logger.Debug("move", "direction", dir.String(), "changed", moved)
	g.checkGameOver()
	return true
}

func (g *Game) checkGameOver() {
	if g.state == StatePlaying && !g.board.CanMove() {
		g.state = StateGameOver
		g.logger.Info("game over", "max_tile", g.board.MaxTile())
	}
}
