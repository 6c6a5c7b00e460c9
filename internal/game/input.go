package game

import (
	"emoji-2048/internal/board"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Direction returns the board direction for a movement action.
func (a Action) Direction() (board.Direction, bool) {
	switch a {
	case ActionLeft:
		return board.Left, true
	case ActionRight:
		return board.Right, true
	case ActionUp:
		return board.Up, true
	case ActionDown:
		return board.Down, true
	}
	return 0, false
}

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionUp
	case 's', 'S':
		return ActionDown
	case 'd', 'D':
		return ActionRight
	case 'a', 'A':
		return ActionLeft
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Script is a Source that replays a fixed list of actions and then quits.
type Script []Action

// Next pops the next scripted action.
func (s *Script) Next() Action {
	if len(*s) == 0 {
		return ActionQuit
	}
	a := (*s)[0]
	*s = (*s)[1:]
	return a
}
