// Package board holds the 2048 grid: storage, tile spawning, the four
// directional slide/merge moves and the game-over check.
package board

import (
	"errors"
	"fmt"
	"math/rand"

	"emoji-2048/internal/skin"
)

var (
	// ErrInvalidSize is returned for a width or height below 1.
	ErrInvalidSize = errors.New("board size must be at least 1x1")
	// ErrInvalidTile is returned by FromCells for ragged rows or a value
	// that is neither 0 nor a power of two.
	ErrInvalidTile = errors.New("invalid tile")
)

// Board is a fixed-size grid of tile values. 0 is an empty cell; any other
// value is a power of two >= 2.
type Board struct {
	width, height int
	cells         [][]int // cells[y][x]
	skin          skin.Skin
	rng           *rand.Rand
}

// New creates an empty width x height board and spawns two tiles.
func New(width, height int, s skin.Skin, rng *rand.Rand) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new board %dx%d: %w", width, height, ErrInvalidSize)
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	b := &Board{width: width, height: height, cells: cells, skin: s, rng: rng}
	b.Spawn()
	b.Spawn()
	return b, nil
}

// FromCells builds a board from explicit rows without spawning anything.
// The rows are copied.
func FromCells(rows [][]int, s skin.Skin, rng *rand.Rand) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("from cells: %w", ErrInvalidSize)
	}
	width := len(rows[0])
	cells := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrInvalidTile)
		}
		for x, v := range row {
			if v != 0 && (v < 2 || v&(v-1) != 0) {
				return nil, fmt.Errorf("value %d at (%d,%d): %w", v, x, y, ErrInvalidTile)
			}
		}
		cells[y] = append([]int(nil), row...)
	}
	return &Board{width: width, height: len(rows), cells: cells, skin: s, rng: rng}, nil
}

func (b *Board) Width() int      { return b.width }
func (b *Board) Height() int     { return b.height }
func (b *Board) Skin() skin.Skin { return b.skin }

// InBounds reports whether (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the value at (x, y). Panics if out of bounds.
func (b *Board) At(x, y int) int {
	return b.cells[y][x]
}

// Cells returns a copy of the grid, row-major.
func (b *Board) Cells() [][]int {
	out := make([][]int, b.height)
	for y, row := range b.cells {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the largest value on the board.
func (b *Board) MaxTile() int {
	best := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v > best {
				best = v
			}
		}
	}
	return best
}

// Spawn places a 2 (90%) or a 4 (10%) on a uniformly chosen empty cell.
// It returns false, changing nothing, when the board is full.
func (b *Board) Spawn() bool {
	var empty []Point
	for y, row := range b.cells {
		for x, v := range row {
			if v == 0 {
				empty = append(empty, Point{X: x, Y: y})
			}
		}
	}
	if len(empty) == 0 {
		return false
	}
	p := empty[b.rng.Intn(len(empty))]
	v := 2
	if b.rng.Intn(10) == 0 {
		v = 4
	}
	b.cells[p.Y][p.X] = v
	return true
}

// Move slides and merges every row or column toward d. If anything changed
// one new tile is spawned and Move returns true; otherwise the board is left
// untouched and Move returns false.
func (b *Board) Move(d Direction) bool {
	moved := false
	for _, line := range d.lines(b.width, b.height) {
		if b.slide(line) {
			moved = true
		}
	}
	if moved {
		b.Spawn()
	}
	return moved
}

// slide compacts one line toward its first point, merging equal neighbours
// at most once per tile, and reports whether any cell changed.
func (b *Board) slide(line []Point) bool {
	out := make([]int, len(line))
	next, last := 0, -1
	for _, p := range line {
		v := b.cells[p.Y][p.X]
		if v == 0 {
			continue
		}
		if last >= 0 && out[last] == v {
			out[last] *= 2
			// A merged slot takes no further merges this pass.
			last = -1
			continue
		}
		out[next] = v
		last = next
		next++
	}

	changed := false
	for i, p := range line {
		if b.cells[p.Y][p.X] != out[i] {
			b.cells[p.Y][p.X] = out[i]
			changed = true
		}
	}
	return changed
}

// CanMove reports whether some move could still change the board: an empty
// cell exists or two orthogonally adjacent cells hold the same value.
func (b *Board) CanMove() bool {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			v := b.cells[y][x]
			if v == 0 {
				return true
			}
			if x+1 < b.width && b.cells[y][x+1] == v {
				return true
			}
			if y+1 < b.height && b.cells[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// Render returns the glyph for every cell, row-major, using the board's skin.
func (b *Board) Render() []string {
	out := make([]string, 0, b.width*b.height)
	for _, row := range b.cells {
		for _, v := range row {
			out = append(out, b.skin.Glyph(v))
		}
	}
	return out
}
