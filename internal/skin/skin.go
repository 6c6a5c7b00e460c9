package skin

import (
	"math/bits"
	"strconv"
	"strings"
)

// Skin selects how a tile value is drawn. It never affects game logic.
type Skin uint8

const (
	Numeric Skin = iota
	Letter
	Fish
	Vegetable
)

// Placeholders shared by every skin.
const (
	Empty   = "."
	Unknown = "?"
)

// All lists the skins in menu order.
var All = []Skin{Numeric, Letter, Fish, Vegetable}

// Glyph tables, indexed by log2(value)-1: entry 0 is the 2 tile, entry 1 the 4 tile, and so on.
// Numeric has no table; it prints the value itself.
var (
	letters = func() []string {
		out := make([]string, 26)
		for i := range out {
			out[i] = string(rune('A' + i))
		}
		return out
	}()
	fishes     = []string{"🐟", "🐠", "🐬", "🦈", "🐡", "🐳"}
	vegetables = []string{"🥕", "🍅", "🥦", "🌽", "🍆", "🥒"}
)

// Parse maps a selector to a skin. Unrecognised selectors fall back to Numeric.
func Parse(s string) Skin {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "letter", "letters":
		return Letter
	case "f", "fish":
		return Fish
	case "v", "veg", "vegetable", "vegetables":
		return Vegetable
	}
	return Numeric
}

// String returns the long selector name accepted by Parse.
func (s Skin) String() string {
	switch s {
	case Letter:
		return "letter"
	case Fish:
		return "fish"
	case Vegetable:
		return "vegetable"
	}
	return "numeric"
}

// Glyph returns the display glyph for a tile value.
// 0 renders as Empty; values outside the skin's table (or not a power of
// two) render as Unknown.
func (s Skin) Glyph(value int) string {
	if value == 0 {
		return Empty
	}
	if value < 2 || value&(value-1) != 0 {
		return Unknown
	}
	table := s.table()
	if table == nil {
		return strconv.Itoa(value)
	}
	idx := bits.Len(uint(value)) - 2
	if idx < 0 || idx >= len(table) {
		return Unknown
	}
	return table[idx]
}

// Preview returns up to n glyphs of the skin starting at the 2 tile.
func (s Skin) Preview(n int) []string {
	out := make([]string, 0, n)
	for v := 2; len(out) < n; v *= 2 {
		g := s.Glyph(v)
		if g == Unknown {
			break
		}
		out = append(out, g)
	}
	return out
}

func (s Skin) table() []string {
	switch s {
	case Letter:
		return letters
	case Fish:
		return fishes
	case Vegetable:
		return vegetables
	}
	return nil
}
