// Package config holds the settings a game is started with.
package config

import (
	"errors"
	"fmt"

	"emoji-2048/internal/skin"
)

// MaxSide bounds width and height on the setup screen so the grid fits a
// normal terminal. Flags and env vars may go beyond it.
const MaxSide = 12

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes one game.
type Config struct {
	Width  int
	Height int
	Skin   skin.Skin
}

// Default returns the classic 4x4 numeric game.
func Default() Config {
	return Config{Width: 4, Height: 4, Skin: skin.Numeric}
}

// Validate rejects boards smaller than 1x1.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("%w: width %d must be at least 1", ErrInvalidConfig, c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("%w: height %d must be at least 1", ErrInvalidConfig, c.Height)
	}
	return nil
}

// Clamp limits width and height to 1..MaxSide.
func (c Config) Clamp() Config {
	c.Width = clamp(c.Width, 1, MaxSide)
	c.Height = clamp(c.Height, 1, MaxSide)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
