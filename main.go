// emoji-2048 is the 2048 tile-merging puzzle in the terminal, with
// configurable board size and numeric, letter, fish or vegetable tiles.
//
// Usage:
//
//	emoji-2048 [--width 4] [--height 4] [--skin numeric|letter|fish|vegetable]
//
// Without any of --width, --height or --skin a setup screen asks for them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"emoji-2048/internal/board"
	"emoji-2048/internal/config"
	"emoji-2048/internal/game"
	"emoji-2048/internal/skin"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	// Load .env if present; flags and the real environment still win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	def := config.Default()
	return &cli.Command{
		Name:  "emoji-2048",
		Usage: "play 2048 in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"W"},
				Value:   def.Width,
				Usage:   "board width in cells",
				Sources: cli.EnvVars("EMOJI2048_WIDTH"),
			},
			&cli.IntFlag{
				Name:    "height",
				Aliases: []string{"H"},
				Value:   def.Height,
				Usage:   "board height in cells",
				Sources: cli.EnvVars("EMOJI2048_HEIGHT"),
			},
			&cli.StringFlag{
				Name:    "skin",
				Aliases: []string{"s"},
				Value:   def.Skin.String(),
				Usage:   "tile skin: numeric (s), letter (l), fish (f) or vegetable (v)",
				Sources: cli.EnvVars("EMOJI2048_SKIN"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "append logs to this file (logging is off otherwise)",
				Sources: cli.EnvVars("EMOJI2048_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log every move",
				Sources: cli.EnvVars("EMOJI2048_DEBUG"),
			},
		},
		Action: run,
	}
}

// run validates the configuration, opens the screen and plays one game.
func run(_ context.Context, cmd *cli.Command) error {
	cfg := configFromCommand(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	askSetup := !cmd.IsSet("width") && !cmd.IsSet("height") && !cmd.IsSet("skin")

	logger, closeLog, err := newLogger(cmd.String("log-file"), cmd.Bool("debug"))
	if err != nil {
		return err
	}
	defer closeLog.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	if askSetup {
		var ok bool
		if cfg, ok = game.RunSetup(screen, cfg); !ok {
			return nil
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b, err := board.New(cfg.Width, cfg.Height, cfg.Skin, rng)
	if err != nil {
		return err
	}
	game.Play(screen, b, logger)
	return nil
}

// configFromCommand reads the game settings from flags and env vars.
// Unknown skins fall back to numeric.
func configFromCommand(cmd *cli.Command) config.Config {
	return config.Config{
		Width:  cmd.Int("width"),
		Height: cmd.Int("height"),
		Skin:   skin.Parse(cmd.String("skin")),
	}
}

// newLogger returns a text logger appending to path, or a discarding
// logger when path is empty. The screen owns stdout while a game runs.
func newLogger(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
