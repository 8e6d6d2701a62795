// Command term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/tetris1/world"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed of the game")
	policy := flag.String("policy", "SkipAhead", "rotation policy: SkipAhead, Revert")
	demo := flag.Bool("demo", false, "let the AI play")
	mute := flag.Bool("mute", false, "no sound")
	debug := flag.String("debug", "", "write a debug log to this file")
	flag.Parse()

	log, closeLog, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	p, err := world.ParseRotationPolicy(*policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var snd *sound
	if !*mute {
		snd, err = newSound()
		if err != nil {
			// Non-fatal, the game can run without sound.
			log.Warn("audio initialization failed", "err", err)
		} else {
			defer snd.close()
		}
	}

	g := newGame(screen, *seed, p, log)
	g.sound = snd
	g.demo = *demo
	g.run()
	log.Info("game ended",
		"score", g.w.Score,
		"rows", g.w.RowsCleared,
		"level", g.w.Level)
}

// newLogger logs to a file, since the terminal belongs to the game. Without
// a file nothing is logged.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { _ = f.Close() }, nil
}
