package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/tetris1/palette"
	"github.com/marisvali/tetris1/world"
)

const frameDuration = 16 * time.Millisecond // ~60 FPS

// Frames per row, by level. Levels past the end use the last value.
var fallDelayFrames = []int64{21, 19, 17, 15, 13, 11, 9, 8, 7, 6, 5, 4, 3, 2}

func fallDelay(level int64) int64 {
	return fallDelayFrames[min(max(level, 0), int64(len(fallDelayFrames))-1)]
}

type game struct {
	screen      tcell.Screen
	w           world.World
	ai          world.AI
	log         *slog.Logger
	sound       *sound
	demo        bool
	paused      bool
	quit        bool
	pending     world.PlayerInput
	fallCounter int64
}

func newGame(screen tcell.Screen, seed int64, policy world.RotationPolicy,
	log *slog.Logger) *game {
	g := &game{
		screen: screen,
		w:      world.NewWorld(seed),
		log:    log,
	}
	g.w.RotationPolicy = policy
	log.Info("new game", "seed", seed, "policy", policy)
	return g
}

func (g *game) run() {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	g.draw()
	for !g.quit {
		select {
		case ev := <-eventChan:
			g.handleEvent(ev)
		case <-ticker.C:
			g.frame()
			g.draw()
		}
	}
}

// commandForKey maps a key to a command. Both arrows and vi keys work.
func commandForKey(ev *tcell.EventKey) (world.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return world.MoveLeft, true
	case tcell.KeyRight:
		return world.MoveRight, true
	case tcell.KeyUp:
		return world.Rotate, true
	case tcell.KeyDown:
		return world.SoftDrop, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return world.MoveLeft, true
		case 'l':
			return world.MoveRight, true
		case 'k', 'x':
			return world.Rotate, true
		case 'j':
			return world.SoftDrop, true
		case ' ':
			return world.HardDrop, true
		}
	}
	return world.NoCommand, false
}

func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			g.quit = true
			return
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
			g.paused = !g.paused
			return
		}
		if g.demo || g.paused {
			return
		}
		if c, ok := commandForKey(ev); ok {
			// Commands past the limit of a frame are dropped.
			g.pending.Add(c)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// frame steps the World once with the commands received since the last
// frame.
func (g *game) frame() {
	if g.paused || g.w.GameOver {
		return
	}
	input := g.pending
	g.pending = world.PlayerInput{}
	if g.demo {
		input = g.ai.Step(&g.w)
	}

	g.fallCounter++
	if g.fallCounter >= fallDelay(g.w.Level) {
		input.Tick = true
		g.fallCounter = 0
	}

	locked := g.w.NPiecesLocked
	g.w.Step(input)
	if g.w.NPiecesLocked != locked && g.w.LastClear.Dropped > 0 {
		g.log.Debug("rows cleared",
			"passes", g.w.LastClear.Passes,
			"score", g.w.Score)
		if g.sound != nil {
			g.sound.playClear(g.w.LastClear.Dropped)
		}
	}
	if g.w.GameOver {
		g.log.Info("game over", "score", g.w.Score)
	}
}

func cellStyle(code int64) tcell.Style {
	r, gr, b := palette.RGB(code)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(gr), int32(b)))
}

func (g *game) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// draw renders the grid with two terminal columns per cell, so that cells
// look square, and the score to the right of it.
func (g *game) draw() {
	g.screen.Clear()
	cells := g.w.Snapshot()
	for y := range cells {
		for x := range cells[y] {
			style := cellStyle(cells[y][x])
			g.screen.SetContent(2*x, y, ' ', nil, style)
			g.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}

	hudX := 2*int(g.w.Grid.Cols()) + 2
	text := tcell.StyleDefault
	g.drawText(hudX, 1, text, fmt.Sprintf("Score %d", g.w.Score))
	g.drawText(hudX, 2, text, fmt.Sprintf("Level %d", g.w.Level))
	g.drawText(hudX, 3, text, fmt.Sprintf("Rows  %d", g.w.RowsCleared))
	switch {
	case g.w.GameOver:
		g.drawText(hudX, 5, text.Foreground(tcell.ColorRed), "GAME OVER")
	case g.paused:
		g.drawText(hudX, 5, text, "PAUSED")
	case g.demo:
		g.drawText(hudX, 5, text, "DEMO")
	}
	g.drawText(hudX, 7, text.Dim(true), "arrows/hjkl move, space drops")
	g.drawText(hudX, 8, text.Dim(true), "p pauses, q quits")
	g.screen.Show()
}
