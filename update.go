package main

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/tetris1/world"
)

// Holding a move key repeats it after keyRepeatDelay frames, every
// keyRepeatInterval frames.
const keyRepeatDelay = 10
const keyRepeatInterval = 3

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		g.log.Info("config reloaded", "folder", g.folderWatcher.Folder)
	}

	switch g.state {
	case Play, Demo:
		g.UpdatePlay()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

// PlayerCommands turns the keyboard state into commands, in a fixed order.
func (g *Gui) PlayerCommands() (input world.PlayerInput) {
	if g.Repeating(ebiten.KeyLeft) {
		input.Add(world.MoveLeft)
	}
	if g.Repeating(ebiten.KeyRight) {
		input.Add(world.MoveRight)
	}
	if g.JustPressed(ebiten.KeyUp) || g.JustPressed(ebiten.KeyX) {
		input.Add(world.Rotate)
	}
	if g.Repeating(ebiten.KeyDown) {
		input.Add(world.SoftDrop)
	}
	if g.JustPressed(ebiten.KeySpace) {
		input.Add(world.HardDrop)
	}
	return
}

func (g *Gui) UpdatePlay() {
	if g.JustPressed(ebiten.KeyR) {
		g.NewGame()
		return
	}
	if g.world.GameOver {
		return
	}

	// Get the player input.
	var input world.PlayerInput
	if g.state == Demo {
		input = g.ai.Step(&g.world)
	} else {
		input = g.PlayerCommands()
	}
	g.fallCounter++
	if g.fallCounter >= g.FallDelay(g.world.Level) {
		input.Tick = true
		g.fallCounter = 0
	}

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	// Step the world.
	locked := g.world.NPiecesLocked
	g.world.Step(input)
	if g.world.NPiecesLocked != locked && g.world.LastClear.Dropped > 0 {
		g.log.Debug("rows cleared",
			"passes", g.world.LastClear.Passes,
			"score", g.world.Score,
			"level", g.world.Level)
	}
	if g.world.GameOver {
		g.log.Info("game over",
			"score", g.world.Score,
			"rows", g.world.RowsCleared,
			"pieces", g.world.NPiecesLocked,
			"frames", g.frameIdx+1)
	}
	// Finally increase the frame.
	g.frameIdx++
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// Repeating is true on the first frame a key is pressed and then regularly
// while it stays pressed.
func (g *Gui) Repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func ImageRectContainsPt(r image.Rectangle, pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (g *Gui) JustClicked(button image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

func (g *Gui) LeftClickPressedOn(button image.Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

// PlaybackTarget computes the frame the user wants to see, based on the keys
// and the play bar.
func (g *Gui) PlaybackTarget(nFrames int64) int64 {
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) && g.buttonPlaybackBar.Dx() > 0 {
		x, _ := ebiten.CursorPosition()
		dx := int64(x - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(g.buttonPlaybackBar.Dx())
	}

	shift := g.Pressed(ebiten.KeyShift)
	if g.Pressed(ebiten.KeyLeft) && shift {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyRight) && shift {
		targetFrameIdx += g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyLeft) && !shift {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}
	if g.Pressed(ebiten.KeyRight) && !shift {
		targetFrameIdx += g.FrameSkipArrow
	}

	return max(0, min(targetFrameIdx, nFrames-1))
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) || g.JustClicked(g.buttonPlaybackPlay) {
		g.playbackPaused = !g.playbackPaused
	}

	targetFrameIdx := g.PlaybackTarget(nFrames)
	if targetFrameIdx != g.frameIdx {
		// Rewind and replay the world.
		g.world = world.NewWorldFromPlaythrough(g.playthrough)
		for i := int64(0); i < targetFrameIdx; i++ {
			g.world.Step(g.playthrough.History[i])
		}
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && g.frameIdx < nFrames-1 {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
		if world.CheckFailed != nil {
			g.log.Error("step failed", "frame", g.frameIdx,
				"err", world.CheckFailed)
			world.CheckFailed = nil
		}
	}

	// Go to the previous frame. There is no better way than redoing all the
	// frames from the beginning.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.frameIdx--
		g.world = world.NewWorldFromPlaythrough(g.playthrough)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}
}
