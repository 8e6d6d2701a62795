package main

import (
	"embed"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/tetris1/world"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is a unique label for the functionality that a player is
// presented with, so it changes every time an executable is built and sent to
// someone.
// ReleaseVersion must change when world.SimulationVersion or
// world.InputVersion change. It also changes when only the drivers change:
// asserts enabled or disabled, writing to the disk enabled or disabled,
// different graphics or key bindings.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	Play GameState = iota
	Playback
	DebugCrash
	Demo
)

func ParseGameState(s string) (GameState, error) {
	switch s {
	case "Play":
		return Play, nil
	case "Playback":
		return Playback, nil
	case "DebugCrash":
		return DebugCrash, nil
	case "Demo":
		return Demo, nil
	}
	return Play, fmt.Errorf("invalid StartState: %q", s)
}

type Gui struct {
	Config
	world               world.World
	ai                  world.AI
	FSys                FS
	log                 *slog.Logger
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	hudFont             font.Face
	playthrough         world.Playthrough
	frameIdx            int64
	fallCounter         int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	enableDebugArea     bool
	adjustedGameWidth   int64
	adjustedGameHeight  int64
	buttonPlaybackPlay  image.Rectangle
	buttonPlaybackBar   image.Rectangle
}

type Config struct {
	StartState      string  `yaml:"StartState"`
	PlaybackFile    string  `yaml:"PlaybackFile"`
	RecordToFile    bool    `yaml:"RecordToFile"`
	RecordingFile   string  `yaml:"RecordingFile"`
	LoadLayout      bool    `yaml:"LoadLayout"`
	LayoutFile      string  `yaml:"LayoutFile"`
	RotationPolicy  string  `yaml:"RotationPolicy"`
	FallDelayFrames []int64 `yaml:"FallDelayFrames"`
	Debug           bool    `yaml:"Debug"`
}

// DefaultFallDelay is used when the config has no FallDelayFrames. At 60
// frames per second it is about a third of a second.
const DefaultFallDelay = 21

// FallDelay returns after how many frames the piece falls one row, at a
// certain level. Levels past the end of the table use its last entry.
func (c *Config) FallDelay(level int64) int64 {
	n := int64(len(c.FallDelayFrames))
	if n == 0 {
		return DefaultFallDelay
	}
	d := c.FallDelayFrames[min(max(level, 0), n-1)]
	return max(d, 1)
}

func main() {
	ebiten.SetWindowPosition(1000, 100)

	var g Gui
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Only initialize the watcher here, so that the config isn't
		// reloaded right after it was loaded for the first time.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := len(os.Args) == 2

	g.LoadGuiData()
	g.log = NewLogger(g.Debug)

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	state, err := ParseGameState(g.StartState)
	world.Check(err)
	g.state = state
	g.log.Info("starting", "state", g.StartState, "release", ReleaseVersion)

	switch g.state {
	case Playback:
		g.enableDebugArea = true
		g.playthrough = world.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.world = world.NewWorldFromPlaythrough(g.playthrough)
	case DebugCrash:
		g.enableDebugArea = true
		// Don't crash when we are debugging the crash. If the crash was
		// caused by a Check in world.Step(), the Step can now execute and
		// its results can be seen on the screen.
		world.CheckCrashes = false
		g.playthrough = world.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.world = world.NewWorldFromPlaythrough(g.playthrough)
		// The last input caused the crash, so run the whole playthrough
		// except the last input. Stepping once more triggers the bug.
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	case Play, Demo:
		g.NewGame()
	}

	g.UpdateWindowSize()
	err = ebiten.RunGame(&g)
	world.Check(err)
}

// NewGame starts a new recording and a new World from the current config.
func (g *Gui) NewGame() {
	g.playthrough = world.NewPlaythrough(ReleaseVersion, time.Now().UnixNano())
	policy, err := world.ParseRotationPolicy(g.RotationPolicy)
	world.Check(err)
	g.playthrough.RotationPolicy = policy
	if g.LoadLayout {
		var l world.LayoutFile
		world.LoadYAML(g.FSys, g.LayoutFile, &l)
		g.playthrough.Layout = l.GetLayout()
		if l.Seed != 0 {
			g.playthrough.Seed = l.Seed
		}
	}
	g.world = world.NewWorldFromPlaythrough(g.playthrough)
	g.ai = world.AI{}
	g.frameIdx = 0
	g.fallCounter = 0
	g.log.Info("new game",
		"id", g.playthrough.Id,
		"seed", g.playthrough.Seed,
		"layout", g.LoadLayout)
}
