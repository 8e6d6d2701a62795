package main

import (
	"github.com/marisvali/tetris1/world"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It is only done when reading from the disk. From the embedded
	// filesystem a failure can't go away, so crash as soon as possible.
	previousVal := world.CheckCrashes
	if g.FSys != FS(&embeddedFiles) {
		world.CheckCrashes = false
	}
	for {
		world.CheckFailed = nil
		g.Config = Config{}
		world.LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		if world.CheckFailed == nil {
			break
		}
	}
	world.CheckCrashes = previousVal

	fontData, err := opentype.Parse(goregular.TTF)
	world.Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    44,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	world.Check(err)

	g.hudFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    32,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	world.Check(err)
}
