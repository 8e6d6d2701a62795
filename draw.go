package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/marisvali/tetris1/palette"
	"golang.org/x/image/font"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
var colorGame = color.NRGBA{R: 230, G: 237, B: 240, A: 255}
var colorGridLines = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var colorText = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
var colorGameOver = color.NRGBA{R: 200, G: 30, B: 30, A: 255}
var colorDebugArea = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var colorPlayBar = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
var colorPlayBarCursor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}

var printer = message.NewPrinter(language.English)

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	marginX := (int64(screen.Bounds().Dx()) - g.adjustedGameWidth) / 2
	marginY := (int64(screen.Bounds().Dy()) - g.adjustedGameHeight) / 2
	game := SubImage(screen, NewRectangleI(marginX, marginY, GameWidth, GameHeight))
	g.DrawPlayScreen(game)

	if g.enableDebugArea {
		debug := SubImage(screen, NewRectangleI(
			marginX,
			marginY+GameHeight,
			GameWidth,
			DebugHeight))
		g.DrawDebugControls(debug)
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	screen.Fill(colorGame)

	// Draw the grid, with the active piece on top.
	play := SubImage(screen, playScreenWorldArea)
	play.Fill(colorGridLines)
	cells := g.world.Snapshot()
	for y := range cells {
		for x := range cells[y] {
			FillRect(play, CellRect(int64(y), int64(x)),
				palette.Color(cells[y][x]))
		}
	}

	hud := SubImage(screen, playScreenHudArea)
	lines := []string{
		"Score",
		printer.Sprintf("%d", g.world.Score),
		"",
		"Level",
		printer.Sprintf("%d", g.world.Level),
		"",
		"Rows",
		printer.Sprintf("%d", g.world.RowsCleared),
	}
	if g.state == Demo {
		lines = append(lines, "", "Demo")
	}
	lineHeight := int64(g.hudFont.Metrics().Height.Round())
	for i, line := range lines {
		area := NewRectangleI(0, int64(i)*lineHeight, playScreenHudArea.Width(),
			lineHeight)
		g.DrawText(SubImage(hud, area), g.hudFont, line, false, true, colorText)
	}

	if g.world.GameOver {
		banner := SubImage(play, NewRectangleI(0, PlayAreaHeight/2-CellPixelSize,
			PlayAreaWidth, 2*CellPixelSize))
		banner.Fill(colorGame)
		g.DrawText(banner, g.defaultFont, "GAME OVER", true, true, colorGameOver)
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	screen.Fill(colorDebugArea)

	// Play/pause button.
	playbarHeight := int64(screen.Bounds().Dy())
	playButton := SubImage(screen, NewRectangleI(0, 0, playbarHeight, playbarHeight))
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	g.DrawText(playButton, g.defaultFont, label, true, true, colorText)
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackPlay = playButton.Bounds()

	// Play bar.
	barXMargin := int64(10)
	barX := playbarHeight + barXMargin
	barWidth := int64(screen.Bounds().Dx()) - barX - barXMargin
	bar := SubImage(screen, NewRectangleI(barX, playbarHeight/3, barWidth,
		playbarHeight/3))
	bar.Fill(colorPlayBar)
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackBar = bar.Bounds()

	// Playback bar cursor.
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}
	cursorWidth := int64(8)
	cursorX := g.frameIdx*barWidth/nFrames - cursorWidth/2
	FillRect(screen, NewRectangleI(barX+cursorX, 0, cursorWidth, playbarHeight),
		colorPlayBarCursor)
}

// DrawText draws message inside screen, either aligned to the top-left corner
// or centered.
func (g *Gui) DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, color color.Color) {
	// The origin point for the text is kind of the lower-left corner of the
	// bounds of the text. If you do text.Draw at (x, y), most of the text
	// will appear above y, and a little bit under y.
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX - textSize.Min.X
	textY := screen.Bounds().Min.Y + offsetY - textSize.Min.Y
	text.Draw(screen, message, face, textX, textY, color)
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// The screen bitmap returned here is scaled by ebitengine to fit the
	// window, preserving its aspect ratio. To cover the whole window with
	// background, the screen gets the aspect ratio of the window. To be able
	// to reason about positions, the game area has a fixed size and is made
	// as large as possible while still fitting inside the screen.
	g.adjustedGameWidth = GameWidth
	g.adjustedGameHeight = GameHeight
	if g.enableDebugArea {
		g.adjustedGameHeight += DebugHeight
	}

	// If the window is thinner/taller than the game area, the game area fills
	// the width of the screen. Otherwise it fills the height.
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(g.adjustedGameWidth) / float64(g.adjustedGameHeight)
	if outsideAspectRatio < gameAspectRatio {
		screenWidth = int(g.adjustedGameWidth)
		screenHeight = int(float64(screenWidth) / outsideAspectRatio)
	} else {
		screenHeight = int(g.adjustedGameHeight)
		screenWidth = int(float64(screenHeight) * outsideAspectRatio)
	}
	return
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.ScreenSizeInFullscreen()
	size := min(width, height) * 8 / 10
	ebiten.SetWindowSize(size*int(GameWidth)/int(GameHeight), size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tetris1")
}
