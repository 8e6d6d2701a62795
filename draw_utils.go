package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in sub-images, so
	// img2 = img1.SubImage(pt1, pt2) has img2.At(pt1) as its top-left pixel.
	// Here every sub-image is addressed in its own local coordinates.
	minPt := screen.Bounds().Min
	return screen.SubImage(r.ToImageRectangle().Add(minPt)).(*ebiten.Image)
}

// FillRect fills the area r of screen, in the local coordinates of screen.
func FillRect(screen *ebiten.Image, r Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	SubImage(screen, r).Fill(c)
}
