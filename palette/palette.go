// Package palette maps grid cell codes to the colors every driver draws them
// with.
package palette

import "image/color"

var colors = [...]color.NRGBA{
	{R: 255, G: 255, B: 255, A: 255}, // empty
	{R: 0, G: 0, B: 0, A: 255},       // border
	{R: 135, G: 251, B: 255, A: 255}, // I
	{R: 79, G: 108, B: 255, A: 255},  // J
	{R: 255, G: 193, B: 79, A: 255},  // L
	{R: 245, G: 245, B: 100, A: 255}, // O
	{R: 122, G: 245, B: 100, A: 255}, // S
	{R: 182, G: 100, B: 245, A: 255}, // T
	{R: 245, G: 112, B: 100, A: 255}, // Z
}

// Unknown is returned for codes that don't belong to any cell.
var Unknown = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// Color returns the color of a cell code.
func Color(code int64) color.NRGBA {
	if code < 0 || code >= int64(len(colors)) {
		return Unknown
	}
	return colors[code]
}

// RGB is like Color but returns the components, for drivers that don't work
// with image/color.
func RGB(code int64) (r, g, b uint8) {
	c := Color(code)
	return c.R, c.G, c.B
}
