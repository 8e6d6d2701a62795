package main

import "github.com/marisvali/tetris1/world"

// Visual areas
// ------------
//
// - The play area: the grid of the World, one square per cell, borders and
// floor included. Has a fixed size, known at compile time.
// - The HUD: to the right of the play area, shows score, level and rows.
// - The game area: contains the play area, the HUD and the margins around
// them. Has a fixed size, known at compile time.
// - The debug area: below the game area, only displayed during playback.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const CellPixelSize = int64(40)
const CellGapPixelSize = int64(1)
const PlayAreaWidth = world.NCols * CellPixelSize
const PlayAreaHeight = world.NRows * CellPixelSize
const PlayMarginLeft = int64(40)
const PlayMarginUp = int64(40)
const PlayMarginDown = int64(40)
const HudWidth = int64(340)
const GameWidth = PlayMarginLeft + PlayAreaWidth + HudWidth
const GameHeight = PlayMarginUp + PlayAreaHeight + PlayMarginDown
const DebugHeight = int64(60)

// The areas below are all relative to the game area.
var playScreenWorldArea = NewRectangleI(
	PlayMarginLeft,
	PlayMarginUp,
	PlayAreaWidth,
	PlayAreaHeight)
var playScreenHudArea = NewRectangleI(
	PlayMarginLeft+PlayAreaWidth+PlayMarginLeft,
	PlayMarginUp,
	HudWidth-2*PlayMarginLeft,
	PlayAreaHeight)

// CellRect is the area of a grid cell, relative to the play area.
func CellRect(row, col int64) Rectangle {
	return NewRectangleI(
		col*CellPixelSize,
		row*CellPixelSize,
		CellPixelSize,
		CellPixelSize).Inset(CellGapPixelSize)
}
