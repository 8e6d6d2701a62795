package main

import (
	"image"

	"github.com/marisvali/tetris1/world"
)

type Pt = world.Pt

// Rectangle is an axis-aligned area in pixels. Min is inside the area, Max
// is just outside of it, like image.Rectangle.
type Rectangle struct {
	Min Pt
	Max Pt
}

func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

// Translate moves the rectangle by pt.
func (r Rectangle) Translate(pt Pt) Rectangle {
	return Rectangle{r.Min.Plus(pt), r.Max.Plus(pt)}
}

// Inset shrinks the rectangle by n pixels on every side. A rectangle too
// small to shrink becomes empty, at its center.
func (r Rectangle) Inset(n int64) Rectangle {
	if r.Width() < 2*n || r.Height() < 2*n {
		c := Pt{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
		return Rectangle{c, c}
	}
	return Rectangle{r.Min.Plus(Pt{n, n}), r.Max.Minus(Pt{n, n})}
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}
