package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsPt(t *testing.T) {
	r := NewRectangleI(10, 20, 30, 40)
	assert.True(t, r.ContainsPt(Pt{10, 20}))
	assert.True(t, r.ContainsPt(Pt{39, 59}))
	assert.False(t, r.ContainsPt(Pt{40, 59}))
	assert.False(t, r.ContainsPt(Pt{39, 60}))
	assert.False(t, r.ContainsPt(Pt{9, 30}))
}

func TestRectSize(t *testing.T) {
	r := NewRectangleI(10, 20, 30, 40)
	assert.Equal(t, int64(30), r.Width())
	assert.Equal(t, int64(40), r.Height())
	assert.False(t, r.Empty())
	assert.True(t, NewRectangleI(5, 5, 0, 10).Empty())
}

func TestRectTranslate(t *testing.T) {
	r := NewRectangleI(10, 20, 30, 40).Translate(Pt{5, -5})
	assert.Equal(t, NewRectangleI(15, 15, 30, 40), r)
}

func TestRectInset(t *testing.T) {
	r := NewRectangleI(0, 0, 10, 10).Inset(1)
	assert.Equal(t, NewRectangleI(1, 1, 8, 8), r)

	r = NewRectangleI(0, 0, 3, 10).Inset(2)
	assert.True(t, r.Empty())
	assert.Equal(t, Pt{1, 5}, r.Min)
}

func TestRectToImageRectangle(t *testing.T) {
	r := NewRectangleI(10, 20, 30, 40)
	assert.Equal(t, image.Rect(10, 20, 40, 60), r.ToImageRectangle())
}
