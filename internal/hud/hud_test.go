package hud

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countNonWhite(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				n++
			}
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 60))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	Draw(img, "Mandelbrot Set\nCenter: (0, 0)", color.Black)

	assert.Positive(t, countNonWhite(img, image.Rect(0, 0, 200, lineHeight+margin)))
	assert.Positive(t, countNonWhite(img, image.Rect(0, lineHeight+margin, 200, 2*lineHeight+margin)))
	assert.Zero(t, countNonWhite(img, image.Rect(0, 2*lineHeight+2*margin, 200, 60)))
}

func TestDrawClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.NotPanics(t, func() { Draw(img, "a line far wider than the image\nsecond\nthird", color.Black) })
}

func TestSize(t *testing.T) {
	s := Size("ab\nabcd")
	assert.Equal(t, 4*7+2*margin, s.X)
	assert.Equal(t, 2*lineHeight+2*margin, s.Y)
}
