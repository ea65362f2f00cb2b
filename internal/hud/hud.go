// Package hud draws the status readout over a frame.
package hud

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	margin     = 4
	lineHeight = 15
)

// Draw writes text onto dst, one line per row, starting at the top left
// corner. Lines that do not fit are clipped by dst's bounds.
func Draw(dst draw.Image, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	origin := dst.Bounds().Min
	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(origin.X+margin, origin.Y+margin+basicfont.Face7x13.Ascent+i*lineHeight)
		d.DrawString(line)
	}
}

// Size returns the pixel extent of text as Draw lays it out.
func Size(text string) image.Point {
	d := &font.Drawer{Face: basicfont.Face7x13}
	lines := strings.Split(text, "\n")
	w := 0
	for _, l := range lines {
		if lw := d.MeasureString(l).Ceil(); lw > w {
			w = lw
		}
	}
	return image.Pt(w+2*margin, len(lines)*lineHeight+2*margin)
}
