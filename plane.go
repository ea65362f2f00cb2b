package mandel

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Base sizes of the view at zoom level 0 and the per-level zoom factor.
const (
	BaseWidth  = 4.0
	BaseHeight = 4.0
	BaseZoom   = 0.5
)

// Base describes the view at zoom level 0.
type Base struct {
	Width  float64
	Height float64
	// Zoom is the size multiplier applied per zoom-in step. Expected in (0, 1).
	Zoom float64
}

// DefaultBase returns the base used when none is configured.
func DefaultBase() Base {
	return Base{Width: BaseWidth, Height: BaseHeight, Zoom: BaseZoom}
}

// View is the rectangle of the complex plane mapped onto the display.
type View struct {
	Center        Point
	Width, Height float64
}

// PixelToPlane maps a pixel (origin top-left, y down) to the plane.
// The plane y axis follows the screen, so larger pixel rows map to larger Y.
func (v View) PixelToPlane(px image.Point, res image.Point) Point {
	return Point{
		X: v.Center.X + (float64(px.X)/float64(res.X)-0.5)*v.Width,
		Y: v.Center.Y + (float64(px.Y)/float64(res.Y)-0.5)*v.Height,
	}
}

// Plane tracks the current view and zoom level.
// It is not safe for concurrent mutation; callers change it between frames.
type Plane struct {
	base   Base
	aspect float64
	view   View
	level  int
	mouse  Point
}

var _ Navigator = (*Plane)(nil)

// NewPlane returns a plane centered at the origin at zoom level 0.
// aspect is the display height divided by its width.
func NewPlane(aspect float64, base Base) *Plane {
	p := &Plane{base: base, aspect: aspect}
	p.resize()
	return p
}

// ZoomIn shrinks the view by one zoom step. The center is kept.
func (p *Plane) ZoomIn() {
	p.level++
	p.resize()
}

// ZoomOut grows the view by one zoom step. The center is kept.
func (p *Plane) ZoomOut() {
	p.level--
	p.resize()
}

// Size is always derived from the level, so ZoomIn followed by ZoomOut
// restores the previous size exactly.
func (p *Plane) resize() {
	scale := math.Pow(p.base.Zoom, float64(p.level))
	p.view.Width = p.base.Width * scale
	p.view.Height = p.base.Height * p.aspect * scale
}

func (p *Plane) SetCenter(c Point) {
	p.view.Center = c
}

func (p *Plane) View() View {
	return p.view
}

func (p *Plane) ZoomLevel() int {
	return p.level
}

// SetMouseLocation records the cursor position for the status readout.
func (p *Plane) SetMouseLocation(c Point) {
	p.mouse = c
}

func (p *Plane) MouseLocation() Point {
	return p.mouse
}

// Status is the human readable readout shown over the frame.
func (p *Plane) Status() string {
	var sb strings.Builder
	sb.WriteString("Mandelbrot Set\n")
	fmt.Fprintf(&sb, "Center: %s\n", p.view.Center)
	fmt.Fprintf(&sb, "Cursor: %s\n", p.mouse)
	sb.WriteString("Left-click to Zoom in\n")
	sb.WriteString("Right-click to Zoom out")
	return sb.String()
}

// ApplyView zooms nav by level steps and then centers it, the same way
// clicks do. Negative levels zoom out.
func ApplyView(nav Navigator, center Point, level int) {
	for ; level > 0; level-- {
		nav.ZoomIn()
	}
	for ; level < 0; level++ {
		nav.ZoomOut()
	}
	nav.SetCenter(center)
}
