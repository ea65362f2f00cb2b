package mandel

import (
	"image"
)

// ImgProvider hands out the most recently presented frame.
type ImgProvider interface {
	GetImage() (image.RGBA, error)
}

// FrameComputer fills buf with the escape-time image of v at resolution res.
// It returns only after every pixel has been written.
type FrameComputer interface {
	ComputeFrame(v View, res image.Point, buf *Buffer)
}

// Navigator is the part of the explorer a windowing collaborator drives.
type Navigator interface {
	ZoomIn()
	ZoomOut()
	SetCenter(p Point)
	SetMouseLocation(p Point)
	View() View
}
