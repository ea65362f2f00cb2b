package mandel

import (
	"errors"
	"image"
)

// State of the explorer's frame.
type State int

const (
	// Computing means the view changed and the buffer is stale.
	Computing State = iota
	// Displaying means the buffer matches the current view.
	Displaying
)

func (s State) String() string {
	switch s {
	case Computing:
		return "computing"
	case Displaying:
		return "displaying"
	}
	return "unknown"
}

// EventKind is one of the input signals the explorer reacts to.
type EventKind int

const (
	ZoomIn EventKind = iota
	ZoomOut
	CursorMoved
)

func (k EventKind) String() string {
	switch k {
	case ZoomIn:
		return "zoom_in"
	case ZoomOut:
		return "zoom_out"
	case CursorMoved:
		return "cursor"
	}
	return "unknown"
}

// Event is an input signal at a point of the plane.
type Event struct {
	Kind  EventKind
	Point Point
}

// Explorer owns a plane, a pixel buffer and the frame state machine.
// It is driven from a single goroutine.
type Explorer struct {
	plane    *Plane
	computer FrameComputer
	res      image.Point
	buf      *Buffer
	state    State
	frames   int
}

var _ ImgProvider = (*Explorer)(nil)

// NewExplorer returns an explorer for a w×h display. The first Present
// computes a frame.
func NewExplorer(w, h int, base Base, computer FrameComputer) *Explorer {
	aspect := 1.0
	if w > 0 {
		aspect = float64(h) / float64(w)
	}
	return &Explorer{
		plane:    NewPlane(aspect, base),
		computer: computer,
		res:      image.Pt(w, h),
		buf:      NewBuffer(w, h),
		state:    Computing,
	}
}

// Apply handles an input event and reports whether it invalidated the frame.
// Zoom events zoom and then recenter on the event point; cursor moves only
// update the readout.
func (e *Explorer) Apply(ev Event) bool {
	switch ev.Kind {
	case ZoomIn:
		e.plane.ZoomIn()
		e.plane.SetCenter(ev.Point)
	case ZoomOut:
		e.plane.ZoomOut()
		e.plane.SetCenter(ev.Point)
	case CursorMoved:
		e.plane.SetMouseLocation(ev.Point)
		return false
	default:
		return false
	}
	e.state = Computing
	return true
}

// Present returns the frame for the current view, computing it first if the
// view changed since the last call.
func (e *Explorer) Present() *Buffer {
	if e.state == Computing {
		e.computer.ComputeFrame(e.plane.View(), e.res, e.buf)
		e.frames++
		e.state = Displaying
	}
	return e.buf
}

// GetImage implements ImgProvider.
func (e *Explorer) GetImage() (image.RGBA, error) {
	if e.state != Displaying {
		return image.RGBA{}, errors.New("frame not computed")
	}
	return *e.buf.Image(), nil
}

// PixelToPlane maps a display pixel through the current view.
func (e *Explorer) PixelToPlane(px image.Point) Point {
	return e.plane.View().PixelToPlane(px, e.res)
}

func (e *Explorer) Plane() *Plane {
	return e.plane
}

func (e *Explorer) State() State {
	return e.state
}

func (e *Explorer) Resolution() image.Point {
	return e.res
}

// Frames is the number of frames computed so far.
func (e *Explorer) Frames() int {
	return e.frames
}
