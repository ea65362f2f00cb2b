package mandel

import (
	"bytes"
	"fmt"
	"image/png"
)

// MaxZoomLevel bounds the zoom level a remote client may request.
// Far beyond it float64 views collapse to a single point anyway.
const MaxZoomLevel = 1024

// FrameService renders frames on demand for remote clients. Every call gets
// its own Explorer, so calls from different connections run concurrently.
type FrameService struct {
	width, height int
	base          Base
	computer      FrameComputer
}

var _ FrameProvider = (*FrameService)(nil)

func NewFrameService(w, h int, base Base, computer FrameComputer) *FrameService {
	return &FrameService{width: w, height: h, base: base, computer: computer}
}

// Frame renders the view centered at (cx, cy) at zoom level zoom and
// returns it PNG encoded.
func (s *FrameService) Frame(cx, cy float64, zoom int) ([]byte, error) {
	if zoom > MaxZoomLevel || zoom < -MaxZoomLevel {
		return nil, fmt.Errorf("zoom level %d out of range [%d, %d]", zoom, -MaxZoomLevel, MaxZoomLevel)
	}
	e := NewExplorer(s.width, s.height, s.base, s.computer)
	ApplyView(e.Plane(), Point{X: cx, Y: cy}, zoom)

	var b bytes.Buffer
	if err := png.Encode(&b, e.Present().Image()); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return b.Bytes(), nil
}

func (s *FrameService) Resolution() (int, int, error) {
	return s.width, s.height, nil
}
