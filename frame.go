package mandel

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of column strips a frame is split into
// when no worker count is configured.
const DefaultWorkers = 16

// Vertex is one cell of a Buffer: a pixel position and its color.
type Vertex struct {
	Pos   image.Point
	Color color.RGBA
}

// Buffer is a dense row-major pixel grid. During a frame every worker owns a
// disjoint column strip of it, so it is written without locking.
type Buffer struct {
	Width, Height int
	Vertices      []Vertex
}

// NewBuffer allocates a buffer for a w×h display.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{Width: w, Height: h, Vertices: make([]Vertex, w*h)}
}

// Bounds of the buffer in pixel space.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At returns the vertex stored for pixel (x, y).
func (b *Buffer) At(x, y int) Vertex {
	return b.Vertices[x+y*b.Width]
}

// Image copies the buffer into a new RGBA image.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	b.DrawTo(img)
	return img
}

// DrawTo copies every cell of the buffer that falls inside dst's bounds.
// Cells are placed by their index, so cells no frame has written yet come
// out transparent where they are.
func (b *Buffer) DrawTo(dst *image.RGBA) {
	r := dst.Bounds()
	for i, v := range b.Vertices {
		if p := image.Pt(i%b.Width, i/b.Width); p.In(r) {
			dst.SetRGBA(p.X, p.Y, v.Color)
		}
	}
}

// FrameStats describes one completed frame.
type FrameStats struct {
	Duration time.Duration
	Strips   int
	Pixels   int
}

// Scheduler computes frames by splitting the pixel grid into column strips
// and rendering each strip on its own goroutine.
type Scheduler struct {
	workers int
	onFrame func(FrameStats)
}

var _ FrameComputer = (*Scheduler)(nil)

type SchedulerOption func(*Scheduler)

// WithFrameHook registers fn to be called after every completed frame.
func WithFrameHook(fn func(FrameStats)) SchedulerOption {
	return func(s *Scheduler) {
		s.onFrame = fn
	}
}

// NewScheduler returns a scheduler splitting frames among workers strips.
// Non-positive worker counts fall back to DefaultWorkers.
func NewScheduler(workers int, opts ...SchedulerOption) *Scheduler {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	s := &Scheduler{workers: workers}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Scheduler) Workers() int {
	return s.workers
}

// ComputeFrame renders v into buf. Pixels are mapped through res; anything
// in res that falls outside buf is not rendered. It blocks until every strip
// is done.
func (s *Scheduler) ComputeFrame(v View, res image.Point, buf *Buffer) {
	start := time.Now()
	bounds := image.Rect(0, 0, res.X, res.Y).Intersect(buf.Bounds())
	strips := splitColumns(bounds, s.workers)

	var g errgroup.Group
	for _, strip := range strips {
		g.Go(func() error {
			renderStrip(v, res, buf, strip)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	if s.onFrame != nil {
		s.onFrame(FrameStats{
			Duration: time.Since(start),
			Strips:   len(strips),
			Pixels:   bounds.Dx() * bounds.Dy(),
		})
	}
}

func renderStrip(v View, res image.Point, buf *Buffer, strip image.Rectangle) {
	for x := strip.Min.X; x < strip.Max.X; x++ {
		for y := strip.Min.Y; y < strip.Max.Y; y++ {
			px := image.Pt(x, y)
			n := CountIterations(v.PixelToPlane(px, res))
			buf.Vertices[x+y*buf.Width] = Vertex{Pos: px, Color: MapToColor(n)}
		}
	}
}

// splitColumns splits r into at most n full-height column strips.
// Every strip is width/n columns wide, the last one also takes the remainder.
// With fewer columns than n, every column gets its own strip.
func splitColumns(r image.Rectangle, n int) []image.Rectangle {
	w := r.Dx()
	if w <= 0 || r.Dy() <= 0 || n <= 0 {
		return nil
	}
	if n > w {
		n = w
	}
	step := w / n

	strips := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		x0 := r.Min.X + i*step
		x1 := x0 + step
		if i == n-1 {
			x1 = r.Max.X
		}
		strips = append(strips, image.Rect(x0, r.Min.Y, x1, r.Max.Y))
	}
	return strips
}
