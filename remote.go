package mandel

//go:generate go run github.com/marben/irpc/cmd/irpc remote.go

// FrameProvider renders PNG encoded frames for remote clients.
// Frame renders the view centered at (cx, cy) at the given zoom level,
// Resolution reports the width and height of those frames.
type FrameProvider interface {
	Frame(cx, cy float64, zoom int) ([]byte, error)
	Resolution() (int, int, error)
}
