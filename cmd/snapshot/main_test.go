package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/marben/irpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/config"
	"github.com/marben/mandelview/internal/hud"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Display = config.Display{Width: 40, Height: 20}
	cfg.Workers = 3
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	err := run(testConfig(), options{out: out}, false, discard())
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
}

func TestResolveView(t *testing.T) {
	base := mandel.DefaultBase()

	center, zoom, err := resolveView(base, options{region: "seahorse"}, false)
	require.NoError(t, err)
	assert.InDelta(t, -0.75, center.X, 1e-12)
	assert.InDelta(t, 0.1, center.Y, 1e-12)
	// 4 * 0.5^5 = 0.125 is the closest width to the region's 0.1
	assert.Equal(t, 5, zoom)

	_, zoom, err = resolveView(base, options{region: "seahorse", zoom: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, zoom)

	center, zoom, err = resolveView(base, options{center: mandel.Point{X: 0.3}, zoom: -1}, true)
	require.NoError(t, err)
	assert.Equal(t, mandel.Point{X: 0.3}, center)
	assert.Equal(t, -1, zoom)

	_, _, err = resolveView(base, options{region: "atlantis"}, false)
	assert.Error(t, err)
}

func TestNewExplorer(t *testing.T) {
	e := newExplorer(testConfig(), mandel.Point{X: -0.75, Y: 0.1}, 5, discard())
	assert.Equal(t, 5, e.Plane().ZoomLevel())
	assert.Equal(t, mandel.Point{X: -0.75, Y: 0.1}, e.Plane().View().Center)
	assert.Equal(t, mandel.Displaying, e.State())
	assert.Equal(t, 1, e.Frames())
}

func TestFrameImage(t *testing.T) {
	e := mandel.NewExplorer(4, 4, mandel.DefaultBase(), mandel.NewScheduler(2))
	_, err := frameImage(e)
	assert.Error(t, err, "nothing presented yet")

	e.Present()
	img, err := frameImage(e)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestDrawHUD(t *testing.T) {
	img, err := frameImage(newExplorer(testConfig(), mandel.Point{}, -3, discard()))
	require.NoError(t, err)
	require.Equal(t, mandel.MapToColor(1), img.RGBAAt(1, 1))

	text := statusText(img.Bounds().Size(), mandel.DefaultBase(), mandel.Point{}, -3)
	assert.Contains(t, text, "Center: (0, 0)")
	drawHUD(img, text)

	// the margin of the box holds no glyphs
	assert.Equal(t, mandel.White, img.RGBAAt(1, 1))
	assert.Equal(t, mandel.White, img.RGBAAt(img.Bounds().Dx()-1, img.Bounds().Dy()-1))
	var ink int
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0 {
			ink++
		}
	}
	assert.Positive(t, ink, "text drawn over the box")
}

func TestDrawHUDBoxSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	drawHUD(img, "ab")
	size := hud.Size("ab")
	assert.Equal(t, mandel.White, img.RGBAAt(size.X-1, size.Y-1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(size.X, size.Y))
}

func TestRunFromServer(t *testing.T) {
	cfg := testConfig()
	svc := mandel.NewFrameService(cfg.Display.Width, cfg.Display.Height, cfg.Base(), mandel.NewScheduler(cfg.Workers))
	srv := irpc.NewServer(irpc.WithServices(mandel.NewFrameProviderIrpcService(svc)))
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go srv.Serve(l)
	defer srv.Close()

	dir := t.TempDir()
	local := filepath.Join(dir, "local.png")
	remote := filepath.Join(dir, "remote.png")
	require.NoError(t, run(cfg, options{region: "elephant", out: local}, false, discard()))
	require.NoError(t, run(cfg, options{region: "elephant", out: remote, server: l.Addr().String()}, false, discard()))

	want, got := decodePNG(t, local), decodePNG(t, remote)
	require.Equal(t, want.Bounds(), got.Bounds())
	for y := 0; y < want.Bounds().Dy(); y++ {
		for x := 0; x < want.Bounds().Dx(); x++ {
			require.Equal(t, want.At(x, y), got.At(x, y), "pixel %d,%d", x, y)
		}
	}

	err = run(cfg, options{zoom: mandel.MaxZoomLevel + 1, out: remote, server: l.Addr().String()}, true, discard())
	assert.ErrorContains(t, err, "out of range")
}
