// snapshot renders a single frame of the Mandelbrot set and saves it as a PNG file.
// With --server the frame is requested from a running server over irpc instead.
package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"net"
	"os"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/config"
	"github.com/marben/mandelview/internal/hud"
	"github.com/marben/mandelview/internal/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

type options struct {
	configPath string
	region     string
	center     mandel.Point
	zoom       int
	hud        bool
	out        string
	server     string
}

func newRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:          "snapshot",
		Short:        "Render one frame of the Mandelbrot set to a PNG file",
		Long:         "Render one frame of the Mandelbrot set to a PNG file.\n\nKnown regions: " + fmt.Sprint(mandel.RegionNames()),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("logging: %w", err)
			}
			return run(cfg, o, cmd.Flags().Changed("zoom"), logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	f.StringVarP(&o.region, "region", "r", "", "start at a named landmark instead of --cx/--cy")
	f.Float64Var(&o.center.X, "cx", 0, "real part of the view center")
	f.Float64Var(&o.center.Y, "cy", 0, "imaginary part of the view center")
	f.IntVarP(&o.zoom, "zoom", "z", 0, "zoom level, negative zooms out")
	f.BoolVar(&o.hud, "hud", false, "draw the status text onto the image")
	f.StringVarP(&o.out, "out", "o", "mandel.png", "output file")
	f.StringVarP(&o.server, "server", "s", "", "fetch the frame from a server's irpc TCP address instead of rendering locally")
	return cmd
}

// run renders the requested view and saves it to o.out.
func run(cfg config.Config, o options, zoomSet bool, logger *slog.Logger) error {
	center, zoom, err := resolveView(cfg.Base(), o, zoomSet)
	if err != nil {
		return err
	}
	logger.Debug("view", "center", center, "zoom", zoom)

	var img *image.RGBA
	if o.server != "" {
		img, err = fetchFrame(o.server, center, zoom, logger)
	} else {
		img, err = frameImage(newExplorer(cfg, center, zoom, logger))
	}
	if err != nil {
		return err
	}
	if o.hud {
		drawHUD(img, statusText(img.Bounds().Size(), cfg.Base(), center, zoom))
	}

	logger.Info("saving rendered image", "file", o.out)
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}

// resolveView turns the flags into a center and zoom level. A region gives
// the center and, unless --zoom was set, the level fitting its width.
func resolveView(base mandel.Base, o options, zoomSet bool) (mandel.Point, int, error) {
	if o.region == "" {
		return o.center, o.zoom, nil
	}
	r, err := mandel.LookupRegion(o.region)
	if err != nil {
		return mandel.Point{}, 0, err
	}
	zoom := o.zoom
	if !zoomSet {
		zoom = fitZoom(r, base)
	}
	return r.Center(), zoom, nil
}

// newExplorer returns a presented explorer showing center at zoom level.
func newExplorer(cfg config.Config, center mandel.Point, zoom int, logger *slog.Logger) *mandel.Explorer {
	scheduler := mandel.NewScheduler(cfg.Workers, mandel.WithFrameHook(func(fs mandel.FrameStats) {
		logger.Info("frame computed", "duration", fs.Duration, "strips", fs.Strips, "pixels", fs.Pixels)
	}))
	explorer := mandel.NewExplorer(cfg.Display.Width, cfg.Display.Height, cfg.Base(), scheduler)
	mandel.ApplyView(explorer.Plane(), center, zoom)
	explorer.Present()
	return explorer
}

// fitZoom returns the zoom level whose view width is closest to r's width.
func fitZoom(r mandel.Region, base mandel.Base) int {
	return int(math.Round(math.Log(r.Width()/base.Width) / math.Log(base.Zoom)))
}

// frameImage fetches the presented frame.
func frameImage(provider mandel.ImgProvider) (*image.RGBA, error) {
	img, err := provider.GetImage()
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

// fetchFrame requests the frame from the server listening on addr.
// The server renders at its own display resolution.
func fetchFrame(addr string, center mandel.Point, zoom int, logger *slog.Logger) (*image.RGBA, error) {
	logger.Info("connecting to mandelbrot server", "addr", addr)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := mandel.NewFrameProviderIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create FrameProvider client: %w", err)
	}
	data, err := client.Frame(center.X, center.Y, zoom)
	if err != nil {
		return nil, fmt.Errorf("client.Frame: %w", err)
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}

// statusText is the readout of a size.X×size.Y display showing center at zoom.
func statusText(size image.Point, base mandel.Base, center mandel.Point, zoom int) string {
	aspect := 1.0
	if size.X > 0 {
		aspect = float64(size.Y) / float64(size.X)
	}
	p := mandel.NewPlane(aspect, base)
	mandel.ApplyView(p, center, zoom)
	return p.Status()
}

// drawHUD draws text on a white box in the top left corner of img.
func drawHUD(img *image.RGBA, text string) {
	box := image.Rectangle{Min: img.Bounds().Min, Max: img.Bounds().Min.Add(hud.Size(text))}
	draw.Draw(img, box.Intersect(img.Bounds()), image.NewUniform(mandel.White), image.Point{}, draw.Src)
	hud.Draw(img, text, color.Black)
}
