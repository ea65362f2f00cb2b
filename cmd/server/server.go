package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/config"
	"github.com/marben/mandelview/internal/logging"
	"github.com/marben/mandelview/internal/metrics"
)

// main is the entry point for the Mandelbrot explorer server.
// Every browser tab gets its own view; frames are computed here and pushed as PNG.
// The same frames are provided over irpc, on TCP and on the /irpc websocket.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, listen string

	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Serve the interactive Mandelbrot explorer over websocket",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address, overrides the config")
	return cmd
}

// server holds what every session shares.
type server struct {
	cfg       config.Config
	log       *slog.Logger
	scheduler *mandel.Scheduler
	frames    *mandel.FrameService
}

func newServer(cfg config.Config, logger *slog.Logger) *server {
	scheduler := mandel.NewScheduler(cfg.Workers, mandel.WithFrameHook(func(fs mandel.FrameStats) {
		metrics.ObserveFrame(fs)
		logger.Debug("frame computed", "duration", fs.Duration, "strips", fs.Strips, "pixels", fs.Pixels)
	}))
	return &server{
		cfg:       cfg,
		log:       logger,
		scheduler: scheduler,
		frames:    mandel.NewFrameService(cfg.Display.Width, cfg.Display.Height, cfg.Base(), scheduler),
	}
}

// irpcServer provides mandel.FrameProvider to remote clients such as
// cmd/snapshot. Frames are rendered with the same scheduler browser sessions use.
func (s *server) irpcServer() *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(mandel.NewFrameProviderIrpcService(s.frames)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			s.log.Info("irpc client connected", "remote", ep.RemoteAddr())
		}),
	)
}

// serveIrpc serves l until irpcServer is closed. Other failures are sent to errc.
func serveIrpc(irpcServer *irpc.Server, l net.Listener, errc chan<- error) {
	if err := irpcServer.Serve(l); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
		errc <- fmt.Errorf("irpc serve %s %s: %w", l.Addr().Network(), l.Addr(), err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newServer(cfg, logger)
	irpcServer := s.irpcServer()
	defer irpcServer.Close()

	errc := make(chan error, 3)

	// TCP
	if cfg.Server.IrpcListen != "" {
		tcpListener, err := net.Listen("tcp", cfg.Server.IrpcListen)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		logger.Info("irpc listening", "network", "tcp", "addr", tcpListener.Addr())
		go serveIrpc(irpcServer, tcpListener, errc)
	}

	// WEBSOCKET
	wsListener, httpServer := s.webServer(ctx)
	go serveIrpc(irpcServer, wsListener, errc)
	go func() {
		errc <- fmt.Errorf("httpServer: %w", httpServer.ListenAndServe())
	}()

	logger.Info("mandelbrot server waiting for websocket and irpc connections",
		"display", fmt.Sprintf("%dx%d", cfg.Display.Width, cfg.Display.Height),
		"workers", s.scheduler.Workers())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := irpcServer.Close(); err != nil {
			logger.Warn("irpc close", "err", err)
		}
		if err := httpServer.Shutdown(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
