// Package config loads the explorer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mandel "github.com/marben/mandelview"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Display Display `yaml:"display"`
	// Workers is the number of column strips each frame is split into.
	Workers int    `yaml:"workers"`
	View    View   `yaml:"view"`
	Server  Server `yaml:"server"`
	Log     Log    `yaml:"log"`
}

// Display resolution, fixed for the lifetime of a session.
type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// View at zoom level 0.
type View struct {
	BaseWidth  float64 `yaml:"base_width"`
	BaseHeight float64 `yaml:"base_height"`
	Zoom       float64 `yaml:"zoom"`
}

type Server struct {
	Listen string `yaml:"listen"`
	// OriginPatterns are passed to the websocket handshake. Empty allows
	// same-origin requests only.
	OriginPatterns []string `yaml:"origin_patterns,omitempty"`
	Metrics        bool     `yaml:"metrics"`
	// IrpcListen is the TCP address remote frame clients connect to.
	// Empty disables the TCP listener; /irpc over websocket stays available.
	IrpcListen string `yaml:"irpc_listen"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Display: Display{Width: 960, Height: 540},
		Workers: mandel.DefaultWorkers,
		View: View{
			BaseWidth:  mandel.BaseWidth,
			BaseHeight: mandel.BaseHeight,
			Zoom:       mandel.BaseZoom,
		},
		Server: Server{Listen: ":8080", Metrics: true, IrpcListen: ":8081"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display must be positive, got %dx%d", ErrInvalidConfig, c.Display.Width, c.Display.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.View.BaseWidth <= 0 || c.View.BaseHeight <= 0 {
		return fmt.Errorf("%w: base view must be positive", ErrInvalidConfig)
	}
	if c.View.Zoom <= 0 || c.View.Zoom >= 1 {
		return fmt.Errorf("%w: zoom factor must be in (0, 1), got %g", ErrInvalidConfig, c.View.Zoom)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Base converts the view section for mandel.NewPlane.
func (c Config) Base() mandel.Base {
	return mandel.Base{Width: c.View.BaseWidth, Height: c.View.BaseHeight, Zoom: c.View.Zoom}
}
