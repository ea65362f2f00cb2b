// Package metrics holds the Prometheus instrumentation of the explorer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	mandel "github.com/marben/mandelview"
)

var (
	// frameDuration measures how long a full frame wave takes.
	frameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mandelview",
		Subsystem: "frame",
		Name:      "duration_seconds",
		Help:      "Time to compute one full frame",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
	})

	// framesTotal counts completed frames.
	framesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mandelview",
		Subsystem: "frame",
		Name:      "computed_total",
		Help:      "Total frames computed",
	})

	// pixelsTotal counts pixels written by frame waves.
	pixelsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mandelview",
		Subsystem: "frame",
		Name:      "pixels_total",
		Help:      "Total pixels computed",
	})

	// events counts input events by kind.
	// Labels: kind (zoom_in, zoom_out, cursor)
	events = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mandelview",
		Subsystem: "session",
		Name:      "events_total",
		Help:      "Total input events received",
	}, []string{"kind"})

	// sessions tracks connected websocket sessions.
	sessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "mandelview",
		Subsystem: "session",
		Name:      "active",
		Help:      "Currently connected sessions",
	})

	// zoomLevel records the zoom level each frame was computed at.
	zoomLevel = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mandelview",
		Subsystem: "frame",
		Name:      "zoom_level",
		Help:      "Zoom level of computed frames",
		Buckets:   prometheus.LinearBuckets(-8, 4, 16),
	})
)

// ObserveFrame records a completed frame.
func ObserveFrame(fs mandel.FrameStats) {
	frameDuration.Observe(fs.Duration.Seconds())
	framesTotal.Inc()
	pixelsTotal.Add(float64(fs.Pixels))
}

// ObserveZoom records the zoom level a frame is presented at.
func ObserveZoom(level int) {
	zoomLevel.Observe(float64(level))
}

func RecordEvent(kind mandel.EventKind) {
	events.WithLabelValues(kind.String()).Inc()
}

func SessionOpened() {
	sessions.Inc()
}

func SessionClosed() {
	sessions.Dec()
}
