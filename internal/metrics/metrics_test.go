package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	mandel "github.com/marben/mandelview"
)

func TestObserveFrame(t *testing.T) {
	frames := testutil.ToFloat64(framesTotal)
	pixels := testutil.ToFloat64(pixelsTotal)

	ObserveFrame(mandel.FrameStats{Duration: 3 * time.Millisecond, Strips: 4, Pixels: 100})

	assert.Equal(t, frames+1, testutil.ToFloat64(framesTotal))
	assert.Equal(t, pixels+100, testutil.ToFloat64(pixelsTotal))
}

func TestRecordEvent(t *testing.T) {
	before := testutil.ToFloat64(events.WithLabelValues("zoom_in"))
	RecordEvent(mandel.ZoomIn)
	RecordEvent(mandel.ZoomIn)
	assert.Equal(t, before+2, testutil.ToFloat64(events.WithLabelValues("zoom_in")))
}

func TestSessions(t *testing.T) {
	before := testutil.ToFloat64(sessions)
	SessionOpened()
	assert.Equal(t, before+1, testutil.ToFloat64(sessions))
	SessionClosed()
	assert.Equal(t, before, testutil.ToFloat64(sessions))
}
