package mandel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitColumnsCoversWidth(t *testing.T) {
	for w := 0; w <= 70; w++ {
		for n := 1; n <= 20; n++ {
			r := image.Rect(0, 0, w, 3)
			strips := splitColumns(r, n)

			if w == 0 {
				assert.Empty(t, strips)
				continue
			}
			require.LessOrEqual(t, len(strips), n)

			seen := make([]int, w)
			for _, s := range strips {
				require.True(t, s.In(r), "strip %v outside %v", s, r)
				assert.Equal(t, r.Min.Y, s.Min.Y)
				assert.Equal(t, r.Max.Y, s.Max.Y)
				for x := s.Min.X; x < s.Max.X; x++ {
					seen[x]++
				}
			}
			for x, c := range seen {
				assert.Equal(t, 1, c, "w=%d n=%d column %d", w, n, x)
			}
		}
	}
}

func TestSplitColumnsRemainderGoesLast(t *testing.T) {
	strips := splitColumns(image.Rect(0, 0, 10, 2), 3)
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 3, 2),
		image.Rect(3, 0, 6, 2),
		image.Rect(6, 0, 10, 2),
	}, strips)
}

func TestSplitColumnsDegenerate(t *testing.T) {
	assert.Empty(t, splitColumns(image.Rect(0, 0, 10, 0), 4))
	assert.Empty(t, splitColumns(image.Rect(0, 0, 10, 10), 0))
	assert.Len(t, splitColumns(image.Rect(0, 0, 3, 10), 16), 3)
}

func TestComputeFrameSmallView(t *testing.T) {
	v := View{Width: 4, Height: 4}
	res := image.Pt(4, 4)
	buf := NewBuffer(4, 4)

	NewScheduler(16).ComputeFrame(v, res, buf)

	center := buf.At(2, 2)
	assert.Equal(t, image.Pt(2, 2), center.Pos)
	assert.Equal(t, White, center.Color)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := buf.At(x, y)
			assert.Equal(t, image.Pt(x, y), px.Pos)
			c := v.PixelToPlane(image.Pt(x, y), res)
			if c.X*c.X+c.Y*c.Y > 4 {
				assert.NotEqual(t, White, px.Color, "pixel (%d,%d)", x, y)
				assert.Equal(t, MapToColor(1), px.Color, "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestComputeFrameMatchesSerial(t *testing.T) {
	v := View{Center: Point{-0.75, 0.1}, Width: 0.5, Height: 0.3}
	res := image.Pt(37, 23)

	for _, workers := range []int{1, 4, 16, 64} {
		buf := NewBuffer(res.X, res.Y)
		NewScheduler(workers).ComputeFrame(v, res, buf)

		for y := 0; y < res.Y; y++ {
			for x := 0; x < res.X; x++ {
				want := MapToColor(CountIterations(v.PixelToPlane(image.Pt(x, y), res)))
				require.Equal(t, want, buf.At(x, y).Color, "workers=%d pixel (%d,%d)", workers, x, y)
			}
		}
	}
}

func TestComputeFrameClipsToBuffer(t *testing.T) {
	buf := NewBuffer(3, 2)
	assert.NotPanics(t, func() {
		NewScheduler(4).ComputeFrame(View{Width: 4, Height: 4}, image.Pt(8, 8), buf)
	})
	assert.Equal(t, image.Pt(2, 1), buf.At(2, 1).Pos)
}

func TestFrameHook(t *testing.T) {
	var got []FrameStats
	s := NewScheduler(5, WithFrameHook(func(fs FrameStats) { got = append(got, fs) }))
	buf := NewBuffer(12, 7)

	s.ComputeFrame(View{Width: 4, Height: 4}, image.Pt(12, 7), buf)

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Strips)
	assert.Equal(t, 84, got[0].Pixels)
}

func TestNewSchedulerDefaults(t *testing.T) {
	assert.Equal(t, DefaultWorkers, NewScheduler(0).Workers())
	assert.Equal(t, 3, NewScheduler(3).Workers())
}

func TestBufferImage(t *testing.T) {
	buf := NewBuffer(4, 4)
	NewScheduler(2).ComputeFrame(View{Width: 4, Height: 4}, image.Pt(4, 4), buf)

	img := buf.Image()
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.Equal(t, White, img.RGBAAt(2, 2))
	assert.Equal(t, MapToColor(1), img.RGBAAt(0, 0))
}

func TestBufferImagePartialFrame(t *testing.T) {
	buf := NewBuffer(8, 8)
	NewScheduler(2).ComputeFrame(View{Width: 4, Height: 4}, image.Pt(4, 4), buf)

	img := buf.Image()
	// unwritten cells must not land on the origin
	assert.Equal(t, MapToColor(1), img.RGBAAt(0, 0))
	assert.Equal(t, White, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(7, 7))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(4, 0))
}
