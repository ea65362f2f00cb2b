package mandel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountIterations(t *testing.T) {
	tests := []struct {
		name string
		c    Point
		want uint
	}{
		{"origin never escapes", Point{0, 0}, MaxIter},
		{"far point escapes after one step", Point{3, 0}, 1},
		{"main cardioid", Point{-0.5, 0.25}, MaxIter},
		{"period two bulb", Point{-1, 0}, MaxIter},
		{"left tip lands on the threshold", Point{-2, 0}, 1},
		{"outside corner", Point{-1, -1}, 3},
		{"just outside on the real axis", Point{0.5, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountIterations(tt.c))
		})
	}
}

func TestCountIterationsBounded(t *testing.T) {
	for x := -3.0; x <= 3.0; x += 0.125 {
		for y := -3.0; y <= 3.0; y += 0.125 {
			n := CountIterations(Point{x, y})
			assert.GreaterOrEqual(t, n, uint(1))
			assert.LessOrEqual(t, n, uint(MaxIter))
			if x*x+y*y > 4 {
				assert.Equal(t, uint(1), n, "c=(%g,%g)", x, y)
			}
		}
	}
}
