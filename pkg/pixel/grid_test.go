package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		ok   bool
	}{
		{"rect", New(3, 2), true},
		{"single", New(1, 1), true},
		{"nil", nil, false},
		{"zero width", Grid{{}}, false},
		{"ragged", Grid{make([]Pixel, 3), make([]Pixel, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)
			}
		})
	}
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	src.Set(12, 21, color.RGBA{R: 250, G: 128, B: 7, A: 255})

	g := FromImage(src)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	assert.Equal(t, Pixel{1, 2, 3}, g[0][0])
	assert.Equal(t, Pixel{250, 128, 7}, g[1][2])

	out := g.Image()
	assert.Equal(t, image.Rect(0, 0, 3, 2), out.Bounds())
	assert.Equal(t, color.NRGBA{R: 250, G: 128, B: 7, A: 255}, out.NRGBAAt(2, 1))
}

func TestClone(t *testing.T) {
	g := Grid{{{1, 1, 1}, {2, 2, 2}}}
	c := g.Clone()
	c[0][0] = Pixel{9, 9, 9}

	assert.Equal(t, Pixel{1, 1, 1}, g[0][0])
	assert.Equal(t, 765, Pixel{255, 255, 255}.Sum())
}
