package pixel

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

const (
	Red = iota
	Green
	Blue
)

// Pixel holds the red, green and blue channel values of one grid cell.
type Pixel [3]uint8

// Sum returns the total of all three channels.
func (p Pixel) Sum() int {
	return int(p[Red]) + int(p[Green]) + int(p[Blue])
}

// Grid is a row-major raster. Effects expect it to be rectangular and non-empty.
type Grid [][]Pixel

func New(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Pixel, width)
	}
	return g
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate reports ErrDimensionMismatch for empty or ragged grids.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return errors.Wrapf(ErrDimensionMismatch, "empty grid %dx%d", g.Width(), g.Height())
	}

	w := len(g[0])
	for y, row := range g {
		if len(row) != w {
			return errors.Wrapf(ErrDimensionMismatch, "row %d has %d pixels, want %d", y, len(row), w)
		}
	}

	return nil
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]Pixel(nil), row...)
	}
	return c
}

// FromImage copies img into a new grid, dropping alpha.
func FromImage(img image.Image) Grid {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g[y-b.Min.Y]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[x-b.Min.X] = Pixel{c.R, c.G, c.B}
		}
	}

	return g
}

// Image renders the grid as an opaque NRGBA image.
func (g Grid) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))

	for y, row := range g {
		for x, p := range row {
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = p[Red]
			dst.Pix[i+1] = p[Green]
			dst.Pix[i+2] = p[Blue]
			dst.Pix[i+3] = 0xFF
		}
	}

	return dst
}
