package mixer

import (
	"github.com/pkg/errors"

	"bitgale/pkg/pixel"
)

// Rotate turns g by 90, 180 or 270 degrees clockwise, reproducing the legacy traversal:
// the 90 and 180 degree turns never visit row 0 and the 270 degree turn never visits
// column 0, so each rotation loses one edge of the source. 180 only reverses row order.
// Use RotateExact for a lossless rotation.
func Rotate(g pixel.Grid, angle int) (pixel.Grid, error) {
	return rotate(g, angle, false)
}

// RotateExact is the geometrically correct counterpart of Rotate.
func RotateExact(g pixel.Grid, angle int) (pixel.Grid, error) {
	return rotate(g, angle, true)
}

func rotate(g pixel.Grid, angle int, exact bool) (pixel.Grid, error) {
	if angle != 90 && angle != 180 && angle != 270 {
		return nil, errors.Wrapf(pixel.ErrInvalidAngle, "%d is not a right angle", angle)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	// lowest source index visited by the traversal
	first := 1
	if exact {
		first = 0
	}

	h, w := g.Height(), g.Width()
	if (angle != 270 && h-first < 1) || (angle == 270 && w-first < 1) {
		return nil, errors.Wrapf(pixel.ErrDimensionMismatch, "cannot rotate %dx%d by %d", w, h, angle)
	}

	switch angle {
	case 90:
		out := pixel.New(h-first, w)
		for x := 0; x < w; x++ {
			for y, j := h-1, 0; y >= first; y, j = y-1, j+1 {
				out[x][j] = g[y][x]
			}
		}
		return out, nil

	case 180:
		out := make(pixel.Grid, 0, h-first)
		for y := h - 1; y >= first; y-- {
			row := g[y]
			if exact {
				for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
					row[i], row[j] = row[j], row[i]
				}
			}
			out = append(out, row)
		}
		return out, nil

	default:
		out := pixel.New(h, w-first)
		for x, k := w-1, 0; x >= first; x, k = x-1, k+1 {
			for y := 0; y < h; y++ {
				out[k][y] = g[y][x]
			}
		}
		return out, nil
	}
}

func EffectRotate(angle int, exact bool) Effect {
	return &rotator{angle: angle, exact: exact}
}

type rotator struct {
	angle int
	exact bool
}

func (e *rotator) Name() string {
	return "rotate"
}

func (e *rotator) Process(g pixel.Grid) (pixel.Grid, error) {
	return rotate(g, e.angle, e.exact)
}
