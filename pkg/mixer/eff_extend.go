package mixer

import (
	"github.com/pkg/errors"

	"bitgale/pkg/pixel"
)

const (
	// AutoDistance asks EdgeExtend to use DefaultExtendRatio of the width.
	AutoDistance       = -1
	DefaultExtendRatio = 0.2
)

type ExtendOptions struct {
	Distance int
}

func DefaultExtendOptions() ExtendOptions {
	return ExtendOptions{Distance: AutoDistance}
}

// EdgeExtend drags the pixel at column width-distance across every column to its right.
// The source column itself is left as is. Distances of the full width or more extend
// column 0 over the whole row.
func EdgeExtend(g pixel.Grid, opts ExtendOptions) (pixel.Grid, error) {
	if opts.Distance < AutoDistance {
		return nil, errors.Wrapf(pixel.ErrInvalidOption, "distance %d is negative", opts.Distance)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	w := g.Width()
	distance := opts.Distance
	if distance == AutoDistance {
		distance = int(float64(w) * DefaultExtendRatio)
	}

	cut := w - distance
	if cut >= w {
		return g, nil
	} else if cut < 0 {
		// no wrap around to column 2W-distance, past the left edge is column 0
		cut = 0
	}

	for _, row := range g {
		src := row[cut]
		for x := cut + 1; x < w; x++ {
			row[x] = src
		}
	}

	return g, nil
}

func EffectExtend(opts ExtendOptions) Effect {
	return &extender{opts: opts}
}

type extender struct {
	opts ExtendOptions
}

func (e *extender) Name() string {
	return "extend"
}

func (e *extender) Process(g pixel.Grid) (pixel.Grid, error) {
	return EdgeExtend(g, e.opts)
}
