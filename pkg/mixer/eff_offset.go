package mixer

import (
	"github.com/pkg/errors"

	"bitgale/pkg/pixel"
)

const DefaultOffsetDistance = 1

func ParseChannel(s string) (int, error) {
	switch s {
	case "r", "red":
		return pixel.Red, nil
	case "g", "green":
		return pixel.Green, nil
	case "b", "blue":
		return pixel.Blue, nil
	}
	return 0, errors.Wrapf(pixel.ErrInvalidOption, "unknown channel %q", s)
}

type OffsetOptions struct {
	Channel  int
	Distance int
}

func DefaultOffsetOptions() OffsetOptions {
	return OffsetOptions{Channel: pixel.Red, Distance: DefaultOffsetDistance}
}

// ChannelOffset shifts one channel left by opts.Distance, treating the channel values of
// all rows, concatenated top to bottom, as a single circular buffer.
func ChannelOffset(g pixel.Grid, opts OffsetOptions) (pixel.Grid, error) {
	if opts.Channel < pixel.Red || opts.Channel > pixel.Blue {
		return nil, errors.Wrapf(pixel.ErrInvalidOption, "channel %d", opts.Channel)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	c, d := opts.Channel, opts.Distance
	w, h := g.Width(), g.Height()
	if d < 0 || d >= w {
		return nil, errors.Wrapf(pixel.ErrInvalidOption, "distance %d not in [0,%d)", d, w)
	}

	// the last row wraps onto the first row's values from before the shift
	head := make([]uint8, d)
	for i := range head {
		head[i] = g[0][i][c]
	}

	for y := 0; y < h; y++ {
		row := g[y]
		for x := 0; x+d < w; x++ {
			row[x][c] = row[x+d][c]
		}

		for i := 0; i < d; i++ {
			if y == h-1 {
				row[w-d+i][c] = head[i]
			} else {
				row[w-d+i][c] = g[y+1][i][c]
			}
		}
	}

	return g, nil
}

func EffectOffset(opts OffsetOptions) Effect {
	return &offsetter{opts: opts}
}

type offsetter struct {
	opts OffsetOptions
}

func (e *offsetter) Name() string {
	return "offset"
}

func (e *offsetter) Process(g pixel.Grid) (pixel.Grid, error) {
	return ChannelOffset(g, e.opts)
}
