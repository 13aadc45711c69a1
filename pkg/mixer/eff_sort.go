package mixer

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"bitgale/pkg/pixel"
)

type Mode int

const (
	ModeCombined Mode = iota
	ModeRed
	ModeGreen
	ModeBlue
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "c", "combined":
		return ModeCombined, nil
	case "r", "red":
		return ModeRed, nil
	case "g", "green":
		return ModeGreen, nil
	case "b", "blue":
		return ModeBlue, nil
	}
	return 0, errors.Wrapf(pixel.ErrInvalidOption, "unknown sort mode %q", s)
}

// level is the brightness used for both ordering and the threshold scan.
// Combined mode uses the channel sum, compared against a threshold scaled by 3,
// which matches comparing the exact mean.
func (m Mode) level(p pixel.Pixel) int {
	switch m {
	case ModeRed:
		return int(p[pixel.Red])
	case ModeGreen:
		return int(p[pixel.Green])
	case ModeBlue:
		return int(p[pixel.Blue])
	default:
		return p.Sum()
	}
}

func (m Mode) scale(threshold int) int {
	if m == ModeCombined {
		return threshold * 3
	}
	return threshold
}

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, errors.Wrapf(pixel.ErrInvalidOption, "unknown sort direction %q", s)
}

const DefaultThreshold = 127

type SortOptions struct {
	Mode      Mode
	Threshold int
	Direction Direction
	// ExactRotation turns vertical sorting through RotateExact instead of Rotate.
	ExactRotation bool
}

func DefaultSortOptions() SortOptions {
	return SortOptions{
		Mode:      ModeCombined,
		Threshold: DefaultThreshold,
		Direction: Horizontal,
	}
}

func (o SortOptions) validate() error {
	if o.Mode < ModeCombined || o.Mode > ModeBlue {
		return errors.Wrapf(pixel.ErrInvalidOption, "sort mode %d", o.Mode)
	}
	if o.Direction != Horizontal && o.Direction != Vertical {
		return errors.Wrapf(pixel.ErrInvalidOption, "sort direction %d", o.Direction)
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return errors.Wrapf(pixel.ErrInvalidOption, "threshold %d not in [0,255]", o.Threshold)
	}
	return nil
}

// PixelSort sorts, row by row, every other run of pixels delimited by threshold crossings.
func PixelSort(g pixel.Grid, opts SortOptions) (pixel.Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	turn := lo.Ternary(opts.ExactRotation, RotateExact, Rotate)

	if opts.Direction == Vertical {
		// the lossy turn there and back drops two rows
		if !opts.ExactRotation && g.Height() < 3 {
			return nil, errors.Wrapf(pixel.ErrDimensionMismatch, "vertical sort needs 3 rows, got %d", g.Height())
		}

		var err error
		if g, err = turn(g, 90); err != nil {
			return nil, err
		}
	}

	threshold := opts.Mode.scale(opts.Threshold)
	cmp := func(a, b pixel.Pixel) int {
		return opts.Mode.level(a) - opts.Mode.level(b)
	}

	for _, row := range g {
		for _, seg := range segments(breakpoints(row, opts.Mode, threshold)) {
			copy(row[seg.start:seg.end], mergeSort(row[seg.start:seg.end], cmp))
		}
	}

	if opts.Direction == Vertical {
		return turn(g, 270)
	}

	return g, nil
}

// breakpoints lists 0 followed by every index where the brightness crosses threshold
// relative to its left neighbour. A row that never exceeds threshold ends with its
// last index instead.
func breakpoints(row []pixel.Pixel, m Mode, threshold int) []int {
	bps := []int{0}
	over := m.level(row[0]) > threshold

	for x := 1; x < len(row); x++ {
		cur, last := m.level(row[x]), m.level(row[x-1])
		if cur > threshold {
			over = true
		}

		if (cur <= threshold && last > threshold) || (cur > threshold && last <= threshold) {
			bps = append(bps, x)
		}
	}

	if !over {
		bps = append(bps, len(row)-1)
	}

	return bps
}

type span struct {
	start int
	end   int
}

// segments pairs breakpoints 0-1, 2-3, ... into half-open spans. An unpaired tail is ignored.
func segments(bps []int) []span {
	var spans []span
	for i := 0; i+1 < len(bps); i += 2 {
		spans = append(spans, span{start: bps[i], end: bps[i+1]})
	}
	return spans
}

func EffectSort(opts SortOptions) Effect {
	return &sorter{opts: opts}
}

type sorter struct {
	opts SortOptions
}

func (e *sorter) Name() string {
	return "sort"
}

func (e *sorter) Process(g pixel.Grid) (pixel.Grid, error) {
	return PixelSort(g, e.opts)
}
