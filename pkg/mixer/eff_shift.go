package mixer

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"bitgale/pkg/pixel"
)

const (
	DefaultShiftDistance = 10
	maxSections          = 10
)

type ShiftOptions struct {
	MaxDistance int
}

func DefaultShiftOptions() ShiftOptions {
	return ShiftOptions{MaxDistance: DefaultShiftDistance}
}

type shiftDir int

const (
	leftToRight shiftDir = iota
	rightToLeft
)

// band is a run of rows [from, to) displaced by the same amount.
type band struct {
	from   int
	to     int
	dir    shiftDir
	amount int
}

// RowShift displaces randomly chosen bands of rows sideways, wrapping pixels within
// each row. Every random draw happens before any row is modified.
func RowShift(g pixel.Grid, opts ShiftOptions, rng Rand) (pixel.Grid, error) {
	if opts.MaxDistance < 0 {
		return nil, errors.Wrapf(pixel.ErrInvalidOption, "max distance %d is negative", opts.MaxDistance)
	}
	if rng == nil {
		return nil, errors.Wrap(pixel.ErrInvalidOption, "no random source")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	for _, b := range planBands(g.Height(), opts.MaxDistance, rng) {
		for y := b.from; y < b.to; y++ {
			shiftRow(g[y], b.dir, b.amount)
		}
	}

	return g, nil
}

func planBands(height, maxDistance int, rng Rand) []band {
	bounds := make([]int, 1+rng.Intn(maxSections))
	for i := range bounds {
		bounds[i] = rng.Intn(height + 1)
	}
	sort.Ints(bounds)

	// MaxInt+1 wraps negative, the single top amount is dropped instead
	amounts := maxDistance + 1
	if amounts <= 0 {
		amounts = math.MaxInt
	}

	var bands []band
	for i := 0; i+1 < len(bounds); i += 2 {
		bands = append(bands, band{
			from:   bounds[i],
			to:     bounds[i+1],
			dir:    shiftDir(rng.Intn(2)),
			amount: rng.Intn(amounts),
		})
	}

	return bands
}

// shiftRow rotates row so that, left to right, row[x] takes the pixel from x+amount.
func shiftRow(row []pixel.Pixel, dir shiftDir, amount int) {
	w := len(row)
	amount %= w
	if amount == 0 {
		return
	}

	src := append([]pixel.Pixel(nil), row...)
	for x := range row {
		if dir == leftToRight {
			row[x] = src[(x+amount)%w]
		} else {
			row[x] = src[(x-amount+w)%w]
		}
	}
}

func EffectShift(opts ShiftOptions, rng Rand) Effect {
	return &shifter{opts: opts, rng: rng}
}

type shifter struct {
	opts ShiftOptions
	rng  Rand
}

func (e *shifter) Name() string {
	return "shift"
}

func (e *shifter) Process(g pixel.Grid) (pixel.Grid, error) {
	return RowShift(g, e.opts, e.rng)
}
