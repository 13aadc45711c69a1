package mixer

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitgale/pkg/flags"
	"bitgale/pkg/pixel"
)

func TestRegistryBuild(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))

	tests := []struct {
		command string
		want    Effect
	}{
		{"sort", &sorter{opts: DefaultSortOptions()}},
		{"sort -mode r -thr 90 -dir vertical -fix true", &sorter{opts: SortOptions{
			Mode: ModeRed, Threshold: 90, Direction: Vertical, ExactRotation: true,
		}}},
		{"offset", &offsetter{opts: OffsetOptions{Channel: pixel.Red, Distance: 1}}},
		{"offset -cnl b -dis 4", &offsetter{opts: OffsetOptions{Channel: pixel.Blue, Distance: 4}}},
		{"extend", &extender{opts: ExtendOptions{Distance: AutoDistance}}},
		{"extend -dis 0", &extender{opts: ExtendOptions{Distance: 0}}},
		{"rotate", &rotator{angle: 90}},
		{"rotate -ang 270 -fix true", &rotator{angle: 270, exact: true}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			eff, err := r.Build(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eff)
		})
	}

	eff, err := r.Build("shift -dis 4")
	require.NoError(t, err)
	assert.Equal(t, 4, eff.(*shifter).opts.MaxDistance)
	assert.NotNil(t, eff.(*shifter).rng)
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry(nil)

	tests := []struct {
		command string
		want    error
	}{
		{"blur", ErrUnknownEffect},
		{"sort -speed 3", flags.ErrUnknownFlag},
		{"sort -mode", flags.ErrInvalidSyntax},
		{"sort -mode x", pixel.ErrInvalidOption},
		{"sort -thr 300", pixel.ErrInvalidOption},
		{"sort -thr high", pixel.ErrInvalidOption},
		{"sort -fix maybe", pixel.ErrInvalidOption},
		{"offset -cnl a", pixel.ErrInvalidOption},
		{"shift -dis ten", pixel.ErrInvalidOption},
		{"shift -dis -1", pixel.ErrInvalidOption},
		{"extend -dis -1", pixel.ErrInvalidOption},
		{"rotate -ang 45", pixel.ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			_, err := r.Build(tt.command)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRegistryBuildChain(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))

	effs, err := r.BuildChain("sort -mode g; offset -dis 2\nrotate -ang 180")
	require.NoError(t, err)
	assert.Equal(t, []string{"sort", "offset", "rotate"}, NewChain(WithEffect(effs...)).Names())

	_, err = r.BuildChain("sort; blur")
	assert.True(t, errors.Is(err, ErrUnknownEffect))
}

func TestRegistryUsage(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, []string{"extend", "offset", "rotate", "shift", "sort"}, r.Names())

	usage := r.Usage()
	for _, name := range r.Names() {
		assert.Contains(t, usage, name)
	}
	assert.Contains(t, usage, "-thr 0..255")
}

func TestRegistryShiftLargestDistance(t *testing.T) {
	r := NewRegistry(rand.New(rand.NewSource(1)))

	eff, err := r.Build(fmt.Sprintf("shift -dis %d", math.MaxInt))
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		_, err = eff.Process(coords(4, 4))
	})
	assert.NoError(t, err)
}

func TestRegistryLocksRand(t *testing.T) {
	src := rand.New(rand.NewSource(1))

	r := NewRegistry(src)
	locked, ok := r.rng.(*LockedRand)
	require.True(t, ok)
	assert.Same(t, src, locked.rng)

	// an already locked source is shared as is
	assert.Same(t, locked, NewRegistry(locked).rng)

	assert.Nil(t, NewRegistry(nil).rng)
}
