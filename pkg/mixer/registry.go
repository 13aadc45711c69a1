package mixer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"bitgale/pkg/flags"
	"bitgale/pkg/pixel"
)

var ErrUnknownEffect = errors.New("unknown effect")

type builder func(f flags.Flags, rng Rand) (Effect, error)

type entry struct {
	keys  []string
	usage string
	build builder
}

// Registry turns textual effect commands such as "sort -mode r -thr 90" into effects.
type Registry struct {
	rng     Rand
	entries map[string]entry
}

// NewRegistry builds effects drawing from rng. Every effect shares it, so it is
// wrapped in a LockedRand unless it already is one.
func NewRegistry(rng Rand) *Registry {
	if _, ok := rng.(*LockedRand); !ok && rng != nil {
		rng = NewLockedRand(rng)
	}

	r := &Registry{rng: rng, entries: make(map[string]entry)}

	r.register("sort", "-mode r|g|b|c  -thr 0..255  -dir horizontal|vertical  -fix true|false", buildSort, "mode", "thr", "dir", "fix")
	r.register("offset", "-cnl r|g|b  -dis 0..width-1", buildOffset, "cnl", "dis")
	r.register("shift", "-dis max displacement", buildShift, "dis")
	r.register("extend", "-dis columns (default 20% of width)", buildExtend, "dis")
	r.register("rotate", "-ang 90|180|270  -fix true|false", buildRotate, "ang", "fix")

	return r
}

func (r *Registry) register(name, usage string, build builder, keys ...string) {
	r.entries[name] = entry{keys: keys, usage: usage, build: build}
}

func (r *Registry) Names() []string {
	names := lo.Keys(r.entries)
	sort.Strings(names)
	return names
}

// Build parses one command: an effect name followed by its flags.
func (r *Registry) Build(command string) (Effect, error) {
	name, rest := command, ""
	if i := strings.IndexAny(command, " \t"); i >= 0 {
		name, rest = command[:i], command[i+1:]
	}

	e, ok := r.entries[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEffect, "%q (known: %s)", name, strings.Join(r.Names(), ", "))
	}

	f, err := flags.Parse(rest, e.keys...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	eff, err := e.build(f, r.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return eff, nil
}

// BuildChain builds every command of a ';' or newline separated chain.
func (r *Registry) BuildChain(text string) ([]Effect, error) {
	return r.BuildAll(flags.SplitChain(text))
}

func (r *Registry) BuildAll(commands []string) ([]Effect, error) {
	effs := make([]Effect, 0, len(commands))
	for _, cmd := range commands {
		eff, err := r.Build(strings.TrimSpace(cmd))
		if err != nil {
			return nil, err
		}
		effs = append(effs, eff)
	}
	return effs, nil
}

func (r *Registry) Usage() string {
	var sb strings.Builder
	for _, name := range r.Names() {
		_, _ = fmt.Fprintf(&sb, "%-7s %s\n", name, r.entries[name].usage)
	}
	return sb.String()
}

func intFlag(f flags.Flags, key string, def int) (int, error) {
	n, err := f.Int(key, def)
	if err != nil {
		return 0, errors.Wrapf(pixel.ErrInvalidOption, "-%s %q is not an integer", key, f[key])
	}
	return n, nil
}

func boolFlag(f flags.Flags, key string) (bool, error) {
	b, err := f.Bool(key, false)
	if err != nil {
		return false, errors.Wrapf(pixel.ErrInvalidOption, "-%s %q is not a boolean", key, f[key])
	}
	return b, nil
}

func buildSort(f flags.Flags, _ Rand) (Effect, error) {
	opts := DefaultSortOptions()

	var err error
	if opts.Mode, err = ParseMode(f.String("mode", "c")); err != nil {
		return nil, err
	}
	if opts.Direction, err = ParseDirection(f.String("dir", "horizontal")); err != nil {
		return nil, err
	}
	if opts.Threshold, err = intFlag(f, "thr", DefaultThreshold); err != nil {
		return nil, err
	}
	if opts.ExactRotation, err = boolFlag(f, "fix"); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return EffectSort(opts), nil
}

func buildOffset(f flags.Flags, _ Rand) (Effect, error) {
	opts := DefaultOffsetOptions()

	var err error
	if opts.Channel, err = ParseChannel(f.String("cnl", "r")); err != nil {
		return nil, err
	}
	if opts.Distance, err = intFlag(f, "dis", DefaultOffsetDistance); err != nil {
		return nil, err
	}

	return EffectOffset(opts), nil
}

func buildShift(f flags.Flags, rng Rand) (Effect, error) {
	dis, err := intFlag(f, "dis", DefaultShiftDistance)
	if err != nil {
		return nil, err
	}
	if dis < 0 {
		return nil, errors.Wrapf(pixel.ErrInvalidOption, "max distance %d is negative", dis)
	}

	return EffectShift(ShiftOptions{MaxDistance: dis}, rng), nil
}

func buildExtend(f flags.Flags, _ Rand) (Effect, error) {
	dis, err := intFlag(f, "dis", AutoDistance)
	if err != nil {
		return nil, err
	}
	if f.Has("dis") && dis < 0 {
		return nil, errors.Wrapf(pixel.ErrInvalidOption, "distance %d is negative", dis)
	}

	return EffectExtend(ExtendOptions{Distance: dis}), nil
}

func buildRotate(f flags.Flags, _ Rand) (Effect, error) {
	ang, err := intFlag(f, "ang", 90)
	if err != nil {
		return nil, err
	}
	if ang != 90 && ang != 180 && ang != 270 {
		return nil, errors.Wrapf(pixel.ErrInvalidAngle, "%d is not a right angle", ang)
	}

	exact, err := boolFlag(f, "fix")
	if err != nil {
		return nil, err
	}

	return EffectRotate(ang, exact), nil
}
