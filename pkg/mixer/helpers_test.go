package mixer

import (
	"math/rand"
	"testing"

	"bitgale/pkg/pixel"
)

func gray(v uint8) pixel.Pixel {
	return pixel.Pixel{v, v, v}
}

func grayRow(vs ...uint8) []pixel.Pixel {
	row := make([]pixel.Pixel, len(vs))
	for i, v := range vs {
		row[i] = gray(v)
	}
	return row
}

// coords builds a grid whose pixels record their own position as {y, x, 0}.
func coords(w, h int) pixel.Grid {
	g := pixel.New(w, h)
	for y := range g {
		for x := range g[y] {
			g[y][x] = pixel.Pixel{uint8(y), uint8(x), 0}
		}
	}
	return g
}

func noise(rng *rand.Rand, w, h int) pixel.Grid {
	g := pixel.New(w, h)
	for y := range g {
		for x := range g[y] {
			g[y][x] = pixel.Pixel{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		}
	}
	return g
}

// scriptedRand replays fixed draws and records the bounds it was asked for.
type scriptedRand struct {
	t      *testing.T
	values []int
	bounds []int
}

func (r *scriptedRand) Intn(n int) int {
	r.t.Helper()
	if len(r.values) == 0 {
		r.t.Fatalf("unexpected draw Intn(%d)", n)
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scripted value %d out of range for Intn(%d)", v, n)
	}
	r.bounds = append(r.bounds, n)
	return v
}
