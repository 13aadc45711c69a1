package mixer

import (
	"bitgale/pkg/pixel"
)

// Rand is the random source consumed by randomized effects. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Effect transforms a grid. The grid passed in is owned by the effect until it returns,
// and only the returned grid is valid afterwards.
type Effect interface {
	Name() string
	Process(g pixel.Grid) (pixel.Grid, error)
}
