package mixer

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"bitgale/pkg/pixel"
)

func NewChain(opts ...Option) *Chain {
	c := &Chain{
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Chain applies effects in order, feeding each one the grid returned by the previous.
type Chain struct {
	effs []Effect
	log  *zap.Logger
}

func (c *Chain) Len() int {
	return len(c.effs)
}

func (c *Chain) Names() []string {
	return lo.Map(c.effs, func(e Effect, _ int) string { return e.Name() })
}

func (c *Chain) Apply(g pixel.Grid) (pixel.Grid, error) {
	for i, eff := range c.effs {
		start := time.Now()

		out, err := eff.Process(g)
		if err != nil {
			return nil, fmt.Errorf("effect #%d %s failed: %w", i+1, eff.Name(), err)
		}
		g = out

		c.log.With(
			zap.Int("step", i+1),
			zap.String("effect", eff.Name()),
			zap.Int("w", g.Width()),
			zap.Int("h", g.Height()),
			zap.String("cost", time.Since(start).String()),
		).Debug("applied")
	}

	return g, nil
}
