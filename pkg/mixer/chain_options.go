package mixer

import "go.uber.org/zap"

type Option func(c *Chain)

func WithEffect(e ...Effect) Option {
	return func(c *Chain) {
		c.effs = append(c.effs, e...)
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Chain) {
		c.log = log.With(zap.String("via", "mixer-chain"))
	}
}
