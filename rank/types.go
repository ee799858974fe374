package rank

import (
	"context"
	"errors"
)

// ErrNilGraph indicates a nil *graph.Graph was passed to Rank.
var ErrNilGraph = errors.New("rank: graph is nil")

// ErrCanceled is returned when the context supplied via WithContext is
// canceled mid-pass.
var ErrCanceled = errors.New("rank: canceled")

// Option configures a Rank call.
type Option func(*config)

type config struct {
	ctx   context.Context
	adder uint32
}

func defaultConfig() config {
	return config{
		ctx:   context.Background(),
		adder: 1,
	}
}

// WithContext installs ctx as the cancellation source for Rank. A nil
// context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithAdder overrides the per-edge rank increment (default 1).
func WithAdder(adder uint32) Option {
	return func(c *config) {
		c.adder = adder
	}
}
