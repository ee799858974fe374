package scc

import (
	"context"
	"errors"
)

// ErrCanceled is returned when the context supplied via WithContext is
// canceled mid-pass.
var ErrCanceled = errors.New("scc: canceled")

// Option configures a Strongly call.
type Option func(*config)

type config struct {
	ctx context.Context
}

func defaultConfig() config {
	return config{
		ctx: context.Background(),
	}
}

// WithContext installs ctx as the cancellation source for Strongly. A nil
// context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
