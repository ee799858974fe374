package place

import (
	"context"
	"errors"
)

var (
	// ErrNilBreakGraph indicates a nil *breakgraph.BreakGraph was passed to Place.
	ErrNilBreakGraph = errors.New("place: break graph is nil")
	// ErrNilGraph indicates a nil origin *graph.Graph was passed to Place.
	ErrNilGraph = errors.New("place: origin graph is nil")
	// ErrNilRank indicates a nil rank map was passed to Place.
	ErrNilRank = errors.New("place: rank map is nil")
	// ErrCanceled is returned when the context supplied via WithContext is
	// canceled mid-pass.
	ErrCanceled = errors.New("place: canceled")
)

// Option configures a Place call.
type Option func(*config)

type config struct {
	ctx context.Context
}

func defaultConfig() config {
	return config{
		ctx: context.Background(),
	}
}

// WithContext installs ctx as the cancellation source for Place. A nil
// context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
