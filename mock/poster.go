package mock

import (
	"context"

	"github.com/fwojciec/twir"
)

var _ twir.Poster = (*Poster)(nil)

// Poster is a mock implementation of twir.Poster.
type Poster struct {
	PostFn func(ctx context.Context, text string) error
}

func (p *Poster) Post(ctx context.Context, text string) error {
	return p.PostFn(ctx, text)
}
