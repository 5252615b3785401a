package main

import (
	"context"
	"errors"

	"github.com/fwojciec/twir"
	"github.com/fwojciec/twir/fs"
	twirhttp "github.com/fwojciec/twir/http"
)

// sourceFetcher reads local files directly and downloads everything else.
type sourceFetcher struct {
	file   twir.Fetcher
	remote twir.Fetcher
}

func newSourceFetcher() *sourceFetcher {
	return &sourceFetcher{
		file:   fs.NewFetcher(),
		remote: twirhttp.NewFetcher(),
	}
}

func (f *sourceFetcher) Fetch(ctx context.Context, location string) (string, error) {
	if fs.IsLocal(location) {
		return f.file.Fetch(ctx, location)
	}
	return f.remote.Fetch(ctx, location)
}

func (f *sourceFetcher) Close() error {
	return errors.Join(f.file.Close(), f.remote.Close())
}
