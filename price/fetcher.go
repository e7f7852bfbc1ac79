package price

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Fetcher queries the configured sources in priority order and returns
// the first healthy quote. Source failures never abort the fetch,
// they only let the fallback proceed
type Fetcher struct {
	sources []Source
	logger  *slog.Logger

	latest   *Quote
	latestMu sync.RWMutex
}

// NewFetcher creates a quote fetcher over the given ordered sources
func NewFetcher(sources []Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		sources: sources,
		logger:  noopLogger,
	}

	// Apply the options
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch returns the first quote with a positive last price, in source
// priority order. When every source fails or reports a non-positive
// price, nil is returned to signal absence, not an error
func (f *Fetcher) Fetch(ctx context.Context) *Quote {
	for _, source := range f.sources {
		quote, err := source.Fetch(ctx)
		if err != nil {
			f.logger.Warn(
				"unable to fetch quote",
				"source", source.Name(),
				"err", err,
			)

			continue
		}

		if quote == nil || quote.LastPrice <= 0 {
			f.logger.Warn(
				"source returned a non-positive price",
				"source", source.Name(),
			)

			continue
		}

		f.setLatest(quote)

		return quote
	}

	return nil
}

// Latest returns the most recently fetched quote, nil when no fetch
// has succeeded yet
func (f *Fetcher) Latest() *Quote {
	f.latestMu.RLock()
	defer f.latestMu.RUnlock()

	if f.latest == nil {
		return nil
	}

	quote := *f.latest

	return &quote
}

func (f *Fetcher) setLatest(quote *Quote) {
	f.latestMu.Lock()
	defer f.latestMu.Unlock()

	q := *quote
	f.latest = &q
}

type Option func(f *Fetcher)

// WithLogger specifies the logger for the fetcher
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}
