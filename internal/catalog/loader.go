package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ErrNilFetcher is returned when a Loader has no Fetcher.
var ErrNilFetcher = errors.New("catalog fetcher cannot be nil")

// loadKey is the single in-flight slot; a Loader only ever serves one collection.
const loadKey = "collection"

// Fetcher retrieves the complete, unsorted collection.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Entity, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]Entity, error)

// FetchAll calls f.
func (f FetcherFunc) FetchAll(ctx context.Context) ([]Entity, error) {
	return f(ctx)
}

// Loader runs the initial fetch. Concurrent Load calls share the one fetch
// already in flight instead of starting another.
type Loader struct {
	fetcher Fetcher
	group   singleflight.Group
}

// NewLoader creates a Loader around fetcher.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches the collection. On failure it returns a nil slice and the
// error; partial results are never returned.
func (l *Loader) Load(ctx context.Context) ([]Entity, error) {
	if l == nil || l.fetcher == nil {
		return nil, ErrNilFetcher
	}

	logger := zerolog.Ctx(ctx)

	v, err, shared := l.group.Do(loadKey, func() (interface{}, error) {
		logger.Debug().Ctx(ctx).Msg("fetching collection")
		return l.fetcher.FetchAll(ctx)
	})
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Bool("shared", shared).Msg("collection fetch failed")
		return nil, err
	}

	entities, _ := v.([]Entity)
	logger.Info().Ctx(ctx).Int("entities", len(entities)).Bool("shared", shared).Msg("collection loaded")
	return entities, nil
}

// LoadInto fetches the collection and installs it on store, moving it
// through StatusLoading to StatusReady or StatusFailed.
func (l *Loader) LoadInto(ctx context.Context, store *Store) error {
	store.BeginLoad()
	entities, err := l.Load(ctx)
	store.CompleteLoad(entities, err)
	return err
}
