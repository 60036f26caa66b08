package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Run("returns fetched entities", func(t *testing.T) {
		l := NewLoader(FetcherFunc(func(context.Context) ([]Entity, error) {
			return people(), nil
		}))
		got, err := l.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, len(people()))
	})

	t.Run("discards partial results on failure", func(t *testing.T) {
		boom := errors.New("boom")
		l := NewLoader(FetcherFunc(func(context.Context) ([]Entity, error) {
			return people()[:3], boom
		}))
		got, err := l.Load(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})

	t.Run("nil fetcher", func(t *testing.T) {
		_, err := NewLoader(nil).Load(context.Background())
		assert.ErrorIs(t, err, ErrNilFetcher)

		var l *Loader
		_, err = l.Load(context.Background())
		assert.ErrorIs(t, err, ErrNilFetcher)
	})
}

func TestLoader_SharesInFlightFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	l := NewLoader(FetcherFunc(func(context.Context) ([]Entity, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return people(), nil
	}))

	var wg sync.WaitGroup
	results := make([][]Entity, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = l.Load(context.Background())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = l.Load(context.Background())
	}()

	// Give the second caller time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, results[0], len(people()))
	assert.Len(t, results[1], len(people()))
}

func TestLoader_LoadInto(t *testing.T) {
	s := NewStore()
	l := NewLoader(FetcherFunc(func(context.Context) ([]Entity, error) {
		return people(), nil
	}))
	require.NoError(t, l.LoadInto(context.Background(), s))
	assert.Equal(t, StatusReady, s.Status())
	assert.Equal(t, "Arvel Crynyd", s.Baseline()[0].Name)

	failing := NewLoader(FetcherFunc(func(context.Context) ([]Entity, error) {
		return nil, errors.New("offline")
	}))
	require.Error(t, failing.LoadInto(context.Background(), s))
	assert.Equal(t, StatusFailed, s.Status())
	assert.Nil(t, s.Baseline())
}
