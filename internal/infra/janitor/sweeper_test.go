//go:build unit

package janitor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"creator-sponsorship/internal/infra/janitor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyStore struct {
	calls atomic.Int32
	n     int64
	err   error
}

func (s *keyStore) DeleteExpired(context.Context) (int64, error) {
	s.calls.Add(1)
	return s.n, s.err
}

func TestSweepOnce(t *testing.T) {
	store := &keyStore{n: 3}
	n, err := janitor.NewSweeper(store, time.Hour, nil).SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	store.err = errors.New("db down")
	_, err = janitor.NewSweeper(store, time.Hour, nil).SweepOnce(context.Background())
	assert.Error(t, err)
}

func TestSweeperRunsOnInterval(t *testing.T) {
	store := &keyStore{}
	s := janitor.NewSweeper(store, 10*time.Millisecond, nil)
	require.NoError(t, s.Start(context.Background()))

	assert.Eventually(t, func() bool { return store.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	stopped := store.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, store.calls.Load(), "no sweeps after Stop")
}

func TestSweeperDisabled(t *testing.T) {
	store := &keyStore{}
	s := janitor.NewSweeper(store, 0, nil)
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	assert.Zero(t, store.calls.Load())
}
