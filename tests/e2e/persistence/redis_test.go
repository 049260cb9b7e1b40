//go:build e2e

package persistence_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/infra/catalog"
	"creator-sponsorship/internal/infra/sessionstore"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/pkg/ptr"
	"creator-sponsorship/internal/usecase/shared"
	"creator-sponsorship/tests/common/builder"
	"creator-sponsorship/tests/common/fake"
	"creator-sponsorship/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisSuite struct {
	e2e.SharedSuite
}

func TestRedisSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisSuite))
}

var series = sponsorship.ContentRef{ID: 1399, Title: "Game of Thrones", MediaType: sponsorship.MediaTypeSeries}

func (s *RedisSuite) TestSessionStore() {
	ctx := context.Background()

	s.Run("round trips state and sets ttl", func() {
		t := s.T()
		store := sessionstore.NewRedisStore(s.Redis, time.Hour)
		eps := []sponsorship.EpisodeRef{{Season: 1, Episode: 1, Name: "Pilot"}, {Season: 1, Episode: 2}}
		sess := builder.NewSessionBuilder().AtSeries(series, 1, eps, eps[0]).BuildDomain()

		require.NoError(t, store.Create(ctx, sess))

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, wizard.KindSelectingUnits, got.State.Kind())
		d, ok := wizard.DraftOf(got.State)
		require.True(t, ok)
		if diff := cmp.Diff(eps, d.Episodes[1]); diff != "" {
			t.Errorf("episodes mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, d.Selected, 1)
		assert.Equal(t, sess.PriceList, got.PriceList)

		ttl, err := s.Redis.TTL(ctx, "wizard:session:"+sess.ID.String()).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	s.Run("update persists only successful mutations", func() {
		t := s.T()
		store := sessionstore.NewRedisStore(s.Redis, time.Hour)
		sess := builder.NewSessionBuilder().BuildDomain()
		require.NoError(t, store.Create(ctx, sess))

		boom := errs.New("rejected")
		_, err := store.Update(ctx, sess.ID, func(s *wizard.Session) error {
			s.ContactInstructions = "changed"
			return boom
		})
		require.ErrorIs(t, err, boom)

		updated, err := store.Update(ctx, sess.ID, func(s *wizard.Session) error {
			s.Version++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version)

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
		assert.Equal(t, sess.ContactInstructions, got.ContactInstructions)
	})

	s.Run("concurrent updates never lose writes", func() {
		t := s.T()
		store := sessionstore.NewRedisStore(s.Redis, time.Hour)
		sess := builder.NewSessionBuilder().BuildDomain()
		require.NoError(t, store.Create(ctx, sess))

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int64
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, sess.ID, func(s *wizard.Session) error {
					s.Version++
					return nil
				})
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, sessionstore.ErrConcurrentUpdate)
			}()
		}
		wg.Wait()

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1+succeeded, got.Version)
	})

	s.Run("missing and deleted sessions are not found", func() {
		t := s.T()
		store := sessionstore.NewRedisStore(s.Redis, time.Hour)

		_, err := store.Get(ctx, uuid.New())
		require.ErrorIs(t, err, shared.ErrSessionNotFound)

		sess := builder.NewSessionBuilder().BuildDomain()
		require.NoError(t, store.Create(ctx, sess))
		require.NoError(t, store.Delete(ctx, sess.ID))
		_, err = store.Get(ctx, sess.ID)
		require.ErrorIs(t, err, shared.ErrSessionNotFound)
	})
}

func (s *RedisSuite) TestCatalogCache() {
	ctx := context.Background()
	movie := sponsorship.ContentRef{ID: 27205, Title: "Inception", MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: ptr.Of(148)}

	s.Run("serves repeated lookups from redis", func() {
		t := s.T()
		upstream := fake.NewCatalog().AddMovie(movie).AddSeries(series, map[int]int{1: 3})
		lookup := catalog.NewCachedLookup(upstream, s.Redis, time.Minute)

		first, err := lookup.Search(ctx, "Inception")
		require.NoError(t, err)
		second, err := lookup.Search(ctx, "  inception ")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, upstream.Calls("Search"), "normalized queries share one entry")

		for range 2 {
			d, err := lookup.GetDetails(ctx, series.ID, series.MediaType)
			require.NoError(t, err)
			assert.Equal(t, []int{1}, d.Seasons)

			eps, err := lookup.GetSeasonEpisodes(ctx, series.ID, 1)
			require.NoError(t, err)
			assert.Len(t, eps, 3)
		}
		assert.Equal(t, 1, upstream.Calls("GetDetails"))
		assert.Equal(t, 1, upstream.Calls("GetSeasonEpisodes"))
	})

	s.Run("does not cache failures", func() {
		t := s.T()
		upstream := fake.NewCatalog().AddMovie(movie)
		lookup := catalog.NewCachedLookup(upstream, s.Redis, time.Minute)

		upstream.Err = fake.ErrCatalogDown
		_, err := lookup.Search(ctx, "inception")
		require.ErrorIs(t, err, fake.ErrCatalogDown)

		upstream.Err = nil
		results, err := lookup.Search(ctx, "inception")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 2, upstream.Calls("Search"))
	})
}
