//go:build unit

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra/catalog"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/pkg/ptr"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	_, err := catalog.New("", "http://x", "en-US")
	assert.Error(t, err)
	_, err = catalog.New("k", " ", "en-US")
	assert.Error(t, err)
	c, err := catalog.New("k", "http://x/", "")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSearch(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/search/multi": `{"page":1,"results":[
			{"id":603,"title":"The Matrix","media_type":"movie","poster_path":"/m.jpg"},
			{"id":6384,"name":"Keanu Reeves","media_type":"person"},
			{"id":1399,"name":"Matrix Chronicles","media_type":"tv"}
		]}`,
	})
	c, err := catalog.New("k", srv.URL, "en-US")
	require.NoError(t, err)

	got, err := c.Search(context.Background(), "matrix")
	require.NoError(t, err)

	want := []sponsorship.ContentRef{
		{ID: 603, Title: "The Matrix", MediaType: sponsorship.MediaTypeMovie, PosterRef: "/m.jpg"},
		{ID: 1399, Title: "Matrix Chronicles", MediaType: sponsorship.MediaTypeSeries},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	c, err := catalog.New("k", "http://127.0.0.1:1", "")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "  ")
	assert.True(t, errs.Is(err, catalog.ErrEmptyQuery))
}

func TestGetDetails(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/movie/603": `{"id":603,"title":"The Matrix","poster_path":"/m.jpg","runtime":136}`,
		"/movie/7":   `{"id":7,"title":"Short","runtime":0}`,
		"/tv/1399": `{"id":1399,"name":"Matrix Chronicles","seasons":[
			{"season_number":2,"episode_count":8},
			{"season_number":0,"episode_count":3},
			{"season_number":1,"episode_count":10},
			{"season_number":3,"episode_count":0}
		]}`,
	})
	c, err := catalog.New("k", srv.URL, "en-US")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("movie", func(t *testing.T) {
		got, err := c.GetDetails(ctx, 603, sponsorship.MediaTypeMovie)
		require.NoError(t, err)
		want := &shared.ContentDetails{Content: sponsorship.ContentRef{
			ID: 603, Title: "The Matrix", MediaType: sponsorship.MediaTypeMovie, PosterRef: "/m.jpg", RuntimeMinutes: ptr.Of(136),
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("details mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("movie without runtime", func(t *testing.T) {
		got, err := c.GetDetails(ctx, 7, sponsorship.MediaTypeMovie)
		require.NoError(t, err)
		assert.Nil(t, got.Content.RuntimeMinutes)
		assert.Equal(t, sponsorship.DefaultRuntimeMinutes, got.Content.EffectiveRuntime())
	})

	t.Run("series skips specials and empty seasons", func(t *testing.T) {
		got, err := c.GetDetails(ctx, 1399, sponsorship.MediaTypeSeries)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.Seasons)
		assert.Equal(t, sponsorship.MediaTypeSeries, got.Content.MediaType)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := c.GetDetails(ctx, 99, sponsorship.MediaTypeMovie)
		assert.True(t, errs.Is(err, catalog.ErrNotFound))
	})
}

func TestGetSeasonEpisodes(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/tv/1399/season/1": `{"season_number":1,"episodes":[
			{"name":"Pilot","season_number":1,"episode_number":1},
			{"name":"Second","season_number":1,"episode_number":2}
		]}`,
	})
	c, err := catalog.New("k", srv.URL, "en-US")
	require.NoError(t, err)

	got, err := c.GetSeasonEpisodes(context.Background(), 1399, 1)
	require.NoError(t, err)
	assert.Equal(t, []sponsorship.EpisodeRef{
		{Season: 1, Episode: 1, Name: "Pilot"},
		{Season: 1, Episode: 2, Name: "Second"},
	}, got)
}

func TestUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := catalog.New("k", srv.URL, "")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "matrix")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
