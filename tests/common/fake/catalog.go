//go:build unit || e2e

package fake

import (
	"context"
	"errors"
	"strings"
	"sync"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/usecase/shared"
)

var ErrCatalogDown = errors.New("catalog unavailable")

type seasonKey struct {
	id     int64
	season int
}

// Catalog serves canned content. Setting Err makes every call fail.
type Catalog struct {
	mu       sync.Mutex
	Err      error
	contents []shared.ContentDetails
	seasons  map[seasonKey][]sponsorship.EpisodeRef
	calls    map[string]int
}

var _ shared.CatalogLookup = (*Catalog)(nil)

func NewCatalog() *Catalog {
	return &Catalog{seasons: map[seasonKey][]sponsorship.EpisodeRef{}, calls: map[string]int{}}
}

func (c *Catalog) AddMovie(content sponsorship.ContentRef) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contents = append(c.contents, shared.ContentDetails{Content: content})
	return c
}

// AddSeries registers a series with episodes numbered 1..n for each season.
func (c *Catalog) AddSeries(content sponsorship.ContentRef, episodesPerSeason map[int]int) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := shared.ContentDetails{Content: content}
	for season, n := range episodesPerSeason {
		d.Seasons = append(d.Seasons, season)
		eps := make([]sponsorship.EpisodeRef, 0, n)
		for i := 1; i <= n; i++ {
			eps = append(eps, sponsorship.EpisodeRef{Season: season, Episode: i})
		}
		c.seasons[seasonKey{content.ID, season}] = eps
	}
	c.contents = append(c.contents, d)
	return c
}

func (c *Catalog) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func (c *Catalog) Search(_ context.Context, query string) ([]sponsorship.ContentRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["Search"]++
	if c.Err != nil {
		return nil, c.Err
	}
	var out []sponsorship.ContentRef
	for _, d := range c.contents {
		if strings.Contains(strings.ToLower(d.Content.Title), strings.ToLower(query)) {
			out = append(out, d.Content)
		}
	}
	return out, nil
}

func (c *Catalog) GetDetails(_ context.Context, id int64, mediaType sponsorship.MediaType) (*shared.ContentDetails, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["GetDetails"]++
	if c.Err != nil {
		return nil, c.Err
	}
	for _, d := range c.contents {
		if d.Content.ID == id && d.Content.MediaType == mediaType {
			out := d
			out.Seasons = append([]int(nil), d.Seasons...)
			return &out, nil
		}
	}
	return nil, errors.New("content not found")
}

func (c *Catalog) GetSeasonEpisodes(_ context.Context, id int64, season int) ([]sponsorship.EpisodeRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["GetSeasonEpisodes"]++
	if c.Err != nil {
		return nil, c.Err
	}
	eps, ok := c.seasons[seasonKey{id, season}]
	if !ok {
		return nil, errors.New("season not found")
	}
	return append([]sponsorship.EpisodeRef(nil), eps...), nil
}
