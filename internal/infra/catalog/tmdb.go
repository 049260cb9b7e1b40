// Package catalog adapts The Movie Database v3 API to the content lookup port.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"
)

var (
	ErrEmptyQuery = errs.New("query must not be empty")
	ErrNotFound   = errs.New("content not found in catalog")
)

type searchResult struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	MediaType    string `json:"media_type"`
	PosterPath   string `json:"poster_path"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
}

type searchResponse struct {
	Page    int            `json:"page"`
	Results []searchResult `json:"results"`
}

type movieDetails struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	Runtime    int    `json:"runtime"`
}

type tvSeason struct {
	SeasonNumber int `json:"season_number"`
	EpisodeCount int `json:"episode_count"`
}

type tvDetails struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	PosterPath string     `json:"poster_path"`
	Seasons    []tvSeason `json:"seasons"`
}

type episode struct {
	Name          string `json:"name"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	Runtime       int    `json:"runtime"`
}

type seasonDetails struct {
	SeasonNumber int       `json:"season_number"`
	Episodes     []episode `json:"episodes"`
}

// Client talks to TMDB. Only movie and tv results are surfaced.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ shared.CatalogLookup = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errs.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errs.New("tmdb base url required")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search runs a multi search and drops people and other non-content results.
func (c *Client) Search(ctx context.Context, query string) ([]sponsorship.ContentRef, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	var payload searchResponse
	if err := c.get(ctx, "/search/multi", url.Values{"query": {query}, "include_adult": {"false"}}, &payload); err != nil {
		return nil, err
	}

	out := make([]sponsorship.ContentRef, 0, len(payload.Results))
	for _, r := range payload.Results {
		var ref sponsorship.ContentRef
		switch r.MediaType {
		case "movie":
			ref = sponsorship.ContentRef{ID: r.ID, Title: r.Title, MediaType: sponsorship.MediaTypeMovie}
		case "tv":
			ref = sponsorship.ContentRef{ID: r.ID, Title: r.Name, MediaType: sponsorship.MediaTypeSeries}
		default:
			continue
		}
		ref.PosterRef = r.PosterPath
		out = append(out, ref)
	}
	return out, nil
}

func (c *Client) GetDetails(ctx context.Context, id int64, mediaType sponsorship.MediaType) (*shared.ContentDetails, error) {
	switch mediaType {
	case sponsorship.MediaTypeMovie:
		var m movieDetails
		if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), nil, &m); err != nil {
			return nil, err
		}
		ref := sponsorship.ContentRef{ID: m.ID, Title: m.Title, MediaType: sponsorship.MediaTypeMovie, PosterRef: m.PosterPath}
		if m.Runtime > 0 {
			runtime := m.Runtime
			ref.RuntimeMinutes = &runtime
		}
		return &shared.ContentDetails{Content: ref}, nil
	case sponsorship.MediaTypeSeries:
		var tv tvDetails
		if err := c.get(ctx, "/tv/"+strconv.FormatInt(id, 10), nil, &tv); err != nil {
			return nil, err
		}
		details := &shared.ContentDetails{
			Content: sponsorship.ContentRef{ID: tv.ID, Title: tv.Name, MediaType: sponsorship.MediaTypeSeries, PosterRef: tv.PosterPath},
		}
		// season 0 holds specials
		for _, s := range tv.Seasons {
			if s.SeasonNumber > 0 && s.EpisodeCount > 0 {
				details.Seasons = append(details.Seasons, s.SeasonNumber)
			}
		}
		slices.Sort(details.Seasons)
		return details, nil
	default:
		return nil, errs.Newf("unsupported media type %q", mediaType)
	}
}

func (c *Client) GetSeasonEpisodes(ctx context.Context, id int64, season int) ([]sponsorship.EpisodeRef, error) {
	var payload seasonDetails
	path := "/tv/" + strconv.FormatInt(id, 10) + "/season/" + strconv.Itoa(season)
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]sponsorship.EpisodeRef, 0, len(payload.Episodes))
	for _, e := range payload.Episodes {
		out = append(out, sponsorship.EpisodeRef{Season: season, Episode: e.EpisodeNumber, Name: e.Name})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return errs.Wrap(err, "parse tmdb url")
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return errs.Wrap(err, "execute tmdb request (latency="+latency.String()+")")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return errs.Newf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode tmdb response")
	}
	return nil
}
