package sponsorship

import (
	"fmt"
	"sort"
)

const (
	// DefaultRuntimeMinutes is assumed when the catalog has no runtime.
	DefaultRuntimeMinutes = 90
	// Movies strictly longer than this are billed at the long price.
	LongRuntimeThresholdMinutes = 120
)

// ContentRef identifies a sponsorable work as returned by the catalog.
type ContentRef struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	MediaType      MediaType `json:"mediaType"`
	PosterRef      string    `json:"posterRef,omitempty"`
	RuntimeMinutes *int      `json:"runtimeMinutes,omitempty"`
}

func (c ContentRef) IsMovie() bool {
	return c.MediaType == MediaTypeMovie
}

// EffectiveRuntime falls back to DefaultRuntimeMinutes for unknown or non-positive runtimes.
func (c ContentRef) EffectiveRuntime() int {
	if c.RuntimeMinutes == nil || *c.RuntimeMinutes <= 0 {
		return DefaultRuntimeMinutes
	}
	return *c.RuntimeMinutes
}

func (c ContentRef) IsLongMovie() bool {
	return c.EffectiveRuntime() > LongRuntimeThresholdMinutes
}

type EpisodeRef struct {
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Name    string `json:"name,omitempty"`
}

func (e EpisodeRef) Key() EpisodeKey {
	return EpisodeKey{Season: e.Season, Episode: e.Episode}
}

// EpisodeKey addresses one episode. Its text form is "S<season>E<episode>".
type EpisodeKey struct {
	Season  int
	Episode int
}

func (k EpisodeKey) String() string {
	return fmt.Sprintf("S%dE%d", k.Season, k.Episode)
}

func (k EpisodeKey) Less(other EpisodeKey) bool {
	if k.Season != other.Season {
		return k.Season < other.Season
	}
	return k.Episode < other.Episode
}

func (k EpisodeKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EpisodeKey) UnmarshalText(b []byte) error {
	parsed, err := ParseEpisodeKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func ParseEpisodeKey(s string) (EpisodeKey, error) {
	var k EpisodeKey
	var rest string
	n, _ := fmt.Sscanf(s, "S%dE%d%s", &k.Season, &k.Episode, &rest)
	if n != 2 || k.Season < 0 || k.Episode < 1 {
		return EpisodeKey{}, fmt.Errorf("invalid episode key %q", s)
	}
	return k, nil
}

func SortEpisodes(eps []EpisodeRef) {
	sort.SliceStable(eps, func(i, j int) bool {
		return eps[i].Key().Less(eps[j].Key())
	})
}
