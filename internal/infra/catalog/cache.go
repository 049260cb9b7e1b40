package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "catalog"

// CachedLookup memoizes catalog responses in redis. Cache failures fall
// through to the wrapped lookup; upstream errors are never cached.
type CachedLookup struct {
	next   shared.CatalogLookup
	client redis.Cmdable
	ttl    time.Duration
}

var _ shared.CatalogLookup = (*CachedLookup)(nil)

func NewCachedLookup(next shared.CatalogLookup, client redis.Cmdable, ttl time.Duration) *CachedLookup {
	return &CachedLookup{next: next, client: client, ttl: ttl}
}

func (c *CachedLookup) Search(ctx context.Context, query string) ([]sponsorship.ContentRef, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := sha1.Sum([]byte(normalized))
	key := fmt.Sprintf("%s:search:%x", cachePrefix, sum[:])

	var out []sponsorship.ContentRef
	if c.load(ctx, key, &out) {
		return out, nil
	}
	out, err := c.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

func (c *CachedLookup) GetDetails(ctx context.Context, id int64, mediaType sponsorship.MediaType) (*shared.ContentDetails, error) {
	key := fmt.Sprintf("%s:details:%s:%d", cachePrefix, mediaType, id)

	var out shared.ContentDetails
	if c.load(ctx, key, &out) {
		return &out, nil
	}
	details, err := c.next.GetDetails(ctx, id, mediaType)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, details)
	return details, nil
}

func (c *CachedLookup) GetSeasonEpisodes(ctx context.Context, id int64, season int) ([]sponsorship.EpisodeRef, error) {
	key := fmt.Sprintf("%s:season:%d:%d", cachePrefix, id, season)

	var out []sponsorship.EpisodeRef
	if c.load(ctx, key, &out) {
		return out, nil
	}
	out, err := c.next.GetSeasonEpisodes(ctx, id, season)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

func (c *CachedLookup) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errs.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.WarnContext(ctx, "catalog cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CachedLookup) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}
