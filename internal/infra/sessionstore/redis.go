// Package sessionstore persists wizard sessions in redis.
package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "wizard:session:"
	// optimistic WATCH retries before Update gives up
	maxUpdateAttempts = 5
)

var ErrConcurrentUpdate = errs.Conflict("wizard session was modified concurrently")

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ shared.SessionStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *RedisStore) Create(ctx context.Context, sess *wizard.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "failed to encode wizard session")
	}
	if err := s.client.Set(ctx, key(sess.ID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store wizard session")
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*wizard.Session, error) {
	return load(ctx, s.client, id)
}

// Update re-reads, mutates and writes the session under WATCH. Every
// successful write refreshes the TTL.
func (s *RedisStore) Update(ctx context.Context, id uuid.UUID, fn func(*wizard.Session) error) (*wizard.Session, error) {
	k := key(id)
	var updated *wizard.Session

	txf := func(tx *redis.Tx) error {
		sess, err := load(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(sess); err != nil {
			return err
		}
		raw, err := json.Marshal(sess)
		if err != nil {
			return errs.Wrap(err, "failed to encode wizard session")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, raw, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = sess
		return nil
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, txf, k)
		if err == nil {
			return updated, nil
		}
		if errs.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, ErrConcurrentUpdate
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete wizard session")
	}
	return nil
}

func load(ctx context.Context, c redis.Cmdable, id uuid.UUID) (*wizard.Session, error) {
	raw, err := c.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, shared.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "failed to read wizard session")
	}
	var sess wizard.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, errs.Wrap(err, "failed to decode wizard session")
	}
	return &sess, nil
}
