// Package cache wraps Redis as a best-effort JSON read-through store.
// A broken or unreachable backend degrades every operation to a miss or a
// no-op; callers always fall through to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Store is safe for concurrent use by many requests.
type Store struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewStore creates a Store on top of an existing Redis client.
func NewStore(rdb *redis.Client, log zerolog.Logger) *Store {
	return &Store{
		rdb: rdb,
		log: log.With().Str("component", "cache").Logger(),
	}
}

// GetJSON loads the value at key into dst. Returns false on a miss, an
// unmarshalable entry, or any backend error — never a failure.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) bool {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, dropping")
		s.Delete(ctx, key)
		return false
	}
	return true
}

// SetJSON stores val at key with the given TTL. Failures are logged only.
func (s *Store) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	raw, err := json.Marshal(val)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}
	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Delete removes keys immediately. Invalidation is best-effort: a failed
// delete means a stale entry lives until its TTL, not a broken request.
func (s *Store) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
