package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dom "ControleGastos/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyGeneration = "controle:gen"
	keyUsers      = "controle:users:%d"
	keyTotals     = "controle:totals:%d"
)

// SummaryCache caches the user listing with totals and the global totals in
// Redis. Entries are keyed by a generation that every write bumps, so a
// read that loaded before a write can only fill a key nobody reads anymore.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSummaryCache returns a new SummaryCache.
func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

// Generation returns the current generation. Read it before loading from
// the database and pass it to the Get and Set calls.
func (c *SummaryCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, keyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// GetUsers returns the cached listing, or nil on a miss.
func (c *SummaryCache) GetUsers(ctx context.Context, gen int64) ([]dom.UserSummary, error) {
	var list []dom.UserSummary
	ok, err := c.get(ctx, fmt.Sprintf(keyUsers, gen), &list)
	if err != nil || !ok {
		return nil, err
	}
	return list, nil
}

func (c *SummaryCache) SetUsers(ctx context.Context, gen int64, list []dom.UserSummary) error {
	return c.set(ctx, fmt.Sprintf(keyUsers, gen), list)
}

// GetTotals returns the cached totals; ok is false on a miss.
func (c *SummaryCache) GetTotals(ctx context.Context, gen int64) (t dom.Totals, ok bool, err error) {
	ok, err = c.get(ctx, fmt.Sprintf(keyTotals, gen), &t)
	return t, ok, err
}

func (c *SummaryCache) SetTotals(ctx context.Context, gen int64, t dom.Totals) error {
	return c.set(ctx, fmt.Sprintf(keyTotals, gen), t)
}

// InvalidateAll bumps the generation and drops the entries of the old one.
// Entries written later under the old generation expire with the TTL.
func (c *SummaryCache) InvalidateAll(ctx context.Context) error {
	gen, err := c.rdb.Incr(ctx, keyGeneration).Result()
	if err != nil {
		return err
	}
	return c.rdb.Del(ctx, fmt.Sprintf(keyUsers, gen-1), fmt.Sprintf(keyTotals, gen-1)).Err()
}

func (c *SummaryCache) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *SummaryCache) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
