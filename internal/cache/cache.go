// Package cache wraps redis as the key/value store used to memoize derived
// counts. Reads return an explicit (value, ok) pair: a miss and a read error
// are the same signal, and callers fall back to the database either way.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 30 * time.Minute

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New wraps rdb. A nil rdb yields a nil *Client, which is a valid no-op
// cache: every Get misses and mutations do nothing.
func New(rdb *redis.Client) *Client {
	if rdb == nil {
		return nil
	}
	return &Client{rdb: rdb, ttl: defaultTTL}
}

func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s: %v", key, err)
		}
		return "", false
	}
	return v, true
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, value, c.ttl).Err()
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}
