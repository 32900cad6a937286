package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laserwood/internal/config"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key does not exist.
var ErrMiss = errors.New("cache miss")

type Client struct {
	client *redis.Client
}

// NewRedis connects to Redis and pings it once.
func NewRedis(ctx context.Context, cfg config.Redis) (*Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{client: c}, nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return data, err
}

func (c *Client) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Client) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}

// allowScript increments the window counter and makes sure it expires. A
// counter left without a TTL is given one, so it can never block for good.
var allowScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// RateLimiter is a fixed-window counter kept in Redis.
type RateLimiter struct {
	client redis.Scripter
	limit  int64
	window time.Duration
}

func NewRateLimiter(c *Client, limit int64, window time.Duration) *RateLimiter {
	return newRateLimiter(c.client, limit, window)
}

func newRateLimiter(s redis.Scripter, limit int64, window time.Duration) *RateLimiter {
	if window < time.Millisecond {
		window = time.Millisecond
	}
	return &RateLimiter{client: s, limit: limit, window: window}
}

func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = "ratelimit:" + key

	n, err := allowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return n <= l.limit, nil
}
