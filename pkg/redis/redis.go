package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps the redis connection. Currently used for login rate limiting;
// callers must tolerate a nil *Client and degrade to pass-through.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

func NewClient(addr, password string, db int, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect failed: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", addr))
	return &Client{rdb: rdb, logger: logger}, nil
}

// CheckRateLimit counts requests under key within the window and reports
// whether this one is still allowed.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
