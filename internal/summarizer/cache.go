package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

const cacheKeyPrefix = "summary-flow:summary:"

type cachedGenerator struct {
	next   Generator
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

// NewCache stores generator results in Redis, keyed by the text and options.
// Redis failures are logged and fall through to the wrapped generator.
func NewCache(next Generator, rdb redis.Cmdable, ttl time.Duration, log logger.Logger) Generator {
	return &cachedGenerator{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: log,
	}
}

func (c *cachedGenerator) Configured() bool {
	return c.next.Configured()
}

func (c *cachedGenerator) Generate(ctx context.Context, text string, opts models.SummaryOptions) (*models.SummaryResult, error) {
	key := cacheKey(text, opts.WithDefaults())

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached models.SummaryResult
		if err := json.Unmarshal(data, &cached); err == nil {
			c.logger.Debug(ctx, "Summary cache hit: %s", key)
			return &cached, nil
		}
		c.logger.Warn(ctx, "Dropping corrupt cache entry %s", key)
		c.rdb.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn(ctx, "Summary cache read failed: %v", err)
	}

	result, err := c.next.Generate(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn(ctx, "Summary cache write failed: %v", err)
		}
	}
	return result, nil
}

func cacheKey(text string, opts models.SummaryOptions) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	optsJSON, _ := json.Marshal(opts)
	h.Write(optsJSON)
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// NewRedisClient opens and pings a Redis connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
